package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/BANCESQWQ/bobisfinal/internal/application/analytics"
	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/internal/application/usecase"
	"github.com/BANCESQWQ/bobisfinal/pkg/config"
	"github.com/BANCESQWQ/bobisfinal/pkg/logger"
)

// DBPinger verifica la conectividad con la base de datos.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegistroUC  *usecase.RegistroUseCase
	GestionUC   *usecase.GestionUseCase
	PedidoUC    *usecase.PedidoUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	DashboardUC *analytics.DashboardUseCase
	DB          DBPinger
	CORS        config.CORSConfig
	Log         *logger.Logger
	AppName     string
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORS.Origin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.OK(fiber.Map{
			"servicio": deps.AppName,
			"estado":   "ok",
		}))
	})

	api := app.Group("/api")

	api.Get("/test-db", func(c *fiber.Ctx) error {
		if err := deps.DB.Ping(c.Context()); err != nil {
			return respondError(c, deps.Log, err)
		}
		return c.JSON(dto.OKMessage(nil, "conexión a base de datos OK"))
	})

	// Registros de bobinas. La ruta fija actualizar-estado va antes que :id
	// para que Fiber no la capture como parámetro.
	registroHandler := NewRegistroHandler(deps.RegistroUC, deps.Log)
	registros := api.Group("/registros")
	registros.Get("/", registroHandler.List)
	registros.Post("/", registroHandler.Create)
	registros.Put("/actualizar-estado", registroHandler.ActualizarEstado)
	registros.Get("/:id", registroHandler.GetByID)
	registros.Put("/:id", registroHandler.Update)

	// Tablas de referencia
	gestionHandler := NewGestionHandler(deps.GestionUC, deps.Log)
	api.Get("/opciones-combos", gestionHandler.Opciones)
	gestion := api.Group("/gestion")
	gestion.Get("/:tabla", gestionHandler.List)
	gestion.Post("/:tabla", gestionHandler.Insert)
	gestion.Delete("/:tabla/:id", gestionHandler.Delete)

	// Pedidos y despachos
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.Log)
	pedidos := api.Group("/pedidos")
	pedidos.Post("/", pedidoHandler.Crear)
	pedidos.Get("/en-curso", pedidoHandler.EnCurso)
	pedidos.Get("/historial", pedidoHandler.Historial)
	pedidos.Get("/:id/detalle", pedidoHandler.Detalle)
	pedidos.Get("/:id/guia-pdf", pedidoHandler.GuiaPDF)
	api.Get("/despachos/historial", pedidoHandler.Despachos)

	// Usuarios
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC, deps.Log)
	usuarios := api.Group("/usuarios")
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/sincronizar", usuarioHandler.Sincronizar)
	usuarios.Get("/azure/:azureId", usuarioHandler.GetByAzureID)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id/rol", usuarioHandler.ActualizarRol)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	dashboard := api.Group("/dashboard")
	dashboard.Get("/estadisticas", dashboardHandler.Estadisticas)
	dashboard.Get("/analitica-predictiva", dashboardHandler.AnaliticaPredictiva)
}
