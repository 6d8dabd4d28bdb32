package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BANCESQWQ/bobisfinal/internal/application/analytics"
	"github.com/BANCESQWQ/bobisfinal/internal/application/usecase"
	"github.com/BANCESQWQ/bobisfinal/internal/domain"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
	apphttp "github.com/BANCESQWQ/bobisfinal/internal/interfaces/http"
	"github.com/BANCESQWQ/bobisfinal/pkg/config"
	"github.com/BANCESQWQ/bobisfinal/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type stubRegistroRepo struct{}

func (stubRegistroRepo) List(context.Context, repository.RegistroFilter) ([]*entity.Registro, int, error) {
	colada := "C-1001"
	return []*entity.Registro{{IDRegistro: 1, Colada: &colada}}, 1, nil
}

func (stubRegistroRepo) GetByID(_ context.Context, id int) (*entity.Registro, error) {
	if id == 1 {
		return &entity.Registro{IDRegistro: 1}, nil
	}
	return nil, nil
}

func (stubRegistroRepo) Create(context.Context, *entity.Registro) (int, error) { return 1, nil }

func (stubRegistroRepo) UpdatePartial(_ context.Context, id int, fields map[string]any) error {
	if len(fields) == 0 {
		return domain.ErrNoFields
	}
	if id != 1 {
		return domain.ErrNotFound
	}
	return nil
}

func (stubRegistroRepo) UpdateEstado(_ context.Context, ids []int, _ int) (int64, error) {
	return int64(len(ids)), nil
}

func (stubRegistroRepo) MarcarDespachada(context.Context, int) error { return nil }

type stubPedidoRepo struct{}

func (stubPedidoRepo) CreateCab(context.Context, int, time.Time, int, *string) (int, error) {
	return 42, nil
}
func (stubPedidoRepo) CreateDet(context.Context, int, int, *string) error { return nil }
func (stubPedidoRepo) GetCab(_ context.Context, id int) (*entity.PedidoCab, error) {
	if id == 42 {
		return &entity.PedidoCab{IDPedido: 42, FechaPedido: time.Now(), UsuarioSolicitaID: 1}, nil
	}
	return nil, nil
}
func (stubPedidoRepo) ListEnCurso(context.Context) ([]*entity.PedidoCab, error) { return nil, nil }
func (stubPedidoRepo) ListHistorial(context.Context, int, int, *int) ([]*entity.PedidoCab, int, error) {
	return nil, 0, nil
}
func (stubPedidoRepo) GetDetalle(context.Context, int) ([]*entity.PedidoDetalle, error) {
	return nil, nil
}
func (stubPedidoRepo) ListDespachos(context.Context, int, int) ([]repository.DespachoHistorial, int, error) {
	return nil, 0, nil
}

// stubTxRunner ejecuta el callback directo, sin transacción real.
type stubTxRunner struct{}

func (stubTxRunner) RunPedido(_ context.Context, fn func(repository.PedidoRepository, repository.RegistroRepository) error) error {
	return fn(stubPedidoRepo{}, stubRegistroRepo{})
}

type stubUsuarioRepo struct {
	porAzure map[string]*entity.Usuario
}

func (s *stubUsuarioRepo) List(context.Context) ([]*entity.Usuario, error) { return nil, nil }
func (s *stubUsuarioRepo) GetByID(context.Context, int) (*entity.Usuario, error) {
	return nil, nil
}
func (s *stubUsuarioRepo) GetByAzureID(_ context.Context, azureID string) (*entity.Usuario, error) {
	return s.porAzure[azureID], nil
}
func (s *stubUsuarioRepo) Create(_ context.Context, u *entity.Usuario) (int, error) {
	clone := *u
	clone.IDUsuario = len(s.porAzure) + 1
	s.porAzure[u.AzureObjectID] = &clone
	return clone.IDUsuario, nil
}
func (s *stubUsuarioRepo) TouchUltimoAcceso(context.Context, int, time.Time) error { return nil }
func (s *stubUsuarioRepo) UpdateRol(context.Context, int, string) error            { return nil }

type stubGestionRepo struct{}

func (stubGestionRepo) List(_ context.Context, tabla string) ([]map[string]any, error) {
	if tabla != "BARCO" {
		return nil, fmt.Errorf("%q: %w", tabla, domain.ErrInvalidTable)
	}
	return []map[string]any{{"ID_BARCO": 1, "NOMBRE_BARCO": "Aurora"}}, nil
}
func (stubGestionRepo) Insert(context.Context, string, map[string]any) (map[string]any, error) {
	return nil, nil
}
func (stubGestionRepo) Delete(context.Context, string, int) error { return nil }
func (stubGestionRepo) Opciones(context.Context) (*entity.OpcionesCombos, error) {
	return &entity.OpcionesCombos{
		Bobinas: []entity.Opcion{{ID: 1, Nombre: "Bobina laminada"}},
	}, nil
}

type stubAnalyticsRepo struct{}

func (stubAnalyticsRepo) GetEstadisticas(context.Context) (*repository.EstadisticasResult, error) {
	return &repository.EstadisticasResult{
		TotalBobinas:       120,
		BobinasDisponibles: 80,
		BobinasDespachadas: 40,
		PesoTotal:          decimal.NewFromInt(150000),
		PedidosMes:         7,
	}, nil
}
func (stubAnalyticsRepo) GetBobinasPopulares(context.Context, int) ([]repository.BobinaPopularResult, error) {
	return []repository.BobinaPopularResult{
		{Bobina: "Laminada en frío", TotalPedidos: 12, PesoPromedio: decimal.NewFromInt(9500)},
	}, nil
}
func (stubAnalyticsRepo) GetEstadoBobinas(context.Context) ([]repository.EstadoBobinaResult, error) {
	return []repository.EstadoBobinaResult{{Estado: "Disponible", Cantidad: 80}}, nil
}
func (stubAnalyticsRepo) GetBobinasAntiguas(context.Context, int) ([]repository.BobinaAntiguaResult, error) {
	return nil, nil
}
func (stubAnalyticsRepo) GetTendenciaMensual(context.Context, int) ([]repository.TendenciaMensualResult, error) {
	return []repository.TendenciaMensualResult{
		{Mes: "2026-05", TotalPedidos: 10, PesoTotal: decimal.NewFromInt(1000)},
		{Mes: "2026-06", TotalPedidos: 20, PesoTotal: decimal.NewFromInt(2000)},
		{Mes: "2026-07", TotalPedidos: 30, PesoTotal: decimal.NewFromInt(3000)},
	}, nil
}

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildApp(t *testing.T) *fiber.App {
	t.Helper()

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	usuarios := &stubUsuarioRepo{porAzure: map[string]*entity.Usuario{}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		RegistroUC:  usecase.NewRegistroUseCase(stubRegistroRepo{}),
		GestionUC:   usecase.NewGestionUseCase(stubGestionRepo{}),
		PedidoUC:    usecase.NewPedidoUseCase(stubPedidoRepo{}, stubTxRunner{}, nil),
		UsuarioUC:   usecase.NewUsuarioUseCase(usuarios),
		DashboardUC: analytics.NewDashboardUseCase(stubAnalyticsRepo{}),
		DB:          stubPinger{},
		CORS:        config.CORSConfig{Origin: "http://localhost:4200"},
		Log:         log,
		AppName:     "bobis-api",
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "cuerpo: %s", raw)
	}
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Registros
// ──────────────────────────────────────────────────────────────────────────────

func TestListarRegistros_SobreConPaginacion(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/registros?page=1&per_page=10", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	require.NotNil(t, body["pagination"], "el listado debe traer paginación")
	pag := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pag["total"])
	assert.Equal(t, float64(1), pag["pages"])

	data := body["data"].([]any)
	require.Len(t, data, 1)
	fila := data[0].(map[string]any)
	assert.Equal(t, float64(1), fila["id_registro"])
	assert.Equal(t, "C-1001", fila["colada"])
}

func TestObtenerRegistro_Inexistente_Retorna404(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/registros/99", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestActualizarRegistro_ParcheVacio_Retorna400(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodPut, "/api/registros/1", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

// La ruta fija actualizar-estado no debe ser capturada por /registros/:id.
func TestActualizarEstadoMasivo_RutaFijaAntesDelParametro(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodPut, "/api/registros/actualizar-estado", map[string]any{
		"ids_registros":   []int{1, 2, 3},
		"nuevo_estado_id": 2,
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(3), data["registros_actualizados"])
}

func TestActualizarEstadoMasivo_SinEstado_Retorna400(t *testing.T) {
	app := buildApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/api/registros/actualizar-estado", map[string]any{
		"ids_registros": []int{1},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gestión de tablas de referencia
// ──────────────────────────────────────────────────────────────────────────────

func TestGestionList_ClavesEnMayusculas(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/gestion/BARCO", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	fila := data[0].(map[string]any)
	assert.Contains(t, fila, "ID_BARCO")
	assert.Contains(t, fila, "NOMBRE_BARCO")
}

func TestGestionList_TablaFueraDelAllowList_Retorna400(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/gestion/REGISTROS", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestOpcionesCombos_DevuelveLosSeisGrupos(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/opciones-combos", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	for _, grupo := range []string{"bobinas", "proveedores", "barcos", "ubicaciones", "estados", "molinos"} {
		assert.Contains(t, data, grupo)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearPedido_Retorna201ConId(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/pedidos", map[string]any{
		"usuario_solicita_id": 1,
		"registros":           []int{1},
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(42), data["id_pedido"])
}

func TestCrearPedido_SinRegistros_Retorna400(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/pedidos", map[string]any{
		"usuario_solicita_id": 1,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestSincronizarUsuario_NuevoRetorna201_RepetidoRetorna200(t *testing.T) {
	app := buildApp(t)
	cuerpo := map[string]any{
		"azure_object_id": "aad-777",
		"nombre_usuario":  "Pedro",
	}

	resp, body := doJSON(t, app, http.MethodPost, "/api/usuarios/sincronizar", cuerpo)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Consulta", data["rol_usuario"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/usuarios/sincronizar", cuerpo)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// La ruta fija /usuarios/azure/:azureId no debe ser capturada por /usuarios/:id.
func TestBuscarUsuarioPorAzureID(t *testing.T) {
	app := buildApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/usuarios/sincronizar", map[string]any{
		"azure_object_id": "aad-55",
		"nombre_usuario":  "Rita",
	})

	resp, body := doJSON(t, app, http.MethodGet, "/api/usuarios/azure/aad-55", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "aad-55", data["azure_object_id"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/usuarios/azure/desconocido", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSincronizarUsuario_SinAzureID_Retorna400(t *testing.T) {
	app := buildApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/usuarios/sincronizar", map[string]any{
		"nombre_usuario": "Pedro",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestAnaliticaPredictiva_ContratoDeRespuesta(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/dashboard/analitica-predictiva", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	for _, clave := range []string{"bobinasPopulares", "estadoBobinas", "bobinasAntiguas",
		"tendenciaMensual", "prediccionDemanda", "estadisticas"} {
		assert.Contains(t, data, clave)
	}

	predicciones := data["prediccionDemanda"].([]any)
	assert.Len(t, predicciones, 6, "se proyectan seis meses")
	primera := predicciones[0].(map[string]any)
	assert.Contains(t, primera, "demanda_predicha")
	assert.Contains(t, primera, "tendencia")

	stats := data["estadisticas"].(map[string]any)
	assert.Equal(t, float64(120), stats["totalBobinas"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura
// ──────────────────────────────────────────────────────────────────────────────

func TestRutaRaiz_InformaElServicio(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestTestDB_ConexionOK(t *testing.T) {
	app := buildApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/test-db", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestRespuestas_IncluyenRequestID(t *testing.T) {
	app := buildApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
