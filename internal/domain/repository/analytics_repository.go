package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EstadisticasResult contadores globales del inventario.
type EstadisticasResult struct {
	TotalBobinas       int
	BobinasDisponibles int
	BobinasDespachadas int
	PesoTotal          decimal.Decimal
	PedidosMes         int
}

// BobinaPopularResult tipo de bobina más pedido.
type BobinaPopularResult struct {
	Bobina       string
	TotalPedidos int
	PesoPromedio decimal.Decimal
}

// EstadoBobinaResult conteo de bobinas por estado.
type EstadoBobinaResult struct {
	Estado   string
	Cantidad int
}

// BobinaAntiguaResult bobina disponible con más días en inventario.
type BobinaAntiguaResult struct {
	IDRegistro     int
	Bobina         *string
	FechaIngreso   *time.Time
	Peso           *decimal.Decimal
	Estado         *string
	DiasInventario int
}

// TendenciaMensualResult totales de pedidos por mes (clave "YYYY-MM").
type TendenciaMensualResult struct {
	Mes          string
	TotalPedidos int
	PesoTotal    decimal.Decimal
}

// AnalyticsRepository consultas agregadas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	GetEstadisticas(ctx context.Context) (*EstadisticasResult, error)
	GetBobinasPopulares(ctx context.Context, limit int) ([]BobinaPopularResult, error)
	GetEstadoBobinas(ctx context.Context) ([]EstadoBobinaResult, error)
	GetBobinasAntiguas(ctx context.Context, limit int) ([]BobinaAntiguaResult, error)
	// GetTendenciaMensual devuelve los últimos months meses en orden
	// cronológico ascendente.
	GetTendenciaMensual(ctx context.Context, months int) ([]TendenciaMensualResult, error)
}
