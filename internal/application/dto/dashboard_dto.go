package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

// EstadisticasDTO contadores del dashboard. Claves camelCase: así las
// consume el widget de estadísticas del frontend.
type EstadisticasDTO struct {
	TotalBobinas       int     `json:"totalBobinas"`
	BobinasDisponibles int     `json:"bobinasDisponibles"`
	BobinasDespachadas int     `json:"bobinasDespachadas"`
	PesoTotal          float64 `json:"pesoTotal"`
	PedidosMes         int     `json:"pedidosMes"`
}

// FromEstadisticas mapea el resultado agregado.
func FromEstadisticas(r *repository.EstadisticasResult) EstadisticasDTO {
	return EstadisticasDTO{
		TotalBobinas:       r.TotalBobinas,
		BobinasDisponibles: r.BobinasDisponibles,
		BobinasDespachadas: r.BobinasDespachadas,
		PesoTotal:          r.PesoTotal.InexactFloat64(),
		PedidosMes:         r.PedidosMes,
	}
}

// BobinaPopularDTO tipo de bobina más pedido.
type BobinaPopularDTO struct {
	Bobina       string  `json:"bobina"`
	TotalPedidos int     `json:"total_pedidos"`
	PesoPromedio float64 `json:"peso_promedio"`
}

// EstadoBobinaDTO conteo por estado.
type EstadoBobinaDTO struct {
	Estado   string `json:"estado"`
	Cantidad int    `json:"cantidad"`
}

// BobinaAntiguaDTO bobina con más días en inventario.
type BobinaAntiguaDTO struct {
	IDRegistro     int      `json:"id_registro"`
	Bobina         *string  `json:"bobina"`
	FechaIngreso   *string  `json:"fecha_ingreso"`
	Peso           *float64 `json:"peso"`
	Estado         *string  `json:"estado"`
	DiasInventario int      `json:"dias_inventario"`
}

// TendenciaMensualDTO totales por mes.
type TendenciaMensualDTO struct {
	Mes          string  `json:"mes"`
	TotalPedidos int     `json:"total_pedidos"`
	PesoTotal    float64 `json:"peso_total"`
}

// PrediccionDemandaDTO proyección de un mes futuro.
type PrediccionDemandaDTO struct {
	Mes             string `json:"mes"`
	DemandaPredicha int    `json:"demanda_predicha"`
	Tendencia       string `json:"tendencia"`
}

// AnaliticaDTO respuesta completa de GET /api/dashboard/analitica-predictiva.
type AnaliticaDTO struct {
	BobinasPopulares []BobinaPopularDTO     `json:"bobinasPopulares"`
	EstadoBobinas    []EstadoBobinaDTO      `json:"estadoBobinas"`
	BobinasAntiguas  []BobinaAntiguaDTO     `json:"bobinasAntiguas"`
	TendenciaMensual []TendenciaMensualDTO  `json:"tendenciaMensual"`
	Prediccion       []PrediccionDemandaDTO `json:"prediccionDemanda"`
	Estadisticas     EstadisticasDTO        `json:"estadisticas"`
}

// FromBobinasPopulares mapea el agregado de populares.
func FromBobinasPopulares(list []repository.BobinaPopularResult) []BobinaPopularDTO {
	out := make([]BobinaPopularDTO, 0, len(list))
	for _, r := range list {
		out = append(out, BobinaPopularDTO{
			Bobina:       r.Bobina,
			TotalPedidos: r.TotalPedidos,
			PesoPromedio: r.PesoPromedio.Round(2).InexactFloat64(),
		})
	}
	return out
}

// FromEstadoBobinas mapea el conteo por estado.
func FromEstadoBobinas(list []repository.EstadoBobinaResult) []EstadoBobinaDTO {
	out := make([]EstadoBobinaDTO, 0, len(list))
	for _, r := range list {
		out = append(out, EstadoBobinaDTO{Estado: r.Estado, Cantidad: r.Cantidad})
	}
	return out
}

// FromBobinasAntiguas mapea las bobinas más antiguas.
func FromBobinasAntiguas(list []repository.BobinaAntiguaResult) []BobinaAntiguaDTO {
	out := make([]BobinaAntiguaDTO, 0, len(list))
	for _, r := range list {
		out = append(out, BobinaAntiguaDTO{
			IDRegistro:     r.IDRegistro,
			Bobina:         r.Bobina,
			FechaIngreso:   isoDate(r.FechaIngreso),
			Peso:           decimalPtr(r.Peso),
			Estado:         r.Estado,
			DiasInventario: r.DiasInventario,
		})
	}
	return out
}

// FromTendenciaMensual mapea la serie mensual.
func FromTendenciaMensual(list []repository.TendenciaMensualResult) []TendenciaMensualDTO {
	out := make([]TendenciaMensualDTO, 0, len(list))
	for _, r := range list {
		out = append(out, TendenciaMensualDTO{
			Mes:          r.Mes,
			TotalPedidos: r.TotalPedidos,
			PesoTotal:    r.PesoTotal.Round(2).InexactFloat64(),
		})
	}
	return out
}

func decimalPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
