package dto

import (
	"time"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
)

// RegistroDTO fila del listado de registros. Claves en minúsculas (contrato
// histórico de los endpoints principales, a diferencia de /api/gestion).
// Fechas como YYYY-MM-DD; decimales como números JSON, null si están ausentes.
type RegistroDTO struct {
	IDRegistro         int      `json:"id_registro"`
	FechaLlegada       *string  `json:"fecha_llegada"`
	PedidoCompra       *string  `json:"pedido_compra"`
	Colada             *string  `json:"colada"`
	Peso               *float64 `json:"peso"`
	Cantidad           *int     `json:"cantidad"`
	Lote               *int     `json:"lote"`
	FechaInventario    *string  `json:"fecha_inventario"`
	Observaciones      *string  `json:"observaciones"`
	TcnPedidoCompra    *float64 `json:"tcn_pedido_compra"`
	FechaIngresoPlanta *string  `json:"fecha_ingreso_planta"`
	NBobiProveedor     *string  `json:"n_bobi_proveedor"`
	BobiCorrelativo    *string  `json:"bobi_correlativo"`
	CodBobin2          *string  `json:"cod_bobin2"`
	BobinaID           *int     `json:"bobina_id_bobi"`
	ProveedorID        *int     `json:"proveedor_id_prov"`
	BarcoID            *int     `json:"barco_id_barco"`
	UbicacionID        *int     `json:"ubicacion_id_ubi"`
	EstadoID           *int     `json:"estado_id_estado"`
	MolinoID           *int     `json:"molino_id_molino"`
	BobinaNombre       *string  `json:"bobina_nombre"`
	ProveedorNombre    *string  `json:"proveedor_nombre"`
	BarcoNombre        *string  `json:"barco_nombre"`
	UbicacionNombre    *string  `json:"ubicacion_nombre"`
	EstadoNombre       *string  `json:"estado_nombre"`
	MolinoNombre       *string  `json:"molino_nombre"`
}

// FromRegistro mapea la entidad al DTO del listado.
func FromRegistro(r *entity.Registro) RegistroDTO {
	return RegistroDTO{
		IDRegistro:         r.IDRegistro,
		FechaLlegada:       isoDate(r.FechaLlegada),
		PedidoCompra:       r.PedidoCompra,
		Colada:             r.Colada,
		Peso:               decimalPtr(r.Peso),
		Cantidad:           r.Cantidad,
		Lote:               r.Lote,
		FechaInventario:    isoDate(r.FechaInventario),
		Observaciones:      r.Observaciones,
		TcnPedidoCompra:    decimalPtr(r.TcnPedidoCompra),
		FechaIngresoPlanta: isoDate(r.FechaIngresoPlanta),
		NBobiProveedor:     r.NBobiProveedor,
		BobiCorrelativo:    r.BobiCorrelativo,
		CodBobin2:          r.CodBobin2,
		BobinaID:           r.BobinaID,
		ProveedorID:        r.ProveedorID,
		BarcoID:            r.BarcoID,
		UbicacionID:        r.UbicacionID,
		EstadoID:           r.EstadoID,
		MolinoID:           r.MolinoID,
		BobinaNombre:       r.BobinaNombre,
		ProveedorNombre:    r.ProveedorNombre,
		BarcoNombre:        r.BarcoNombre,
		UbicacionNombre:    r.UbicacionNombre,
		EstadoNombre:       r.EstadoNombre,
		MolinoNombre:       r.MolinoNombre,
	}
}

// FromRegistros mapea la página completa.
func FromRegistros(list []*entity.Registro) []RegistroDTO {
	out := make([]RegistroDTO, 0, len(list))
	for _, r := range list {
		out = append(out, FromRegistro(r))
	}
	return out
}

// CreateRegistroRequest cuerpo del ingreso de bobinas. El formulario histórico
// envía ton_pedido_compra y cod_bobina2; revisiones posteriores usan
// tcn_pedido_compra y cod_bobin2. Se aceptan ambas variantes.
type CreateRegistroRequest struct {
	FechaLlegada       *string  `json:"fecha_llegada"`
	PedidoCompra       *string  `json:"pedido_compra"`
	Colada             *string  `json:"colada"`
	Peso               *float64 `json:"peso"`
	Cantidad           *int     `json:"cantidad"`
	Lote               *int     `json:"lote"`
	FechaInventario    *string  `json:"fecha_inventario"`
	Observaciones      *string  `json:"observaciones"`
	TcnPedidoCompra    *float64 `json:"tcn_pedido_compra"`
	TonPedidoCompra    *float64 `json:"ton_pedido_compra"`
	FechaIngresoPlanta *string  `json:"fecha_ingreso_planta"`
	NBobiProveedor     *string  `json:"n_bobi_proveedor"`
	BobiCorrelativo    *string  `json:"bobi_correlativo"`
	CodBobin2          *string  `json:"cod_bobin2"`
	CodBobina2         *string  `json:"cod_bobina2"`
	BobinaID           *int     `json:"bobina_id_bobi"`
	ProveedorID        *int     `json:"proveedor_id_prov"`
	BarcoID            *int     `json:"barco_id_barco"`
	UbicacionID        *int     `json:"ubicacion_id_ubi"`
	EstadoID           *int     `json:"estado_id_estado"`
	MolinoID           *int     `json:"molino_id_molino"`
}

// ActualizarEstadoRequest cuerpo del cambio de estado masivo.
type ActualizarEstadoRequest struct {
	IdsRegistros  []int `json:"ids_registros"`
	NuevoEstadoID *int  `json:"nuevo_estado_id"`
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
