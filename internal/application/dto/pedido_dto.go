package dto

import (
	"time"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

// CrearPedidoRequest cuerpo de POST /api/pedidos.
type CrearPedidoRequest struct {
	UsuarioSolicitaID *int    `json:"usuario_solicita_id"`
	Observaciones     *string `json:"observaciones"`
	Registros         []int   `json:"registros"`
}

// PedidoDTO fila de los listados de pedidos.
type PedidoDTO struct {
	IDPedido          int     `json:"id_pedido"`
	FechaPedido       string  `json:"fecha_pedido"`
	UsuarioSolicitaID int     `json:"usuario_solicita_id"`
	EstadoPedido      *string `json:"estado_pedido"`
	Observaciones     *string `json:"observaciones"`
	Solicitante       *string `json:"solicitante"`
	CantBobinas       int     `json:"cant_bobinas"`
}

// FromPedidoCab mapea la cabecera al DTO de listado.
func FromPedidoCab(p *entity.PedidoCab) PedidoDTO {
	return PedidoDTO{
		IDPedido:          p.IDPedido,
		FechaPedido:       p.FechaPedido.Format(time.RFC3339),
		UsuarioSolicitaID: p.UsuarioSolicitaID,
		EstadoPedido:      p.EstadoPedido,
		Observaciones:     p.Observaciones,
		Solicitante:       p.Solicitante,
		CantBobinas:       p.CantBobinas,
	}
}

// FromPedidoCabs mapea la lista completa.
func FromPedidoCabs(list []*entity.PedidoCab) []PedidoDTO {
	out := make([]PedidoDTO, 0, len(list))
	for _, p := range list {
		out = append(out, FromPedidoCab(p))
	}
	return out
}

// PedidoDetalleDTO línea expandida para el checklist de despacho.
type PedidoDetalleDTO struct {
	IDPedidoDet  int      `json:"id_pedido_det"`
	IDRegistro   int      `json:"id_registro"`
	BobinaDesc   *string  `json:"bobina_desc"`
	PedidoCompra *string  `json:"pedido_compra"`
	Colada       *string  `json:"colada"`
	Peso         *float64 `json:"peso"`
	Ubicacion    *string  `json:"ubicacion"`
	Despachada   bool     `json:"despachada"`
}

// FromPedidoDetalles mapea las líneas del pedido.
func FromPedidoDetalles(list []*entity.PedidoDetalle) []PedidoDetalleDTO {
	out := make([]PedidoDetalleDTO, 0, len(list))
	for _, d := range list {
		out = append(out, PedidoDetalleDTO{
			IDPedidoDet:  d.IDPedidoDet,
			IDRegistro:   d.RegistroID,
			BobinaDesc:   d.BobinaDesc,
			PedidoCompra: d.PedidoCompra,
			Colada:       d.Colada,
			Peso:         d.Peso,
			Ubicacion:    d.Ubicacion,
			Despachada:   d.Despachada,
		})
	}
	return out
}

// DespachoDTO fila del historial de despachos.
type DespachoDTO struct {
	IDPedido     int      `json:"id_pedido"`
	FechaPedido  string   `json:"fecha_pedido"`
	Solicitante  *string  `json:"solicitante"`
	IDRegistro   int      `json:"id_registro"`
	Bobina       *string  `json:"bobina"`
	PedidoCompra *string  `json:"pedido_compra"`
	Colada       *string  `json:"colada"`
	Peso         *float64 `json:"peso"`
}

// FromDespachos mapea el historial de despachos.
func FromDespachos(list []repository.DespachoHistorial) []DespachoDTO {
	out := make([]DespachoDTO, 0, len(list))
	for _, h := range list {
		out = append(out, DespachoDTO{
			IDPedido:     h.IDPedido,
			FechaPedido:  h.FechaPedido.Format(time.RFC3339),
			Solicitante:  h.Solicitante,
			IDRegistro:   h.IDRegistro,
			Bobina:       h.BobinaDesc,
			PedidoCompra: h.PedidoCompra,
			Colada:       h.Colada,
			Peso:         h.Peso,
		})
	}
	return out
}
