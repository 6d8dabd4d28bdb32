package repository

import (
	"context"
	"time"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
)

// DespachoHistorial fila del historial de despachos: línea de pedido ya
// despachada con los datos de su bobina.
type DespachoHistorial struct {
	IDPedido     int
	FechaPedido  time.Time
	Solicitante  *string
	IDRegistro   int
	BobinaDesc   *string
	PedidoCompra *string
	Colada       *string
	Peso         *float64
}

// PedidoRepository puerto de persistencia para pedidos de despacho.
type PedidoRepository interface {
	// CreateCab inserta la cabecera y devuelve el id generado.
	CreateCab(ctx context.Context, usuarioID int, fecha time.Time, estadoPedidoID int, observaciones *string) (int, error)
	// CreateDet inserta una línea del pedido.
	CreateDet(ctx context.Context, pedidoID, registroID int, observaciones *string) error
	// GetCab devuelve nil, nil si el pedido no existe.
	GetCab(ctx context.Context, id int) (*entity.PedidoCab, error)
	// ListEnCurso devuelve los pedidos en estado Borrador o Enviado con su
	// cantidad de bobinas.
	ListEnCurso(ctx context.Context) ([]*entity.PedidoCab, error)
	// ListHistorial pagina todos los pedidos, opcionalmente filtrados por estado.
	ListHistorial(ctx context.Context, page, perPage int, estadoPedidoID *int) ([]*entity.PedidoCab, int, error)
	// GetDetalle devuelve las líneas expandidas de un pedido.
	GetDetalle(ctx context.Context, pedidoID int) ([]*entity.PedidoDetalle, error)
	// ListDespachos pagina el historial de líneas despachadas.
	ListDespachos(ctx context.Context, page, perPage int) ([]DespachoHistorial, int, error)
}
