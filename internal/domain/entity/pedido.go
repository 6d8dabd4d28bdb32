package entity

import "time"

// Estados de pedido (tabla ESTADO_PEDIDO).
const (
	EstadoPedidoBorrador   = 1
	EstadoPedidoEnviado    = 2
	EstadoPedidoProcesando = 3
	EstadoPedidoCompletado = 4
)

// PedidoCab es la cabecera de un pedido de despacho. Se crea siempre junto a
// sus líneas PedidoDet dentro de una misma transacción.
type PedidoCab struct {
	IDPedido          int
	FechaPedido       time.Time
	UsuarioSolicitaID int
	EstadoPedidoID    int
	Observaciones     *string

	// Derivados en consultas de listado
	Solicitante  *string
	EstadoPedido *string
	CantBobinas  int
}

// PedidoDet es una línea de pedido: una bobina incluida en el despacho.
// Crear la línea y marcar el Registro como "Despachada" son una sola unidad
// de trabajo.
type PedidoDet struct {
	IDPedidoDet      int
	PedidoID         int
	RegistroID       int
	EstadoDespacho   bool
	PedObservaciones *string
}

// PedidoDetalle es la vista expandida de una línea para el checklist de
// despacho y la guía en PDF.
type PedidoDetalle struct {
	IDPedidoDet  int
	RegistroID   int
	BobinaDesc   *string
	PedidoCompra *string
	Colada       *string
	Peso         *float64
	Ubicacion    *string
	Despachada   bool
}
