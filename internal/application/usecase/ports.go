package usecase

import (
	"context"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

// PedidoTxRunner ejecuta el flujo de creación de pedido dentro de una única
// transacción: cabecera, líneas y cambio de estado de cada bobina se
// confirman o se revierten juntos.
type PedidoTxRunner interface {
	RunPedido(ctx context.Context, fn func(
		pedidos repository.PedidoRepository,
		registros repository.RegistroRepository,
	) error) error
}

// GuiaPDFGenerator genera la guía de despacho imprimible de un pedido.
type GuiaPDFGenerator interface {
	GenerateGuiaPDF(pedido *entity.PedidoCab, lineas []*entity.PedidoDetalle) ([]byte, error)
}
