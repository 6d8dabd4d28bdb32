package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/internal/domain"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

// PedidoUseCase orquesta la creación de pedidos de despacho y sus listados.
type PedidoUseCase struct {
	repo   repository.PedidoRepository
	tx     PedidoTxRunner
	pdfGen GuiaPDFGenerator
	now    func() time.Time
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository, tx PedidoTxRunner, pdfGen GuiaPDFGenerator) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, tx: tx, pdfGen: pdfGen, now: time.Now}
}

// Crear registra un pedido completo en una sola transacción: cabecera, una
// línea por bobina y el paso de cada bobina a Despachada. Si cualquier paso
// falla no queda nada escrito.
func (uc *PedidoUseCase) Crear(ctx context.Context, req dto.CrearPedidoRequest) (int, error) {
	if req.UsuarioSolicitaID == nil {
		return 0, fmt.Errorf("%w: usuario_solicita_id", domain.ErrMissingField)
	}
	if len(req.Registros) == 0 {
		return 0, fmt.Errorf("%w: registros", domain.ErrMissingField)
	}

	var pedidoID int
	err := uc.tx.RunPedido(ctx, func(pedidos repository.PedidoRepository, registros repository.RegistroRepository) error {
		id, err := pedidos.CreateCab(ctx, *req.UsuarioSolicitaID, uc.now(), entity.EstadoPedidoEnviado, req.Observaciones)
		if err != nil {
			return err
		}
		for _, registroID := range req.Registros {
			if err := pedidos.CreateDet(ctx, id, registroID, nil); err != nil {
				return err
			}
			if err := registros.MarcarDespachada(ctx, registroID); err != nil {
				return err
			}
		}
		pedidoID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return pedidoID, nil
}

// EnCurso lista los pedidos aún no completados.
func (uc *PedidoUseCase) EnCurso(ctx context.Context) ([]dto.PedidoDTO, error) {
	list, err := uc.repo.ListEnCurso(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromPedidoCabs(list), nil
}

// Historial lista los pedidos paginados, opcionalmente filtrados por estado.
func (uc *PedidoUseCase) Historial(ctx context.Context, page, perPage int, estadoPedidoID *int) ([]dto.PedidoDTO, dto.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	list, total, err := uc.repo.ListHistorial(ctx, page, perPage, estadoPedidoID)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.FromPedidoCabs(list), dto.NewPagination(page, perPage, total), nil
}

// Detalle devuelve las líneas expandidas de un pedido. Si el pedido no
// existe devuelve ErrNotFound.
func (uc *PedidoUseCase) Detalle(ctx context.Context, pedidoID int) ([]dto.PedidoDetalleDTO, error) {
	cab, err := uc.repo.GetCab(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	if cab == nil {
		return nil, fmt.Errorf("%w: pedido %d", domain.ErrNotFound, pedidoID)
	}
	lineas, err := uc.repo.GetDetalle(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	return dto.FromPedidoDetalles(lineas), nil
}

// Despachos lista el historial plano de bobinas despachadas.
func (uc *PedidoUseCase) Despachos(ctx context.Context, page, perPage int) ([]dto.DespachoDTO, dto.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	list, total, err := uc.repo.ListDespachos(ctx, page, perPage)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.FromDespachos(list), dto.NewPagination(page, perPage, total), nil
}

// GuiaPDF genera la guía de despacho del pedido.
func (uc *PedidoUseCase) GuiaPDF(ctx context.Context, pedidoID int) ([]byte, error) {
	cab, err := uc.repo.GetCab(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	if cab == nil {
		return nil, fmt.Errorf("%w: pedido %d", domain.ErrNotFound, pedidoID)
	}
	lineas, err := uc.repo.GetDetalle(ctx, pedidoID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateGuiaPDF(cab, lineas)
}
