package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/internal/domain"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// RegistroUseCase orquesta el listado, ingreso y actualización de registros
// de bobinas.
type RegistroUseCase struct {
	repo repository.RegistroRepository
}

// NewRegistroUseCase construye el caso de uso.
func NewRegistroUseCase(repo repository.RegistroRepository) *RegistroUseCase {
	return &RegistroUseCase{repo: repo}
}

// List devuelve la página solicitada con su metadato de paginación.
func (uc *RegistroUseCase) List(ctx context.Context, filter repository.RegistroFilter) ([]dto.RegistroDTO, dto.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultPerPage
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}

	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return dto.FromRegistros(list), dto.NewPagination(filter.Page, filter.PerPage, total), nil
}

// GetByID devuelve nil, nil si el registro no existe.
func (uc *RegistroUseCase) GetByID(ctx context.Context, id int) (*dto.RegistroDTO, error) {
	reg, err := uc.repo.GetByID(ctx, id)
	if err != nil || reg == nil {
		return nil, err
	}
	out := dto.FromRegistro(reg)
	return &out, nil
}

// Create ingresa una bobina nueva. El estado por defecto es Disponible.
func (uc *RegistroUseCase) Create(ctx context.Context, req dto.CreateRegistroRequest) (*dto.RegistroDTO, error) {
	fechaLlegada, err := parseFecha(req.FechaLlegada, "fecha_llegada")
	if err != nil {
		return nil, err
	}
	fechaInventario, err := parseFecha(req.FechaInventario, "fecha_inventario")
	if err != nil {
		return nil, err
	}
	fechaIngreso, err := parseFecha(req.FechaIngresoPlanta, "fecha_ingreso_planta")
	if err != nil {
		return nil, err
	}

	// El formulario histórico envía ton_pedido_compra / cod_bobina2.
	tcn := req.TcnPedidoCompra
	if tcn == nil {
		tcn = req.TonPedidoCompra
	}
	codBobin2 := req.CodBobin2
	if codBobin2 == nil {
		codBobin2 = req.CodBobina2
	}

	estadoID := entity.EstadoDisponible
	if req.EstadoID != nil {
		estadoID = *req.EstadoID
	}

	reg := &entity.Registro{
		FechaLlegada:       fechaLlegada,
		PedidoCompra:       req.PedidoCompra,
		Colada:             req.Colada,
		Peso:               decimalFrom(req.Peso),
		Cantidad:           req.Cantidad,
		Lote:               req.Lote,
		FechaInventario:    fechaInventario,
		Observaciones:      req.Observaciones,
		TcnPedidoCompra:    decimalFrom(tcn),
		FechaIngresoPlanta: fechaIngreso,
		NBobiProveedor:     req.NBobiProveedor,
		BobiCorrelativo:    req.BobiCorrelativo,
		CodBobin2:          codBobin2,
		BobinaID:           req.BobinaID,
		ProveedorID:        req.ProveedorID,
		BarcoID:            req.BarcoID,
		UbicacionID:        req.UbicacionID,
		EstadoID:           &estadoID,
		MolinoID:           req.MolinoID,
	}

	id, err := uc.repo.Create(ctx, reg)
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// UpdatePartial aplica un parche parcial sobre un registro: solo cambian los
// campos presentes en fields.
func (uc *RegistroUseCase) UpdatePartial(ctx context.Context, id int, fields map[string]any) error {
	return uc.repo.UpdatePartial(ctx, id, fields)
}

// ActualizarEstado cambia el estado de un lote de registros y devuelve
// cuántas filas cambiaron.
func (uc *RegistroUseCase) ActualizarEstado(ctx context.Context, req dto.ActualizarEstadoRequest) (int64, error) {
	if len(req.IdsRegistros) == 0 {
		return 0, fmt.Errorf("%w: ids_registros", domain.ErrMissingField)
	}
	if req.NuevoEstadoID == nil {
		return 0, fmt.Errorf("%w: nuevo_estado_id", domain.ErrMissingField)
	}
	return uc.repo.UpdateEstado(ctx, req.IdsRegistros, *req.NuevoEstadoID)
}

func parseFecha(s *string, campo string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser YYYY-MM-DD", domain.ErrInvalidInput, campo)
	}
	return &t, nil
}

func decimalFrom(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
