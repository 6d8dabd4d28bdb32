package repository

import (
	"context"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
)

// RegistroFilter parámetros de búsqueda/paginación del listado de registros.
type RegistroFilter struct {
	Page    int
	PerPage int
	Search  string // substring, case-insensitive
	Estado  *int   // filtro por ESTADO_ID_ESTADO
}

// Offset calcula el desplazamiento OFFSET/LIMIT.
func (f RegistroFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// RegistroRepository puerto de persistencia para registros de bobinas.
type RegistroRepository interface {
	// List devuelve la página de registros y el total de filas que cumplen el filtro.
	List(ctx context.Context, filter RegistroFilter) ([]*entity.Registro, int, error)
	// GetByID devuelve nil, nil si el registro no existe.
	GetByID(ctx context.Context, id int) (*entity.Registro, error)
	// Create inserta un registro y devuelve el id generado.
	Create(ctx context.Context, r *entity.Registro) (int, error)
	// UpdatePartial actualiza solo los campos presentes en fields (allow-list
	// interna; claves desconocidas se ignoran). Devuelve domain.ErrNoFields si
	// no queda ningún campo reconocido y domain.ErrNotFound si el id no existe.
	UpdatePartial(ctx context.Context, id int, fields map[string]any) error
	// UpdateEstado cambia el estado de todos los ids en una sola sentencia y
	// devuelve cuántas filas cambiaron.
	UpdateEstado(ctx context.Context, ids []int, estadoID int) (int64, error)
	// MarcarDespachada pasa un registro a estado Despachada; domain.ErrNotFound
	// si el id no existe. Pensada para ejecutarse dentro de la transacción de
	// creación de pedido.
	MarcarDespachada(ctx context.Context, id int) error
}
