package repository

import (
	"context"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
)

// GestionRepository puerto genérico sobre las tablas de referencia
// administrables (UBICACION, BARCO, MOLINO, PROVEEDOR, ESTADO, PROCEDENCIA).
// Toda operación con una tabla fuera del allow-list falla con
// domain.ErrInvalidTable. Las filas se devuelven con los nombres de columna
// en mayúsculas tal como existen en el esquema; los valores temporales van
// como string ISO-8601.
type GestionRepository interface {
	List(ctx context.Context, tabla string) ([]map[string]any, error)
	// Insert crea una fila con los campos reconocidos por la tabla y devuelve
	// la fila creada.
	Insert(ctx context.Context, tabla string, fields map[string]any) (map[string]any, error)
	// Delete elimina por id; domain.ErrNotFound si no existe.
	Delete(ctx context.Context, tabla string, id int) error
	// Opciones devuelve los pares id/nombre de los seis combos del formulario
	// de ingreso.
	Opciones(ctx context.Context) (*entity.OpcionesCombos, error)
}
