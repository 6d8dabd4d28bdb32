package repository

import (
	"context"
	"time"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia para el directorio de usuarios.
// Los métodos Get* devuelven nil, nil cuando el usuario no existe.
type UsuarioRepository interface {
	List(ctx context.Context) ([]*entity.Usuario, error)
	GetByID(ctx context.Context, id int) (*entity.Usuario, error)
	GetByAzureID(ctx context.Context, azureObjectID string) (*entity.Usuario, error)
	// Create inserta un usuario y devuelve el id generado.
	Create(ctx context.Context, u *entity.Usuario) (int, error)
	// TouchUltimoAcceso actualiza solo FECHA_ULTIMO_ACCESO.
	TouchUltimoAcceso(ctx context.Context, id int, t time.Time) error
	UpdateRol(ctx context.Context, id int, rol string) error
}
