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

// UsuarioUseCase sincroniza identidades externas con el directorio local y
// administra sus roles.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
	now  func() time.Time
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, now: time.Now}
}

// List devuelve el directorio completo.
func (uc *UsuarioUseCase) List(ctx context.Context) ([]dto.UsuarioDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromUsuarios(list), nil
}

// GetByID devuelve nil, nil si el usuario no existe.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id int) (*dto.UsuarioDTO, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	out := dto.FromUsuario(u)
	return &out, nil
}

// GetByAzureID devuelve nil, nil si no hay usuario con esa identidad externa.
func (uc *UsuarioUseCase) GetByAzureID(ctx context.Context, azureObjectID string) (*dto.UsuarioDTO, error) {
	u, err := uc.repo.GetByAzureID(ctx, azureObjectID)
	if err != nil || u == nil {
		return nil, err
	}
	out := dto.FromUsuario(u)
	return &out, nil
}

// Sincronizar hace upsert por azure_object_id: si el usuario ya existe solo
// refresca su fecha de último acceso, si no lo crea con rol Consulta. El
// segundo retorno indica si hubo alta.
func (uc *UsuarioUseCase) Sincronizar(ctx context.Context, req dto.SincronizarUsuarioRequest) (*dto.UsuarioDTO, bool, error) {
	if req.AzureObjectID == "" {
		return nil, false, fmt.Errorf("%w: azure_object_id", domain.ErrMissingField)
	}

	existente, err := uc.repo.GetByAzureID(ctx, req.AzureObjectID)
	if err != nil {
		return nil, false, err
	}
	if existente != nil {
		ahora := uc.now()
		if err := uc.repo.TouchUltimoAcceso(ctx, existente.IDUsuario, ahora); err != nil {
			return nil, false, err
		}
		existente.FechaUltimoAcceso = &ahora
		out := dto.FromUsuario(existente)
		return &out, false, nil
	}

	rol := req.Rol
	if rol == "" {
		rol = entity.RolConsulta
	}
	ahora := uc.now()
	nuevo := &entity.Usuario{
		Nombre:            req.Nombre,
		Apellido:          req.Apellido,
		Correo:            req.Correo,
		AzureObjectID:     req.AzureObjectID,
		Rol:               rol,
		Estado:            entity.EstadoUsuarioActivo,
		FechaUltimoAcceso: &ahora,
		FechaCreacion:     ahora,
	}
	id, err := uc.repo.Create(ctx, nuevo)
	if err != nil {
		return nil, false, err
	}
	nuevo.IDUsuario = id
	out := dto.FromUsuario(nuevo)
	return &out, true, nil
}

// ActualizarRol cambia el rol de un usuario existente.
func (uc *UsuarioUseCase) ActualizarRol(ctx context.Context, id int, req dto.ActualizarRolRequest) error {
	if req.Rol == "" {
		return fmt.Errorf("%w: rol", domain.ErrMissingField)
	}
	return uc.repo.UpdateRol(ctx, id, req.Rol)
}
