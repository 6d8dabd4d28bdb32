package usecase

import (
	"context"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

// GestionUseCase administra las tablas de referencia (barcos, ubicaciones,
// molinos, proveedores, estados y procedencias).
type GestionUseCase struct {
	repo repository.GestionRepository
}

// NewGestionUseCase construye el caso de uso.
func NewGestionUseCase(repo repository.GestionRepository) *GestionUseCase {
	return &GestionUseCase{repo: repo}
}

// List devuelve todas las filas de una tabla de referencia.
func (uc *GestionUseCase) List(ctx context.Context, tabla string) ([]map[string]any, error) {
	return uc.repo.List(ctx, tabla)
}

// Insert agrega una fila y devuelve la fila creada.
func (uc *GestionUseCase) Insert(ctx context.Context, tabla string, datos map[string]any) (map[string]any, error) {
	return uc.repo.Insert(ctx, tabla, datos)
}

// Delete elimina una fila por id.
func (uc *GestionUseCase) Delete(ctx context.Context, tabla string, id int) error {
	return uc.repo.Delete(ctx, tabla, id)
}

// Opciones devuelve las seis listas id/nombre para poblar combos.
func (uc *GestionUseCase) Opciones(ctx context.Context) (*entity.OpcionesCombos, error) {
	return uc.repo.Opciones(ctx)
}
