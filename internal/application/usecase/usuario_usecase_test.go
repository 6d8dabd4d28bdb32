package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BANCESQWQ/bobisfinal/internal/application/dto"
	"github.com/BANCESQWQ/bobisfinal/internal/application/usecase"
	"github.com/BANCESQWQ/bobisfinal/internal/domain"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
)

type fakeUsuarioRepo struct {
	usuarios map[int]*entity.Usuario
	nextID   int
	touched  []int
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: map[int]*entity.Usuario{}, nextID: 1}
}

func (f *fakeUsuarioRepo) List(context.Context) ([]*entity.Usuario, error) { return nil, nil }

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id int) (*entity.Usuario, error) {
	return f.usuarios[id], nil
}

func (f *fakeUsuarioRepo) GetByAzureID(_ context.Context, azureObjectID string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.AzureObjectID == azureObjectID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) (int, error) {
	id := f.nextID
	f.nextID++
	clone := *u
	clone.IDUsuario = id
	f.usuarios[id] = &clone
	return id, nil
}

func (f *fakeUsuarioRepo) TouchUltimoAcceso(_ context.Context, id int, t time.Time) error {
	f.touched = append(f.touched, id)
	if u, ok := f.usuarios[id]; ok {
		u.FechaUltimoAcceso = &t
	}
	return nil
}

func (f *fakeUsuarioRepo) UpdateRol(_ context.Context, id int, rol string) error {
	u, ok := f.usuarios[id]
	if !ok {
		return domain.ErrUsuarioNotFound
	}
	u.Rol = rol
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Sincronizar
// ──────────────────────────────────────────────────────────────────────────────

func TestSincronizar_SinAzureID_Retorna400(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo())

	_, _, err := uc.Sincronizar(context.Background(), dto.SincronizarUsuarioRequest{
		Nombre: "Ana",
	})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestSincronizar_UsuarioNuevo_CreaConRolConsulta(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	u, creado, err := uc.Sincronizar(context.Background(), dto.SincronizarUsuarioRequest{
		AzureObjectID: "aad-123",
		Nombre:        "Ana",
		Apellido:      "Rojas",
		Correo:        "ana@acme.cl",
	})
	require.NoError(t, err)

	assert.True(t, creado, "un azure_object_id desconocido debe generar alta")
	assert.Equal(t, entity.RolConsulta, u.Rol, "el rol por defecto es Consulta")
	assert.Equal(t, entity.EstadoUsuarioActivo, u.Estado)
	assert.NotZero(t, u.IDUsuario)
	assert.Len(t, repo.usuarios, 1)
}

func TestSincronizar_UsuarioExistente_SoloRefrescaAcceso(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	// Primer login crea
	primero, creado, err := uc.Sincronizar(context.Background(), dto.SincronizarUsuarioRequest{
		AzureObjectID: "aad-123",
		Nombre:        "Ana",
		Rol:           entity.RolSupervisor,
	})
	require.NoError(t, err)
	require.True(t, creado)

	// Segundo login no duplica ni cambia el rol
	segundo, creado, err := uc.Sincronizar(context.Background(), dto.SincronizarUsuarioRequest{
		AzureObjectID: "aad-123",
		Nombre:        "Ana María",
		Rol:           entity.RolAdministrador,
	})
	require.NoError(t, err)

	assert.False(t, creado)
	assert.Equal(t, primero.IDUsuario, segundo.IDUsuario)
	assert.Equal(t, entity.RolSupervisor, segundo.Rol,
		"el rol local no cambia en logins posteriores")
	assert.Len(t, repo.usuarios, 1, "no debe duplicarse el usuario")
	assert.Contains(t, repo.touched, primero.IDUsuario)
	assert.NotNil(t, segundo.FechaUltimoAcceso)
}

// ──────────────────────────────────────────────────────────────────────────────
// ActualizarRol
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarRol_RolVacio_Retorna400(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo())

	err := uc.ActualizarRol(context.Background(), 1, dto.ActualizarRolRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestActualizarRol_UsuarioInexistente_Retorna404(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(newFakeUsuarioRepo())

	err := uc.ActualizarRol(context.Background(), 99, dto.ActualizarRolRequest{Rol: entity.RolOperador})
	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)
}

func TestActualizarRol_CambiaElRol(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := usecase.NewUsuarioUseCase(repo)

	id, err := repo.Create(context.Background(), &entity.Usuario{
		AzureObjectID: "aad-9", Rol: entity.RolConsulta,
	})
	require.NoError(t, err)

	require.NoError(t, uc.ActualizarRol(context.Background(), id, dto.ActualizarRolRequest{Rol: entity.RolDespacho}))
	assert.Equal(t, entity.RolDespacho, repo.usuarios[id].Rol)
}
