package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/BANCESQWQ/bobisfinal/internal/domain"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
	"github.com/BANCESQWQ/bobisfinal/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	db Querier
}

// NewUsuarioRepository construye el adaptador; acepta el pool o una tx.
func NewUsuarioRepository(db Querier) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const usuarioSelect = `
	SELECT "ID_USUARIO", "NOMBRE_USUARIO", "APELLIDO_USUARIO", "CORREO_USUARIO",
	       "AZURE_OBJECT_ID", "ROL_USUARIO", "ESTADO", "FECHA_ULTIMO_ACCESO",
	       "FECHA_CREACION"
	FROM "USUARIOS"`

func scanUsuario(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(
		&u.IDUsuario, &u.Nombre, &u.Apellido, &u.Correo,
		&u.AzureObjectID, &u.Rol, &u.Estado, &u.FechaUltimoAcceso,
		&u.FechaCreacion,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List devuelve todos los usuarios ordenados por apellido.
func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	rows, err := r.db.Query(ctx, usuarioSelect+` ORDER BY "APELLIDO_USUARIO", "NOMBRE_USUARIO"`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// GetByID devuelve nil, nil si el usuario no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	u, err := scanUsuario(r.db.QueryRow(ctx, usuarioSelect+` WHERE "ID_USUARIO" = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario %d: %w", id, err)
	}
	return u, nil
}

// GetByAzureID busca por la clave de identidad externa (única).
func (r *UsuarioRepo) GetByAzureID(ctx context.Context, azureObjectID string) (*entity.Usuario, error) {
	u, err := scanUsuario(r.db.QueryRow(ctx, usuarioSelect+` WHERE "AZURE_OBJECT_ID" = $1`, azureObjectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario azure %s: %w", azureObjectID, err)
	}
	return u, nil
}

// Create inserta un usuario y devuelve el id generado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) (int, error) {
	const query = `
		INSERT INTO "USUARIOS" (
			"NOMBRE_USUARIO", "APELLIDO_USUARIO", "CORREO_USUARIO",
			"AZURE_OBJECT_ID", "ROL_USUARIO", "ESTADO",
			"FECHA_ULTIMO_ACCESO", "FECHA_CREACION"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING "ID_USUARIO"`

	var id int
	err := r.db.QueryRow(ctx, query,
		u.Nombre, u.Apellido, u.Correo,
		u.AzureObjectID, u.Rol, u.Estado,
		u.FechaUltimoAcceso, u.FechaCreacion,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("azure_object_id duplicado: %w", domain.ErrInvalidInput)
		}
		return 0, fmt.Errorf("insert usuario: %w", err)
	}
	return id, nil
}

// TouchUltimoAcceso actualiza solo la fecha de último acceso.
func (r *UsuarioRepo) TouchUltimoAcceso(ctx context.Context, id int, t time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE "USUARIOS" SET "FECHA_ULTIMO_ACCESO" = $1 WHERE "ID_USUARIO" = $2`, t, id)
	if err != nil {
		return fmt.Errorf("touch usuario %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNotFound
	}
	return nil
}

// UpdateRol cambia el rol del usuario.
func (r *UsuarioRepo) UpdateRol(ctx context.Context, id int, rol string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE "USUARIOS" SET "ROL_USUARIO" = $1 WHERE "ID_USUARIO" = $2`, rol, id)
	if err != nil {
		return fmt.Errorf("update rol usuario %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNotFound
	}
	return nil
}
