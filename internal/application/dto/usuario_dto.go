package dto

import (
	"time"

	"github.com/BANCESQWQ/bobisfinal/internal/domain/entity"
)

// UsuarioDTO usuario del directorio, con los nombres de campo que espera el
// frontend.
type UsuarioDTO struct {
	IDUsuario         int     `json:"id_usuario"`
	Nombre            string  `json:"nombre_usuario"`
	Apellido          string  `json:"apellido_usuario"`
	Correo            string  `json:"correo_usuario"`
	AzureObjectID     string  `json:"azure_object_id"`
	Rol               string  `json:"rol_usuario"`
	Estado            string  `json:"estado"`
	FechaUltimoAcceso *string `json:"fecha_ultimo_acceso"`
	FechaCreacion     string  `json:"fecha_creacion"`
}

// FromUsuario mapea la entidad al DTO.
func FromUsuario(u *entity.Usuario) UsuarioDTO {
	var ultimoAcceso *string
	if u.FechaUltimoAcceso != nil {
		s := u.FechaUltimoAcceso.Format(time.RFC3339)
		ultimoAcceso = &s
	}
	return UsuarioDTO{
		IDUsuario:         u.IDUsuario,
		Nombre:            u.Nombre,
		Apellido:          u.Apellido,
		Correo:            u.Correo,
		AzureObjectID:     u.AzureObjectID,
		Rol:               u.Rol,
		Estado:            u.Estado,
		FechaUltimoAcceso: ultimoAcceso,
		FechaCreacion:     u.FechaCreacion.Format(time.RFC3339),
	}
}

// FromUsuarios mapea la lista completa.
func FromUsuarios(list []*entity.Usuario) []UsuarioDTO {
	out := make([]UsuarioDTO, 0, len(list))
	for _, u := range list {
		out = append(out, FromUsuario(u))
	}
	return out
}

// SincronizarUsuarioRequest cuerpo de POST /api/usuarios/sincronizar.
// El upsert usa azure_object_id como clave, nunca un id interno.
type SincronizarUsuarioRequest struct {
	AzureObjectID string `json:"azure_object_id"`
	Nombre        string `json:"nombre_usuario"`
	Apellido      string `json:"apellido_usuario"`
	Correo        string `json:"correo_usuario"`
	Rol           string `json:"rol_usuario"`
}

// ActualizarRolRequest cuerpo de PUT /api/usuarios/:id/rol.
type ActualizarRolRequest struct {
	Rol string `json:"rol"`
}
