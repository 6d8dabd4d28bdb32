package entity

import "time"

// Roles de usuario reconocidos por el frontend.
const (
	RolAdministrador = "Administrador"
	RolSupervisor    = "Supervisor"
	RolOperador      = "Operador"
	RolDespacho      = "Despacho"
	RolConsulta      = "Consulta"
)

// Estados de cuenta.
const (
	EstadoUsuarioActivo   = "Activo"
	EstadoUsuarioInactivo = "Inactivo"
)

// Usuario se sincroniza desde Azure AD: el upsert usa AzureObjectID como
// clave externa, nunca el id interno.
type Usuario struct {
	IDUsuario         int
	Nombre            string
	Apellido          string
	Correo            string
	AzureObjectID     string
	Rol               string
	Estado            string
	FechaUltimoAcceso *time.Time
	FechaCreacion     time.Time
}
