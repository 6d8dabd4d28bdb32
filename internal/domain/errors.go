package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los traducen al sobre JSON: validación → 400,
// no encontrado → 404, persistencia → 500.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidTable    = errors.New("tabla no válida")
	ErrNoFields        = errors.New("no hay campos para actualizar")
	ErrMissingField    = errors.New("falta un campo requerido")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUsuarioNotFound = errors.New("usuario no encontrado")
)
