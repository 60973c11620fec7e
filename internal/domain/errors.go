package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrAdvisorNotFound   = errors.New("asesor no encontrado")
	ErrMalformedDocument = errors.New("documento PDF malformado")
	ErrRenderFailure     = errors.New("no se pudo generar el documento")
	ErrRenderTimeout     = errors.New("tiempo de generación del documento agotado")
)
