package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNotAuthenticated   = errors.New("sesión no autenticada")
	ErrFacilityNotVerified = errors.New("facility sin verificar")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrMixedVendors       = errors.New("todos los ítems deben ser del mismo vendor")
)
