package domain

import "errors"

// Error kinds surfaced to the initiating user. None are retried
// automatically; every failure is scoped to the action that caused it.
var (
	ErrAuthRequired = errors.New("debes iniciar sesión")
	ErrValidation   = errors.New("faltan campos obligatorios")
	ErrForbidden    = errors.New("no tienes permiso sobre este producto")
	ErrNotFound     = errors.New("producto no encontrado")
	ErrNotAvailable = errors.New("el producto ya no está disponible")

	// ErrSalePartial marks the sold-transition having applied only one of
	// its two effects. Callers must surface it distinctly from a clean
	// failure so the seller knows the data needs a manual look.
	ErrSalePartial = errors.New("venta registrada parcialmente, revisa el estado del producto")
)
