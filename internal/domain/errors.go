package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los adaptadores y el
// servicio envuelven detalles con fmt.Errorf("%w: ...") para que
// errors.Is funcione de extremo a extremo.
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrDuplicateSKU      = errors.New("SKU duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStorage           = errors.New("error de almacenamiento")
)
