package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)

// InsufficientStockError indica qué producto no alcanza y cuántas unidades quedan.
// errors.Is(err, ErrInsufficientStock) retorna true para este tipo.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente de %s: solicitado %d, disponible %d",
		e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
