package entity

import "time"

// Tipos de movimiento de stock. "venta" lo genera el motor de ventas;
// el resto provienen de ajustes manuales de inventario.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
	MovementAjuste  = "ajuste"
	MovementVenta   = "venta"
)

// ValidAdjustmentType indica si el tipo corresponde a un ajuste manual.
func ValidAdjustmentType(t string) bool {
	return t == MovementEntrada || t == MovementSalida || t == MovementAjuste
}

// StockMovement es el registro de auditoría de cualquier cambio de stock.
// Colección append-only: nunca se actualiza ni se borra.
type StockMovement struct {
	ID            int64
	ProductID     int64
	ProductName   string // snapshot al momento del movimiento
	Type          string
	Quantity      int // delta absoluto |NewStock − PreviousStock|
	PreviousStock int
	NewStock      int
	Notes         string
	Date          time.Time
}
