package dto

import (
	"time"

	"github.com/camilcandy/pos-api/internal/domain/entity"
)

// AdjustStockRequest entrada de un ajuste manual de inventario.
// Para entrada/salida, Quantity es el delta; para ajuste, el stock final.
type AdjustStockRequest struct {
	Type     string `json:"type" validate:"required"` // entrada | salida | ajuste
	Quantity int    `json:"quantity" validate:"required,min=0"`
	Notes    string `json:"notes"`
}

// StockMovementResponse salida de un movimiento de stock.
type StockMovementResponse struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	Notes         string    `json:"notes"`
	Date          time.Time `json:"date"`
}

// ToStockMovementResponse convierte la entidad al DTO de salida.
func ToStockMovementResponse(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Notes:         m.Notes,
		Date:          m.Date,
	}
}
