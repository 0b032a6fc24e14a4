package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías fijas de gastos.
const (
	ExpenseEnvios   = "envios"
	ExpenseGasolina = "gasolina"
	ExpenseBolsas   = "bolsas"
	ExpenseSellos   = "sellos"
	ExpenseSueldos  = "sueldos"
	ExpenseOtros    = "otros"
)

// ExpenseCategories el conjunto fijo de categorías, en orden de presentación.
var ExpenseCategories = []ExpenseCategory{
	{ID: ExpenseEnvios, Name: "Envíos"},
	{ID: ExpenseGasolina, Name: "Gasolina"},
	{ID: ExpenseBolsas, Name: "Bolsas/Empaque"},
	{ID: ExpenseSellos, Name: "Sellos/Etiquetas"},
	{ID: ExpenseSueldos, Name: "Sueldos"},
	{ID: ExpenseOtros, Name: "Otros Gastos"},
}

// ExpenseCategory describe una categoría del conjunto fijo.
type ExpenseCategory struct {
	ID   string
	Name string
}

// ValidExpenseCategory indica si la categoría pertenece al conjunto fijo.
func ValidExpenseCategory(id string) bool {
	for _, c := range ExpenseCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Expense es un gasto categorizado, opcionalmente asociado a un producto o ruta.
type Expense struct {
	ID          string // uuid
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	ProductID   *int64
	RouteID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
