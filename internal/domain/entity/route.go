package entity

import "time"

// Route es una zona de reparto/venta. Las rutas no se eliminan, se desactivan.
type Route struct {
	ID          string // slug derivado del nombre
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultRoutes rutas sembradas cuando la base está vacía.
var DefaultRoutes = []Route{
	{ID: "comitan", Name: "Comitán", Description: "Zona Comitán de Domínguez", IsActive: true},
	{ID: "palenque", Name: "Palenque", Description: "Zona Palenque", IsActive: true},
	{ID: "tenozique", Name: "Tenozique", Description: "Zona Tenozique", IsActive: true},
	{ID: "salto_de_agua", Name: "Salto de Agua", Description: "Zona Salto de Agua", IsActive: true},
	{ID: "trinitaria", Name: "Trinitaria", Description: "Zona La Trinitaria", IsActive: true},
	{ID: "comalapa", Name: "Comalapa", Description: "Zona Comalapa", IsActive: true},
	{ID: "chicomuselo", Name: "Chicomuselo", Description: "Zona Chicomuselo", IsActive: true},
	{ID: "tzimol", Name: "Tzimol", Description: "Zona Tzimol", IsActive: true},
	{ID: "margaritas", Name: "Margaritas", Description: "Zona Las Margaritas", IsActive: true},
}
