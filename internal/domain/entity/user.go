package entity

import "time"

// Roles de usuario. El admin administra catálogo, clientes y reportes;
// el vendedor solo opera el punto de venta.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User es un operador del sistema.
type User struct {
	ID           string // uuid
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
