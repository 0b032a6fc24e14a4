package repository

import "github.com/camilcandy/pos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia de usuarios.
// FindByEmail devuelve (nil, nil) cuando el email no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
