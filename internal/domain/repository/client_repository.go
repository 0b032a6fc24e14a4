package repository

import "github.com/camilcandy/pos-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia de clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	ListByRoute(routeID string) ([]*entity.Client, error)
	// Search busca por nombre del local, dueño o teléfono (case-insensitive).
	Search(query string) ([]*entity.Client, error)
	ListWithCredit() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
