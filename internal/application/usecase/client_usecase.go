package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// ClientUseCase casos de uso del CRM de clientes: CRUD, acumulados de compras
// y crédito a nivel cliente.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registra un cliente nuevo.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.BusinessName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:             uuid.New().String(),
		BusinessName:   in.BusinessName,
		OwnerName:      in.OwnerName,
		Phone:          in.Phone,
		Address:        in.Address,
		RouteID:        in.RouteID,
		Reference:      in.Reference,
		Notes:          in.Notes,
		TotalPurchases: decimal.Zero,
		CreditAmount:   decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// List devuelve clientes, opcionalmente filtrados por ruta o término de búsqueda.
func (uc *ClientUseCase) List(routeID, search string) ([]dto.ClientResponse, error) {
	var (
		clients []*entity.Client
		err     error
	)
	switch {
	case search != "":
		clients, err = uc.repo.Search(search)
	case routeID != "":
		clients, err = uc.repo.ListByRoute(routeID)
	default:
		clients, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, dto.ToClientResponse(c))
	}
	return out, nil
}

// ListWithCredit devuelve los clientes con saldo deudor.
func (uc *ClientUseCase) ListWithCredit() ([]dto.ClientResponse, error) {
	clients, err := uc.repo.ListWithCredit()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, dto.ToClientResponse(c))
	}
	return out, nil
}

// Update actualiza los datos de contacto del cliente. Acumulados y crédito
// tienen sus propias operaciones.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.BusinessName != nil {
		if *in.BusinessName == "" {
			return nil, domain.ErrInvalidInput
		}
		client.BusinessName = *in.BusinessName
	}
	if in.OwnerName != nil {
		client.OwnerName = *in.OwnerName
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.RouteID != nil {
		client.RouteID = *in.RouteID
	}
	if in.Reference != nil {
		client.Reference = *in.Reference
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// RegisterPurchase acumula una compra: suma el monto, incrementa el conteo y
// actualiza la fecha de última compra.
func (uc *ClientUseCase) RegisterPurchase(id string, in dto.RegisterPurchaseRequest) (*dto.ClientResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	client.TotalPurchases = client.TotalPurchases.Add(in.Amount)
	client.PurchaseCount++
	client.LastPurchaseDate = &now
	client.UpdatedAt = now
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// AddCredit carga un monto al saldo deudor del cliente.
func (uc *ClientUseCase) AddCredit(id string, in dto.CreditRequest) (*dto.ClientResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	client.CreditAmount = client.CreditAmount.Add(in.Amount)
	client.HasCredit = true
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// ReduceCredit abona al saldo deudor. El saldo nunca queda negativo: un abono
// mayor a la deuda la deja en cero.
func (uc *ClientUseCase) ReduceCredit(id string, in dto.CreditRequest) (*dto.ClientResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	remaining := client.CreditAmount.Sub(in.Amount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	client.CreditAmount = remaining
	client.HasCredit = remaining.IsPositive()
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
