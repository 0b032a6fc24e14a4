package pos

import (
	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain/entity"
	"github.com/camilcandy/pos-api/internal/domain/repository"
	"github.com/camilcandy/pos-api/pkg/receipt"
)

// SaleQueryUseCase lecturas de ventas y generación de recibos.
type SaleQueryUseCase struct {
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository, settingsRepo repository.SettingsRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo, settingsRepo: settingsRepo}
}

// GetByID obtiene una venta por ID.
func (uc *SaleQueryUseCase) GetByID(id int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := dto.ToSaleResponse(sale)
	return &out, nil
}

// List devuelve todas las ventas, más reciente primero.
func (uc *SaleQueryUseCase) List() ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.ToSaleResponse(s))
	}
	return out, nil
}

// Receipt arma el recibo en texto plano y el enlace de WhatsApp de una venta.
func (uc *SaleQueryUseCase) Receipt(id int64) (*dto.ReceiptResponse, error) {
	sale, settings, err := uc.ReceiptData(id)
	if err != nil {
		return nil, err
	}
	return &dto.ReceiptResponse{
		SaleID:      sale.ID,
		Text:        receipt.Text(sale, settings),
		WhatsAppURL: receipt.WhatsAppURL(sale, settings),
	}, nil
}

// ReceiptData carga la venta y la configuración vigente, la pareja que
// necesita cualquier representación del recibo (texto o PDF).
func (uc *SaleQueryUseCase) ReceiptData(id int64) (*entity.Sale, *entity.Settings, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, nil, err
	}
	return sale, settings, nil
}
