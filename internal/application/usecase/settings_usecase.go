package usecase

import (
	"github.com/camilcandy/pos-api/internal/application/dto"
	"github.com/camilcandy/pos-api/internal/domain"
	"github.com/camilcandy/pos-api/internal/domain/repository"
)

// SettingsUseCase lectura y escritura del registro único de configuración.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración vigente (valores por defecto si no hay guardada).
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	resp := dto.ToSettingsResponse(settings)
	return &resp, nil
}

// Update aplica los campos enviados sobre la configuración vigente y la guarda.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if in.BusinessName != nil {
		if *in.BusinessName == "" {
			return nil, domain.ErrInvalidInput
		}
		settings.BusinessName = *in.BusinessName
	}
	if in.BusinessAddress != nil {
		settings.BusinessAddress = *in.BusinessAddress
	}
	if in.BusinessPhone != nil {
		settings.BusinessPhone = *in.BusinessPhone
	}
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		settings.TaxRate = *in.TaxRate
	}
	if in.CurrencySymbol != nil {
		settings.CurrencySymbol = *in.CurrencySymbol
	}
	if in.ReceiptFooter != nil {
		settings.ReceiptFooter = *in.ReceiptFooter
	}
	if in.ThemeColor != nil {
		settings.ThemeColor = *in.ThemeColor
	}
	if in.Language != nil {
		settings.Language = *in.Language
	}
	if in.DarkMode != nil {
		settings.DarkMode = *in.DarkMode
	}
	if err := uc.repo.Save(settings); err != nil {
		return nil, err
	}
	resp := dto.ToSettingsResponse(settings)
	return &resp, nil
}
