package repository

import "github.com/camilcandy/pos-api/internal/domain/entity"

// SettingsRepository define el puerto del registro único de configuración.
// Get devuelve los valores por defecto cuando aún no hay fila guardada.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Save(settings *entity.Settings) error
}
