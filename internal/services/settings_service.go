package services

import (
	"github.com/rsahoo0530/LifeSync-V2/internal/docstore"
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"github.com/rsahoo0530/LifeSync-V2/internal/syncer"
)

type SettingsService struct {
	store docstore.Store
}

func NewSettingsService(store docstore.Store) *SettingsService {
	return &SettingsService{store: store}
}

func (service *SettingsService) ToggleSound(session *syncer.Session) (models.Settings, error) {
	settings := session.Settings()
	settings.SoundEnabled = !settings.SoundEnabled
	return service.write(session, settings)
}

func (service *SettingsService) ToggleDarkMode(session *syncer.Session) (models.Settings, error) {
	settings := session.Settings()
	settings.DarkMode = !settings.DarkMode
	return service.write(session, settings)
}

func (service *SettingsService) write(session *syncer.Session, settings models.Settings) (models.Settings, error) {
	settings.UserID = session.UserID()
	err := service.store.Write(session.UserID(), docstore.CollectionSettings, docstore.SettingsDocID, settings)
	if err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
