package models

// Settings holds per-user preferences synced as their own document.
type Settings struct {
	UserID       uint `gorm:"primaryKey" json:"-"`
	SoundEnabled bool `gorm:"not null" json:"soundEnabled"`
	DarkMode     bool `gorm:"not null" json:"darkMode"`
}

func DefaultSettings(userID uint) Settings {
	return Settings{UserID: userID, SoundEnabled: true, DarkMode: true}
}
