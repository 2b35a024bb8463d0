package models

import "time"

type JournalEntry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Date      string    `gorm:"not null" json:"date"`
	Subject   string    `gorm:"not null" json:"subject"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Images    []string  `gorm:"serializer:json;not null" json:"images,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
