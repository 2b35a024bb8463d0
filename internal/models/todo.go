package models

import "time"

type Todo struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Text      string    `gorm:"not null" json:"text"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	DueDate   string    `json:"dueDate,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
