package models

import "time"

// Proof attests that a habit was completed on a specific calendar day.
// HabitID is a weak reference: deleting a habit does not cascade here.
// Uniqueness per (HabitID, Date) is not enforced at this layer; the
// service boundary rejects marking an already-completed day.
type Proof struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	HabitID   string    `gorm:"not null;index" json:"taskId"`
	Date      string    `gorm:"not null" json:"date"`
	Remark    string    `json:"remark,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}
