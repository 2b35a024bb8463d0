package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Avatar       string    `json:"avatar,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	DOB          string    `json:"dob,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}

// ProfileUpdates is the subset of user fields profile editing may change.
// Nil pointers mean "leave as is".
type ProfileUpdates struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Gender *string `json:"gender,omitempty"`
	DOB    *string `json:"dob,omitempty"`
}
