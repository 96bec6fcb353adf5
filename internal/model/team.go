package model

import "time"

// Team represents a constructor team that owns cars and drivers.
type Team struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;index"`
	BaseCountry *string   `json:"base_country,omitempty" gorm:"size:100"`
	Principal   *string   `json:"principal,omitempty" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Cars    []Car    `json:"cars,omitempty" gorm:"foreignKey:TeamID"`
	Drivers []Driver `json:"drivers,omitempty" gorm:"foreignKey:TeamID"`
}
