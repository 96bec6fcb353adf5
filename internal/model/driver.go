package model

import "time"

// Driver represents a driver assigned to exactly one team.
type Driver struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	TeamID       uint       `json:"team_id" gorm:"not null;index"`
	FirstName    string     `json:"first_name" gorm:"size:255;not null"`
	LastName     string     `json:"last_name" gorm:"size:255;not null;index"`
	Nationality  *string    `json:"nationality,omitempty" gorm:"size:100"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	DriverNumber *int       `json:"driver_number,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Team  Team        `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
	Stats DriverStats `json:"stats,omitempty" gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
}

// DriverStats is the 1:1 career statistics row for a driver.
type DriverStats struct {
	ID            uint      `json:"-" gorm:"primaryKey"`
	DriverID      uint      `json:"driver_id" gorm:"uniqueIndex;not null"`
	Races         int       `json:"races" gorm:"not null;default:0"`
	Wins          int       `json:"wins" gorm:"not null;default:0"`
	Podiums       int       `json:"podiums" gorm:"not null;default:0"`
	Poles         int       `json:"poles" gorm:"not null;default:0"`
	Points        int       `json:"points" gorm:"not null;default:0"`
	Championships int       `json:"championships" gorm:"not null;default:0"`
	UpdatedAt     time.Time `json:"updated_at"`
}
