package model

import "time"

// Car represents one season entry in a team's catalogue.
type Car struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TeamID       uint      `json:"team_id" gorm:"not null;index"`
	Model        string    `json:"model" gorm:"size:255;not null"`
	Manufacturer *string   `json:"manufacturer,omitempty" gorm:"size:255"`
	SeasonYear   int       `json:"season_year" gorm:"not null;index"`
	Engine       *string   `json:"engine,omitempty" gorm:"size:255"`
	Horsepower   *int      `json:"horsepower,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty" gorm:"size:1024"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations. Deleting a team is blocked while cars reference it;
	// deleting a car takes its stats row with it.
	Team  Team     `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
	Stats CarStats `json:"stats,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

// CarStats is the 1:1 season statistics row for a car.
type CarStats struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	CarID       uint      `json:"car_id" gorm:"uniqueIndex;not null"`
	Races       int       `json:"races" gorm:"not null;default:0"`
	Wins        int       `json:"wins" gorm:"not null;default:0"`
	Poles       int       `json:"poles" gorm:"not null;default:0"`
	FastestLaps int       `json:"fastest_laps" gorm:"not null;default:0"`
	Points      int       `json:"points" gorm:"not null;default:0"`
	UpdatedAt   time.Time `json:"updated_at"`
}
