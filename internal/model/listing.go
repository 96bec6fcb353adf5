package model

import "time"

// Read models for the listing pages. These are flat scan targets for the
// JOIN queries in the repository layer, not tables of their own.

// CatalogueCar is one row of the car catalogue with its owning team name.
type CatalogueCar struct {
	ID           uint      `json:"id"`
	Model        string    `json:"model"`
	Manufacturer *string   `json:"manufacturer,omitempty"`
	SeasonYear   int       `json:"season_year"`
	Engine       *string   `json:"engine,omitempty"`
	Horsepower   *int      `json:"horsepower,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	TeamName     string    `json:"team_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// DriverEntry is one row of the driver roster with its owning team name.
type DriverEntry struct {
	ID           uint       `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Nationality  *string    `json:"nationality,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	DriverNumber *int       `json:"driver_number,omitempty"`
	TeamName     string     `json:"team_name"`
}

// DriverStanding is one row of the driver standings table. Drivers without
// a stats row report all-zero values.
type DriverStanding struct {
	DriverID      uint   `json:"driver_id"`
	DriverName    string `json:"driver_name"`
	TeamName      string `json:"team_name"`
	Races         int    `json:"races"`
	Wins          int    `json:"wins"`
	Podiums       int    `json:"podiums"`
	Poles         int    `json:"poles"`
	Points        int    `json:"points"`
	Championships int    `json:"championships"`
}

// Overview is the dashboard summary: entity counts plus a preview of the
// latest catalogue entries.
type Overview struct {
	TeamCount   int64          `json:"team_count"`
	CarCount    int64          `json:"car_count"`
	DriverCount int64          `json:"driver_count"`
	LatestCars  []CatalogueCar `json:"latest_cars"`
}

// CarStanding is one row of the car standings table.
type CarStanding struct {
	CarID       uint   `json:"car_id"`
	Model       string `json:"model"`
	SeasonYear  int    `json:"season_year"`
	TeamName    string `json:"team_name"`
	Races       int    `json:"races"`
	Wins        int    `json:"wins"`
	Poles       int    `json:"poles"`
	FastestLaps int    `json:"fastest_laps"`
	Points      int    `json:"points"`
}
