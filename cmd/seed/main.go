package main

import (
	"context"
	"log"

	"apexgrid/internal/config"
	"apexgrid/internal/db"
	"apexgrid/internal/model"
	"apexgrid/internal/repository"
	"apexgrid/internal/service"
)

type seedDriver struct {
	first, last, nationality, dob, number string
	stats                                 service.DriverStatsInput
}

type seedCar struct {
	model, manufacturer, engine, horsepower string
	seasonYear                              int
	stats                                   service.CarStatsInput
}

type seedTeam struct {
	name, baseCountry, principal string
	cars                         []seedCar
	drivers                      []seedDriver
}

var grid = []seedTeam{
	{
		name: "Apex Racing", baseCountry: "UK", principal: "Jordan Miles",
		cars: []seedCar{
			{model: "AR-01", manufacturer: "Apex", engine: "V6 Turbo Hybrid", horsepower: "1000", seasonYear: 2024,
				stats: service.CarStatsInput{Races: 22, Wins: 7, Poles: 6, FastestLaps: 5, Points: 412}},
			{model: "AR-02", manufacturer: "Apex", engine: "V6 Turbo Hybrid", horsepower: "1015", seasonYear: 2025,
				stats: service.CarStatsInput{Races: 10, Wins: 4, Poles: 3, FastestLaps: 2, Points: 198}},
		},
		drivers: []seedDriver{
			{first: "Alex", last: "Fernandez", nationality: "Spain", dob: "1996-04-12", number: "14",
				stats: service.DriverStatsInput{Races: 120, Wins: 18, Podiums: 44, Poles: 15, Points: 1402, Championships: 1}},
			{first: "Maya", last: "Kowalski", nationality: "Poland", dob: "2001-09-03", number: "27",
				stats: service.DriverStatsInput{Races: 44, Wins: 2, Podiums: 9, Poles: 3, Points: 388}},
		},
	},
	{
		name: "Vortex Motorsport", baseCountry: "Italy", principal: "Lucia Bellini",
		cars: []seedCar{
			{model: "VX-24", manufacturer: "Vortex", engine: "V6 Turbo", horsepower: "985", seasonYear: 2024,
				stats: service.CarStatsInput{Races: 22, Wins: 3, Poles: 4, FastestLaps: 6, Points: 301}},
		},
		drivers: []seedDriver{
			{first: "Niko", last: "Laine", nationality: "Finland", dob: "1998-11-21", number: "7",
				stats: service.DriverStatsInput{Races: 88, Wins: 9, Podiums: 25, Poles: 11, Points: 876}},
		},
	},
	{
		name: "Meridian GP", baseCountry: "Australia", principal: "Sam Carter",
		cars: []seedCar{
			{model: "M-9", manufacturer: "Meridian", engine: "V6 Hybrid", horsepower: "960", seasonYear: 2023,
				stats: service.CarStatsInput{Races: 23, Wins: 0, Poles: 0, FastestLaps: 1, Points: 74}},
		},
		drivers: []seedDriver{
			{first: "Ren", last: "Takahashi", nationality: "Japan", dob: "2000-02-29", number: "88",
				stats: service.DriverStatsInput{Races: 40, Wins: 0, Podiums: 2, Poles: 0, Points: 96}},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.Car{},
		&model.Driver{},
		&model.CarStats{},
		&model.DriverStats{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	teamRepo := repository.NewTeamRepository(gormDB)
	carRepo := repository.NewCarRepository(gormDB)
	driverRepo := repository.NewDriverRepository(gormDB)
	statsRepo := repository.NewStatsRepository(gormDB)

	teamService := service.NewTeamService(teamRepo, carRepo, driverRepo)
	carService := service.NewCarService(carRepo, teamRepo)
	driverService := service.NewDriverService(driverRepo, teamRepo)
	statsService := service.NewStatsService(statsRepo, driverRepo, carRepo)

	ctx := context.Background()

	count, err := teamRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count teams: %v", err)
	}
	if count > 0 {
		log.Printf("Found %d existing teams, nothing to do", count)
		return
	}

	for _, t := range grid {
		team, err := teamService.CreateTeam(ctx, t.name, &t.baseCountry, &t.principal)
		if err != nil {
			log.Fatalf("Failed to seed team %q: %v", t.name, err)
		}

		for _, sc := range t.cars {
			car, err := carService.CreateCar(ctx, service.CreateCarInput{
				TeamID:       team.ID,
				Model:        sc.model,
				Manufacturer: &sc.manufacturer,
				SeasonYear:   sc.seasonYear,
				Engine:       &sc.engine,
				Horsepower:   &sc.horsepower,
			})
			if err != nil {
				log.Fatalf("Failed to seed car %q: %v", sc.model, err)
			}
			if err := statsService.UpsertCarStats(ctx, car.ID, sc.stats); err != nil {
				log.Fatalf("Failed to seed car stats for %q: %v", sc.model, err)
			}
		}

		for _, sd := range t.drivers {
			driver, err := driverService.CreateDriver(ctx, service.CreateDriverInput{
				TeamID:       team.ID,
				FirstName:    sd.first,
				LastName:     sd.last,
				Nationality:  &sd.nationality,
				DateOfBirth:  &sd.dob,
				DriverNumber: &sd.number,
			})
			if err != nil {
				log.Fatalf("Failed to seed driver %s %s: %v", sd.first, sd.last, err)
			}
			if err := statsService.UpsertDriverStats(ctx, driver.ID, sd.stats); err != nil {
				log.Fatalf("Failed to seed driver stats for %s %s: %v", sd.first, sd.last, err)
			}
		}

		log.Printf("Seeded team %q with %d cars and %d drivers", t.name, len(t.cars), len(t.drivers))
	}

	log.Println("Seed complete")
}
