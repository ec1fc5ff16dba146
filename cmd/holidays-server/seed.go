package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajumanholidays/backend/internal/config"
	"github.com/ajumanholidays/backend/internal/httpapi"
	"github.com/ajumanholidays/backend/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write demo customers, routes and fleet into the database",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	logger := log.New(os.Stdout, "[SEED] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return err
	}

	err = st.Update(func(doc *store.Document) error {
		doc.Customers = append(doc.Customers,
			store.Record{"id": doc.NextID(), "name": "Aisha Menon", "email": "aisha@example.com", "password": httpapi.HashPassword("aisha123")},
			store.Record{"id": doc.NextID(), "name": "Ravi Kumar", "email": "ravi@example.com", "password": httpapi.HashPassword("ravi123")},
		)

		routeID := doc.NextID()
		doc.Routes = append(doc.Routes,
			store.Record{"id": routeID, "origin": "Kochi", "destination": "Munnar", "distanceKm": 130, "fare": 499.5},
		)

		driverID := doc.NextID()
		supervisorID := doc.NextID()
		doc.Drivers = append(doc.Drivers,
			store.Record{"id": driverID, "name": "Suresh Nair", "licenseNumber": "KL-07-2218834", "phone": "9447000001"},
		)
		doc.Supervisors = append(doc.Supervisors,
			store.Record{"id": supervisorID, "name": "Lakshmi Pillai", "phone": "9447000002"},
		)

		doc.Buses = append(doc.Buses, store.Record{
			"id":                 doc.NextID(),
			"name":               "Hill Express",
			"serialNumber":       "AJM-001",
			"registrationNumber": "KL-07-AX-1221",
			"type":               "AC Seater",
			"seatCapacity":       44,
			"from":               "Kochi",
			"to":                 "Munnar",
			"image":              "",
			"driverId":           driverID,
			"supervisorId":       supervisorID,
		})
		return nil
	})
	if err != nil {
		return err
	}

	logger.Printf("seeded demo data into %s", st.Path())
	logger.Println("demo customers: aisha@example.com / aisha123, ravi@example.com / ravi123")
	logger.Printf("admin login: %s / %s", cfg.Admin.Email, cfg.Admin.Password)
	return nil
}
