package main

import (
	"context"
	"flag"
	"log"
	"os"

	"rentroll/src/config"
	"rentroll/src/database"
	"rentroll/src/models"
	"rentroll/src/utils"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// rentRollRow mirrors the rent_roll table created by the migrations.
type rentRollRow struct {
	ID           uint `gorm:"primaryKey"`
	Date         string
	PropertyID   string
	PropertyName string
	UnitNumber   string
	ResidentID   string
	ResidentName string
	MonthlyRent  float64
}

func (rentRollRow) TableName() string {
	return "rent_roll"
}

func main() {
	seedFile := flag.String("seed", "", "rent roll CSV to load into the rent_roll table after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("Error loading config for environment: %v", err)
	}

	ctx := context.Background()
	secrets, err := database.SecretsFor(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up secrets access: %v", err)
	}
	sqlCfg, err := database.ResolvePassword(ctx, cfg.Databases.SQL, secrets)
	if err != nil {
		log.Fatalf("Failed to resolve database password: %v", err)
	}

	db, err := gorm.Open(postgres.Open(database.DSN(sqlCfg)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB from GORM DB: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(sqlDB, "./migrations"); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Println("Database migration completed successfully")

	if *seedFile == "" {
		return
	}
	records, err := utils.ReadRentRollCSV(*seedFile)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	rows, skipped := toRows(records)
	for _, record := range skipped {
		log.Printf("Skipping %s %s on %s: monthly rent %q is not numeric",
			record.PropertyName, record.UnitNumber, record.Date, record.MonthlyRent)
	}
	if len(rows) == 0 {
		log.Printf("No rent roll rows to seed from %s", *seedFile)
		return
	}
	if err := db.CreateInBatches(rows, 500).Error; err != nil {
		log.Fatalf("Failed to seed rent roll: %v", err)
	}
	log.Printf("Seeded %d rent roll rows from %s (%d skipped)", len(rows), *seedFile, len(skipped))
}

// toRows converts records to table rows. Records whose rent is not numeric cannot be stored in
// the numeric column and are returned separately.
func toRows(records []models.RentRollRecord) ([]rentRollRow, []models.RentRollRecord) {
	rows := make([]rentRollRow, 0, len(records))
	skipped := make([]models.RentRollRecord, 0)
	for _, record := range records {
		rent, ok := record.Rent()
		if !ok {
			skipped = append(skipped, record)
			continue
		}
		rows = append(rows, rentRollRow{
			Date:         record.Date,
			PropertyID:   record.PropertyID,
			PropertyName: record.PropertyName,
			UnitNumber:   record.UnitNumber,
			ResidentID:   record.ResidentID,
			ResidentName: record.ResidentName,
			MonthlyRent:  rent,
		})
	}
	return rows, skipped
}
