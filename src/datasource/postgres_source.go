package datasource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentroll/src/models"
)

const selectRentRoll = `
	SELECT
		to_char(date, 'YYYY-MM-DD') AS date,
		property_id,
		property_name,
		unit_number,
		COALESCE(resident_id, '') AS resident_id,
		COALESCE(resident_name, '') AS resident_name,
		trim_scale(monthly_rent)::text AS monthly_rent
	FROM rent_roll
	ORDER BY id`

// PostgresSource reads the rent roll from the rent_roll table in insertion order.
type PostgresSource struct {
	DB *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{DB: db}
}

func (s *PostgresSource) Name() string {
	return "postgres:rent_roll"
}

func (s *PostgresSource) Load(ctx context.Context) ([]models.RentRollRecord, error) {
	rows, err := s.DB.Query(ctx, selectRentRoll)
	if err != nil {
		return nil, fmt.Errorf("failed to query rent roll: %w", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RentRollRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan rent roll: %w", err)
	}
	return records, nil
}
