package database

import (
	"context"
	"fmt"

	"rentroll/src/config"
	aws_handler "rentroll/src/utils/aws"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SecretGetter resolves a secret value by id.
type SecretGetter interface {
	GetSecretValue(ctx context.Context, secretID string) (string, error)
}

// DSN builds the connection string, preferring an explicit connection string.
func DSN(sqlCfg config.SQLConfig) string {
	if sqlCfg.ConnectionString != "" {
		return sqlCfg.ConnectionString
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		sqlCfg.Host,
		sqlCfg.Username,
		sqlCfg.Password,
		sqlCfg.Database,
		sqlCfg.Port)
}

// SecretsFor returns a Secrets Manager getter when the SQL password is stored as a secret, and
// nil otherwise.
func SecretsFor(ctx context.Context, cfg *config.Config) (SecretGetter, error) {
	if cfg.Databases.SQL.PasswordSecretID == "" {
		return nil, nil
	}
	handler, err := aws_handler.NewAWSHandler(ctx, cfg.AWS.Region)
	if err != nil {
		return nil, err
	}
	return handler.SecretManager, nil
}

// ResolvePassword replaces the configured password with the secret named by PasswordSecretID,
// when both the id and a secret getter are available.
func ResolvePassword(ctx context.Context, sqlCfg config.SQLConfig, secrets SecretGetter) (config.SQLConfig, error) {
	if sqlCfg.PasswordSecretID == "" || secrets == nil {
		return sqlCfg, nil
	}
	password, err := secrets.GetSecretValue(ctx, sqlCfg.PasswordSecretID)
	if err != nil {
		return sqlCfg, fmt.Errorf("failed to read database password secret: %w", err)
	}
	sqlCfg.Password = password
	return sqlCfg, nil
}

// SetupDB opens a connection pool. When a password secret id is configured the password is
// read from secrets instead of the configuration.
func SetupDB(ctx context.Context, cfg *config.Config, secrets SecretGetter) (*pgxpool.Pool, error) {
	sqlCfg, err := ResolvePassword(ctx, cfg.Databases.SQL, secrets)
	if err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(DSN(sqlCfg))
	if err != nil {
		return nil, err
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}
