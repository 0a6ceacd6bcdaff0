package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentroll/src/config"
	"rentroll/src/database"
)

type failingSecrets struct{}

func (failingSecrets) GetSecretValue(ctx context.Context, secretID string) (string, error) {
	return "", errors.New("access denied")
}

func TestDSN(t *testing.T) {
	sqlCfg := config.SQLConfig{
		Host:     "localhost",
		Port:     "5432",
		Username: "rentroll",
		Password: "secret",
		Database: "rentroll",
	}
	assert.Equal(t, "host=localhost user=rentroll password=secret dbname=rentroll port=5432 sslmode=disable", database.DSN(sqlCfg))

	sqlCfg.ConnectionString = "postgres://rentroll@db/rentroll"
	assert.Equal(t, "postgres://rentroll@db/rentroll", database.DSN(sqlCfg))
}

func TestSetupDBSecretFailure(t *testing.T) {
	cfg := &config.Config{Databases: config.DatabasesConfig{SQL: config.SQLConfig{
		Host:             "localhost",
		Port:             "5432",
		PasswordSecretID: "rentroll/db",
	}}}
	_, err := database.SetupDB(context.Background(), cfg, failingSecrets{})
	assert.ErrorContains(t, err, "database password secret")
}

type staticSecrets map[string]string

func (s staticSecrets) GetSecretValue(ctx context.Context, secretID string) (string, error) {
	value, ok := s[secretID]
	if !ok {
		return "", errors.New("secret not found")
	}
	return value, nil
}

func TestResolvePassword(t *testing.T) {
	sqlCfg := config.SQLConfig{Password: "from-config", PasswordSecretID: "rentroll/db"}

	resolved, err := database.ResolvePassword(context.Background(), sqlCfg, staticSecrets{"rentroll/db": "from-secret"})
	assert.NoError(t, err)
	assert.Equal(t, "from-secret", resolved.Password)

	resolved, err = database.ResolvePassword(context.Background(), sqlCfg, nil)
	assert.NoError(t, err)
	assert.Equal(t, "from-config", resolved.Password)

	sqlCfg.PasswordSecretID = ""
	resolved, err = database.ResolvePassword(context.Background(), sqlCfg, staticSecrets{})
	assert.NoError(t, err)
	assert.Equal(t, "from-config", resolved.Password)

	_, err = database.ResolvePassword(context.Background(), config.SQLConfig{PasswordSecretID: "missing"}, staticSecrets{})
	assert.ErrorContains(t, err, "database password secret")
}

func TestSecretsForPlainPassword(t *testing.T) {
	secrets, err := database.SecretsFor(context.Background(), &config.Config{})
	assert.NoError(t, err)
	assert.Nil(t, secrets)
}
