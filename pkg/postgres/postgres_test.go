package postgres

import (
	"testing"

	"ecotrack/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(&config.DatabaseConfig{
		Host: "db", Port: "5432", User: "eco", Password: "pw", DBName: "ecotrack", SSLMode: "disable",
	})
	assert.Equal(t, "host=db port=5432 user=eco password=pw dbname=ecotrack sslmode=disable", dsn)
}

func TestSchemaDeclaresTables(t *testing.T) {
	for _, table := range []string{"users", "footprints", "recommendations"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table)
	}
}
