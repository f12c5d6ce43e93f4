package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/progress-api/internal/infrastructure/postgres"
)

func TestSplitSeedStatements(t *testing.T) {
	content := "-- Seed generado\n" +
		"-- STATEMENT_END --\n" +
		"INSERT INTO domains (id, name) VALUES ('D01', 'Core');\r\n" +
		"-- STATEMENT_END --\n" +
		"   \n" +
		"-- STATEMENT_END --\n" +
		"INSERT INTO features (id, name) VALUES ('F000', 'Unknown Feature');\n" +
		"-- STATEMENT_END --\n"

	got := postgres.SplitSeedStatements(content)

	assert.Equal(t, []string{
		"INSERT INTO domains (id, name) VALUES ('D01', 'Core');",
		"INSERT INTO features (id, name) VALUES ('F000', 'Unknown Feature');",
	}, got)
}

func TestSplitSeedStatements_SinSeparador(t *testing.T) {
	assert.Equal(t, []string{"SELECT 1;"}, postgres.SplitSeedStatements("SELECT 1;"))
	assert.Empty(t, postgres.SplitSeedStatements(""))
	assert.Empty(t, postgres.SplitSeedStatements("-- solo comentario"))
}
