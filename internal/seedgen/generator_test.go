package seedgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/progress-api/internal/infrastructure/postgres"
	"github.com/jhoicas/progress-api/internal/seedgen"
)

func strPtr(s string) *string { return &s }

func sampleInputs() *seedgen.Inputs {
	return &seedgen.Inputs{
		Domains:  []seedgen.DomainRecord{{ID: "D01", Name: "Core"}},
		Features: []seedgen.FeatureRecord{{ID: "F1", Name: "Motion", DomainID: strPtr("D01")}},
		ProductFunctions: map[string]seedgen.ProductFunctionRecord{
			"PF2": {Name: "See", Description: strPtr("legacy desc")},
			"PF1": {Name: "Walk", FeatureID: strPtr("F1"), Tags: []string{"gait"}, TFIDs: []string{"TF - 1"}},
		},
		TechnicalFunctions: []seedgen.TechnicalFunctionRecord{
			{ReqID: "TF - 1", Name: strPtr("Step")},
			{ReqID: "TF-2", Name: strPtr("O'Reilly")},
			{ReqID: "  "},
		},
		UseCases: []seedgen.UseCaseRecord{
			{UID: "UC1", Name: "Pick", TechnicalFunction: "[TF - 1] [TF-2] [TF-1] [ZZ-9]"},
			{UID: "UC2", Name: "Idle"},
		},
	}
}

func TestBuild(t *testing.T) {
	res := seedgen.Build(sampleInputs(), seedgen.Options{})

	assert.Equal(t, seedgen.Stats{
		Domains:            1,
		Features:           2,
		ProductFunctions:   2,
		TechnicalFunctions: 3,
		Placeholders:       1,
		UseCases:           2,
		Links:              3,
		Statements:         6,
	}, res.Stats)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "ZZ-9")

	stmts := postgres.SplitSeedStatements(res.SQL)
	require.Len(t, stmts, res.Stats.Statements, "el header de comentario se descarta")

	assert.True(t, strings.HasPrefix(stmts[0], "INSERT INTO domains"))
	assert.Contains(t, stmts[1], "('F000', 'Unknown Feature', 'D01')")
	assert.Less(t, strings.Index(stmts[2], "'PF1'"), strings.Index(stmts[2], "'PF2'"), "PFs ordenados por id")
	assert.Contains(t, stmts[2], "'legacy desc', NULL, 'F000', ARRAY[]::text[]", "sin feature usa F000")
	assert.Contains(t, stmts[2], "ARRAY['gait']::text[]")
	assert.Contains(t, stmts[3], "('TF-1', 'Step', NULL, NULL, 0, 'PF1')")
	assert.Contains(t, stmts[3], "'O''Reilly'")
	assert.Contains(t, stmts[3], "('ZZ-9', 'Placeholder ZZ-9', 'Auto-generated placeholder', 'Unknown', 0, NULL)")
	assert.NotContains(t, stmts[3], "progress_percent = EXCLUDED", "el progreso existente se conserva")
	assert.Contains(t, stmts[5], "('UC1', 'TF-1'),\n('UC1', 'TF-2'),\n('UC1', 'ZZ-9')")
	assert.Contains(t, stmts[5], "DO NOTHING")
}

func TestBuild_ResetProgress(t *testing.T) {
	res := seedgen.Build(sampleInputs(), seedgen.Options{ResetProgress: true})
	assert.Contains(t, res.SQL, "progress_percent = EXCLUDED.progress_percent")
}

func TestBuild_Lotes(t *testing.T) {
	in := &seedgen.Inputs{}
	for i := 0; i < seedgen.BatchSize+1; i++ {
		in.Domains = append(in.Domains, seedgen.DomainRecord{ID: "D" + strings.Repeat("x", i+1), Name: "n"})
	}
	res := seedgen.Build(in, seedgen.Options{})
	// 2 lotes de dominios + 1 de features (fallback)
	assert.Equal(t, 3, res.Stats.Statements)
}

func TestBuild_UIDDuplicado(t *testing.T) {
	in := &seedgen.Inputs{UseCases: []seedgen.UseCaseRecord{
		{UID: "UC1", Name: "viejo"},
		{UID: "UC2", Name: "otro"},
		{UID: "UC1", Name: "nuevo"},
	}}
	res := seedgen.Build(in, seedgen.Options{})
	assert.Equal(t, 2, res.Stats.UseCases)
	assert.Contains(t, res.SQL, "('UC1', 'nuevo'")
	assert.NotContains(t, res.SQL, "viejo")
}
