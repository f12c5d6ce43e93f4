// seed_gen genera el script SQL de carga inicial a partir de los exports del catálogo.
//
// Uso: go run ./cmd/seed_gen -data Data -state state [-out scripts/seed.sql] [-encoding windows-1252] [-reset-progress]
// Lee domains.json, features.json, tech_functions.json y "Use Case.csv" de -data y pf_pool.json de -state.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/jhoicas/progress-api/internal/seedgen"
	"github.com/jhoicas/progress-api/pkg/logger"
)

func main() {
	root := findModuleRoot()
	dataDir := flag.String("data", filepath.Join(root, "Data"), "directorio con domains.json, features.json, tech_functions.json y Use Case.csv")
	stateDir := flag.String("state", filepath.Join(root, "state"), "directorio con pf_pool.json")
	outPath := flag.String("out", filepath.Join(root, "scripts", "seed.sql"), "archivo SQL de salida")
	encoding := flag.String("encoding", "utf-8", "codificación del CSV: utf-8, windows-1252, iso-8859-1")
	resetProgress := flag.Bool("reset-progress", false, "sobrescribe progress_percent con 0 en TFs existentes")
	flag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: "info"}).Component("seed_gen")

	in, err := seedgen.Load(seedgen.LoadOptions{DataDir: *dataDir, StateDir: *stateDir, Encoding: *encoding})
	if err != nil {
		log.Fatal().Err(err).Msg("leer entradas")
	}

	res := seedgen.Build(in, seedgen.Options{ResetProgress: *resetProgress})
	for _, w := range res.Warnings {
		log.Warn().Msg(w)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de salida")
	}
	if err := os.WriteFile(*outPath, []byte(res.SQL), 0o644); err != nil {
		log.Fatal().Err(err).Msg("escribir seed")
	}

	log.Info().
		Str("out", *outPath).
		Int("domains", res.Stats.Domains).
		Int("features", res.Stats.Features).
		Int("product_functions", res.Stats.ProductFunctions).
		Int("technical_functions", res.Stats.TechnicalFunctions).
		Int("placeholders", res.Stats.Placeholders).
		Int("use_cases", res.Stats.UseCases).
		Int("links", res.Stats.Links).
		Int("statements", res.Stats.Statements).
		Msg("seed generado")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
