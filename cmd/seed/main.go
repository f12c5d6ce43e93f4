// seed aplica un script generado por seed_gen sentencia por sentencia en una única transacción.
//
// Uso: go run ./cmd/seed [-file scripts/seed.sql] [-schema]
package main

import (
	"context"
	"flag"
	"os"

	"github.com/jhoicas/progress-api/internal/infrastructure/postgres"
	"github.com/jhoicas/progress-api/pkg/config"
	"github.com/jhoicas/progress-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	file := flag.String("file", cfg.Seed.File, "script SQL a aplicar")
	schema := flag.Bool("schema", false, "aplica las migraciones antes del seed")
	flag.Parse()

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *schema {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("esquema aplicado")
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("leer seed")
	}
	statements := postgres.SplitSeedStatements(string(content))
	if len(statements) == 0 {
		log.Warn().Str("file", *file).Msg("el archivo no contiene sentencias")
		return
	}

	n, err := postgres.NewTxRunner(pool).RunStatements(ctx, statements)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("aplicar seed")
	}
	log.Info().Str("file", *file).Int("statements", n).Msg("seed aplicado")
}
