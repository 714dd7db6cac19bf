// Package migration creates the food catalog schema on first start.
//
// The table starts empty and the service never writes to it. Operators load rows directly, one per
// food, keyed by the trimmed lowercase name, with sodium, potassium and cholesterol in mg per 100 g:
//
//	INSERT INTO foods (name, display_name, calories, fat, protein, sodium, carbohydrates, sugar)
//	VALUES ('mango', 'Mango', 60, 0.4, 0.8, 1, 15, 13.7)
//	ON CONFLICT (name) DO UPDATE SET display_name = EXCLUDED.display_name, calories = EXCLUDED.calories,
//	  fat = EXCLUDED.fat, protein = EXCLUDED.protein, sodium = EXCLUDED.sodium,
//	  carbohydrates = EXCLUDED.carbohydrates, sugar = EXCLUDED.sugar, updated_at = now();
//
// Columns left NULL are served as "N/A". Bulk loads can use COPY foods (...) FROM with a CSV file.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nutriscan/internal/jsonlog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Nutrient columns are nullable; NULL is served as "N/A".
var steps = []migrationStep{
	{
		Name: "create_table_foods",
		SQL: `CREATE TABLE IF NOT EXISTS foods (
  name          TEXT             PRIMARY KEY CHECK (name = lower(btrim(name)) AND name <> ''),
  display_name  TEXT             NOT NULL,
  calories      DOUBLE PRECISION,
  fat           DOUBLE PRECISION,
  saturated_fat DOUBLE PRECISION,
  protein       DOUBLE PRECISION,
  sodium        DOUBLE PRECISION,
  potassium     DOUBLE PRECISION,
  cholesterol   DOUBLE PRECISION,
  carbohydrates DOUBLE PRECISION,
  fiber         DOUBLE PRECISION,
  sugar         DOUBLE PRECISION,
  updated_at    TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_foods_updated_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_foods_updated_at ON foods (updated_at);`,
	},
}

// EnsureMigrated creates the catalog schema unless the foods table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *jsonlog.Logger, dbHost string) error {
	if log == nil {
		log = jsonlog.Nop()
	}
	start := time.Now()
	base := jsonlog.Fields{"component": "database", "db_host": dbHost}
	with := func(extra jsonlog.Fields) jsonlog.Fields {
		f := jsonlog.Fields{}
		for k, v := range base {
			f[k] = v
		}
		for k, v := range extra {
			f[k] = v
		}
		return f
	}

	log.Info("db_migration_check", base)

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.foods') IS NOT NULL").Scan(&exists); err != nil {
		log.Error("db_migration_failed", err, with(jsonlog.Fields{"duration_ms": time.Since(start).Milliseconds()}))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip", with(jsonlog.Fields{
			"reason":      "schema already exists",
			"duration_ms": time.Since(start).Milliseconds(),
		}))
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed", err, with(jsonlog.Fields{
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}))
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step", with(jsonlog.Fields{
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}))
	}

	log.Info("db_migration_success", with(jsonlog.Fields{"duration_ms": time.Since(start).Milliseconds()}))
	return nil
}
