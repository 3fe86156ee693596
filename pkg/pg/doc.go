// Package pg connects to the PostgreSQL database that can back the shared
// name registry and owns its schema.
//
//	pool, err := pg.Connect(ctx, cfg, log)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	names := registry.NewPostgres(pool, pg.DefaultNamesTable, "name")
//
// The schema lives in embedded goose migrations, so the binary carries it
// and no migrations directory has to be deployed. Goose output is routed to
// the supplied slog logger.
package pg
