// Package pg connects to PostgreSQL with pgx/v5, applies the embedded goose
// migrations and serves substring searches over clinic tables.
//
// Configuration is read from the environment:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, logger); err != nil {
//		return err
//	}
//
// NewSearcher adapts a SearchQuery to search.Searcher so a search.Engine can
// query the database instead of filtering in memory:
//
//	find, err := pg.NewSearcher[hospital.Patient](pool, pg.SearchQuery{
//		Table:         "patients",
//		SearchColumns: hospital.PatientColumns,
//		OrderBy:       "full_name",
//		Limit:         100,
//		Unaccent:      true,
//	})
//	engine, err := search.New(sink, search.WithSearcher(find))
//
// The term is matched with ILIKE against every search column. LIKE wildcards
// in the term are escaped and identifiers are quoted. With Unaccent set both
// sides are passed through f_unaccent, which Migrate installs together with
// trigram indexes.
package pg
