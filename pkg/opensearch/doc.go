// Package opensearch connects to an OpenSearch cluster and serves full text
// searches over indexed clinic records.
//
//	var cfg opensearch.Config
//	config.MustLoad(&cfg)
//
//	client, err := opensearch.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	find, err := opensearch.NewSearcher[hospital.Doctor](client, opensearch.Query{
//		Index:  "doctors",
//		Fields: []string{"fullName^2", "specialization", "departmentName"},
//		Size:   50,
//	})
//	engine, err := search.New(sink, search.WithSearcher(find))
//
// Terms are matched with a phrase_prefix multi_match so partially typed words
// already find documents. A blank term runs match_all. Each hit's _source is
// decoded into the record type with encoding/json.
package opensearch
