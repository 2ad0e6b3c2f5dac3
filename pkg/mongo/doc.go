// Package mongo connects to MongoDB with the v2 driver and serves substring
// searches over clinic collections.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	find, err := mongo.NewSearcher[hospital.Room](db.Collection("rooms"), mongo.Query{
//		Fields: []string{"room_name", "department", "building"},
//		Limit:  100,
//		Sort:   "room_name",
//	})
//	engine, err := search.New(sink, search.WithSearcher(find))
//
// The term is quoted with regexp.QuoteMeta and matched case-insensitively
// against every field. A blank term matches all documents.
package mongo
