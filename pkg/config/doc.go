// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct-tag parsing. Every infrastructure
// package of clinickit (search, pg, redis, opensearch, mongo) exposes a Config
// struct annotated with `env` tags that can be passed straight to Load.
//
//	var searchCfg search.Config
//	config.MustLoad(&searchCfg)
//
//	engine, err := search.New(sink, search.WithConfig[hospital.Patient](searchCfg))
//
// Load caches one parsed value per type. Tests that mutate the environment
// should call ResetCache or use LoadFresh.
package config
