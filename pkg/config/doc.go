// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is loaded once per process (missing file is fine), then
// values are parsed into any struct annotated with `env` tags.
//
//	type MongoConfig struct {
//		URL      string `env:"MONGODB_URL,required"`
//		Database string `env:"MONGODB_DATABASE" envDefault:"yetta_db"`
//	}
//
//	var cfg MongoConfig
//	config.MustLoad(&cfg)
//
// MustLoad panics on failure; required configuration missing at startup is a
// fatal error, not something to limp along without.
package config
