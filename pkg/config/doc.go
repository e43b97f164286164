// Package config loads configuration structs from environment variables
// using caarlos0/env field tags, bootstrapping a .env file once per process
// via godotenv. Each struct type is parsed once and cached, so repeated loads
// of the same type are cheap and consistent.
//
// Usage:
//
//	type LocaleConfig struct {
//		CatalogDir string `env:"LOCALE_CATALOG_DIR" envDefault:"./locales"`
//		Debug      bool   `env:"LOCALE_DEBUG" envDefault:"false"`
//	}
//
//	var cfg LocaleConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package config
