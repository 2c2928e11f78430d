// Package config loads configuration from config.yml, .env files and the
// environment using Viper.
//
// # Usage
//
//	var cfg bitly.Config
//	err := config.Load("bitly", &cfg)
//
// Environment variables override file values. Only variables carrying the
// prefix (BITLY_ for "bitly") are considered; the rest of the name maps to
// nested keys, so BITLY_HTTP_TIMEOUT sets http.timeout.
package config
