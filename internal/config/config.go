package config

import (
	"fmt"
	"os"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port                string
	MongoURI            string
	DBName              string
	StripeSecretKey     string
	FirebaseCredentials string
}

// Load reads the configuration from the environment. Required variables are
// validated here so a misconfigured deployment fails at startup, not on the
// first request.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                os.Getenv("PORT"),
		MongoURI:            os.Getenv("MONGODB_URI"),
		DBName:              os.Getenv("DB_NAME"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable not set")
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME environment variable not set")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY environment variable not set")
	}
	if cfg.FirebaseCredentials == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS environment variable not set")
	}

	return cfg, nil
}
