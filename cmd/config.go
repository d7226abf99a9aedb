package cmd

import "time"

// Config holds all environment-driven settings of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StaleDraftMaxAge is how long an order may sit in draft before the
	// background sweep cancels it.
	StaleDraftMaxAge time.Duration
	// StaleDraftSchedule is the six-field cron expression of the sweep.
	StaleDraftSchedule string
}
