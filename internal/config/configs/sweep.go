package configs

import "time"

// Sweep configures the in-process scheduler for the weekly generation
// sweep and the retention cleanup. When disabled, the sweep only runs
// via its HTTP trigger endpoint.
type Sweep struct {
	// Enabled starts the in-process ticker.
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Interval between sweep runs. Defaults to one week.
	Interval time.Duration `env:"INTERVAL" envDefault:"168h"`
	// WorkerLimit bounds how many users are processed concurrently.
	WorkerLimit int `env:"WORKER_LIMIT" envDefault:"4"`
	// Secret protects the HTTP trigger endpoint as a bearer token.
	// Empty disables the check.
	Secret string `env:"SECRET" envDefault:""`
}
