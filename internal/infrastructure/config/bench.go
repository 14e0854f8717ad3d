package config

// BenchConfig holds benchmark runner configuration
type BenchConfig struct {
	// Maximum spending operations per second
	Rate float64 `mapstructure:"rate" validate:"omitempty,gt=0"`

	// Burst size for the token bucket
	Burst int `mapstructure:"burst" validate:"omitempty,min=1"`

	// Total operations to run
	Operations int `mapstructure:"operations" validate:"omitempty,min=1"`

	// Number of concurrent workers
	Workers int `mapstructure:"workers" validate:"omitempty,min=1"`

	// Seed for the request generator, 0 picks a random one
	Seed int64 `mapstructure:"seed"`
}
