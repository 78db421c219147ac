package config

const (
	defaultTrainRatio = 0.8
	defaultValRatio   = 0.1
	defaultTestRatio  = 0.1
	defaultSeed       = 42
	defaultLogFormat  = "console"
	defaultLogLevel   = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Ratios: DefaultRatios(),
		Seed:   defaultSeed,
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// DefaultRatios returns the 80/10/10 train/val/test split.
func DefaultRatios() Ratios {
	return Ratios{
		Train: defaultTrainRatio,
		Val:   defaultValRatio,
		Test:  defaultTestRatio,
	}
}
