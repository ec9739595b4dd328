package audio

// Config holds audio settings
type Config struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 to 1.0
}

// DefaultConfig returns the default audio settings
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
	}
}
