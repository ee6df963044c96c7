package config

// Default value constants to avoid magic numbers and strings.
const (
	DefaultBaseURL        = "https://api.fitforge.app/api"
	DefaultTimeoutSeconds = 15
	DefaultLocale         = "en"
	DefaultLogLevel       = "warn"

	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 300
)

// NewDefaultConfig returns a Config populated with compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		UI: UIConfig{
			Locale: DefaultLocale,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
