// Package config loads CLI defaults from environment variables, optionally
// seeded from a .env file. Command-line flags override these values.
package config

// Config holds CLI configuration.
type Config struct {
	Process ProcessConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// ProcessConfig holds sheet processing defaults.
type ProcessConfig struct {
	// Processor is the default processor name (default: keyvalue)
	Processor string `env:"COPYTEXT_PROCESSOR" default:"keyvalue"`

	// Markdown enables rendering of flagged cells (default: true)
	Markdown bool `env:"COPYTEXT_MARKDOWN" default:"true"`

	// PrintArea limits sheets to their print area (default: false)
	PrintArea bool `env:"COPYTEXT_PRINT_AREA" default:"false"`

	// Include and Exclude are comma-separated sheet names
	Include []string `env:"COPYTEXT_INCLUDE"`
	Exclude []string `env:"COPYTEXT_EXCLUDE"`
}

// OutputConfig holds serialization settings.
type OutputConfig struct {
	// Format is json or yaml (default: json)
	Format string `env:"COPYTEXT_FORMAT" default:"json"`

	// Pretty enables indented JSON (default: false)
	Pretty bool `env:"COPYTEXT_PRETTY" default:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is debug, info, warn or error (default: warn)
	Level string `env:"COPYTEXT_LOG_LEVEL" envAlt:"LOG_LEVEL" default:"warn"`

	// Format is text or json (default: text)
	Format string `env:"COPYTEXT_LOG_FORMAT" envAlt:"LOG_FORMAT" default:"text"`
}
