package config

// Values bound to command line flags.
var (
	Network    string
	BasePath   string
	ConfigFile string

	LogLevel    string
	LogEncoding string
)

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Logger returns the logging configuration chosen on the command line.
func Logger() LoggerConfig {
	return LoggerConfig{
		Level:    LogLevel,
		Encoding: LogEncoding,
	}
}
