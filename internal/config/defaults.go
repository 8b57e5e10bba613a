package config

const (
	defaultLogDir          = "~/.local/share/framefit/logs"
	defaultReportDir       = "~/.local/share/framefit/reports"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultReadyScoreFloor = 60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			ReportDir: defaultReportDir,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Analysis: Analysis{
			ReadyScoreFloor: defaultReadyScoreFloor,
		},
	}
}
