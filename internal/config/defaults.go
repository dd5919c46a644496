package config

const (
	defaultHomeDir             = "~/.local/share/lodestone"
	defaultLogDir              = "~/.local/share/lodestone/logs"
	defaultJournalPath         = "~/.local/share/lodestone/journal.db"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultProbeTimeoutSeconds = 2
	defaultFallbackPort        = 16000
)

func defaultProbeHosts() []string {
	return []string{"www.google.com:80", "www.baidu.com:80"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Resolver: Resolver{
			PreferIPv4:          true,
			ProbeHosts:          defaultProbeHosts(),
			ProbeTimeoutSeconds: defaultProbeTimeoutSeconds,
			FallbackPort:        defaultFallbackPort,
		},
		Paths: Paths{
			HomeDir: defaultHomeDir,
			LogDir:  defaultLogDir,
		},
		Journal: Journal{
			Path: defaultJournalPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
