package config

const (
	// DefaultReportTo is the default destination of the generated runner's output
	DefaultReportTo = "stdout"
	// DefaultMainFile is the default name of the generated runner source
	DefaultMainFile = "clay_main.c"
	// DefaultHeaderFile is the default name of the generated declarations header
	DefaultHeaderFile = "clay.h"
	// DefaultExtension is the extension of test source files
	DefaultExtension = ".c"
	// DefaultConfigName is the config file looked up in the working directory
	DefaultConfigName = ".clay"
	// DefaultEnvFile is the dotenv file looked up in the working directory
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes environment variable overrides, e.g. CLAY_REPORT_TO
	EnvPrefix = "CLAY"
)

// DefaultSupportModules are appended to the generated runner in this order
var DefaultSupportModules = []string{
	"clay_sandbox.c",
	"clay_fixtures.c",
	"clay_fs.c",
}

// printMethods maps report modes to the C expression behind clay_print(...)
var printMethods = map[string]string{
	"stdout": "printf(__VA_ARGS__)",
	"stderr": "fprintf(stderr, __VA_ARGS__)",
	"silent": "",
}
