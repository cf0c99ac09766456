package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default test path, relative to the project
	DefaultTestPath = "."
	// DefaultMode is the default suite mode
	DefaultMode = "normal"
	// DefaultFileFilter is the default test file name prefix
	DefaultFileFilter = "tests"
	// DefaultSymbolFilter is the default test function name prefix
	DefaultSymbolFilter = "test"
	// DefaultDelimiter is the default separator after the function prefix
	DefaultDelimiter = "_"
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
	// FileName is the optional config file looked up in the project path
	FileName = "kiss.yaml"
	// EnvFileName is the optional dotenv file looked up in the project path
	EnvFileName = ".env"
)

// Environment variables read after the dotenv file is loaded
const (
	EnvMode         = "KISS_MODE"
	EnvFileFilter   = "KISS_FILE_FILTER"
	EnvSymbolFilter = "KISS_SYMBOL_FILTER"
	EnvDelimiter    = "KISS_DELIMITER"
	EnvBail         = "KISS_BAIL"
	EnvLogLevel     = "KISS_LOG_LEVEL"
)
