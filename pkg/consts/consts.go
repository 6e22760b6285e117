package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for writing formatted files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the project configuration file looked up in the
	// working directory
	DefaultConfigFile = ".sqlpretty.yaml"

	// ConfigEnvVar overrides the location of the configuration file
	ConfigEnvVar = "SQLPRETTY_CONFIG"

	// DefaultExtension is the file extension formatted when walking directories
	DefaultExtension = ".sql"

	// StdinPath is the path argument that means "read from stdin"
	StdinPath = "-"
)
