package config

// Config represents the stubgen configuration
type Config struct {
	Docs  DocsConfig  `mapstructure:"docs"`
	Batch BatchConfig `mapstructure:"batch"`
}

// DocsConfig configures per-client documentation generation
type DocsConfig struct {
	// PackagePrefix is stripped from client directory names when deriving
	// service display names and documentation paths (default: "aws-sdk-")
	PackagePrefix string `mapstructure:"package_prefix"`

	// MarkerPath is the client-relative path of the module graph manifest.
	// Its presence marks a directory as a client package (default:
	// "docs/module-graph.json")
	MarkerPath string `mapstructure:"marker_path"`
}

// BatchConfig configures multi-client batch generation
type BatchConfig struct {
	// Workers is the number of concurrent per-client generation tasks.
	// 0 means auto-detect from the logical CPU count.
	Workers int `mapstructure:"workers"`
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
