package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Docs defaults
	v.SetDefault("docs.package_prefix", "aws-sdk-")
	v.SetDefault("docs.marker_path", "docs/module-graph.json")

	// Batch defaults
	v.SetDefault("batch.workers", 0) // 0 = auto-detect from CPU count
}
