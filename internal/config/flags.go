package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a vault server base address, e.g. https://vault.example.com
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-download-dir directory decrypted files are written to
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var requestTimeout time.Duration
	var downloadDir string
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Vault server base address")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&downloadDir, "download-dir", "", "Directory decrypted files are written to")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DownloadDir: downloadDir,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
