// Package config loads runtime configuration for the projectboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. PROJECTBOARD_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API server
//	-s string   path of the local token database (":memory:" keeps nothing)
//	-k string   path of the device key file
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_base_url": "https://board.example.com",
//	  "store_path": "/home/me/.projectboard/token.db",
//	  "device_key_path": "/home/me/.projectboard/device.key",
//	  "log_level": "debug",
//	  "log_format": "json"
//	}
//
// Missing keys keep the value of the previous source.
package config
