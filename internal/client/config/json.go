package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/projectboard/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the current value alone.
type JsonConfig struct {
	ServerBaseURL string `json:"server_base_url"`
	StorePath     string `json:"store_path"`
	DeviceKeyPath string `json:"device_key_path"`
	LogLevel      string `json:"log_level"`
	LogFormat     string `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Without either flag nothing is loaded. Read and unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigFilePath(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.ServerBaseURL, jc.ServerBaseURL)
	overlay(&cfg.StorePath, jc.StorePath)
	overlay(&cfg.DeviceKeyPath, jc.DeviceKeyPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
