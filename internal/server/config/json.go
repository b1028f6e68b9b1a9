package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vibevault/vibevault/internal/flagx"
	"github.com/vibevault/vibevault/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for the validity field, which
// allows parsing both string values such as "15m" and integer nanoseconds.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. An unreadable or
// invalid file panics: a config file that was asked for must be usable.
func parseJson(config *Config) {

	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jsonConfig := &JsonConfig{}
	if err := json.Unmarshal(data, jsonConfig); err != nil {
		panic(err)
	}

	if jsonConfig.EndpointAddr != "" {
		config.EndpointAddr = jsonConfig.EndpointAddr
	}
	if jsonConfig.DatabaseDSN != "" {
		config.DatabaseDSN = jsonConfig.DatabaseDSN
	}
	if jsonConfig.SecretKey != "" {
		config.SecretKey = jsonConfig.SecretKey
	}
	if jsonConfig.TokenValidityDuration != 0 {
		config.TokenValidityDuration = time.Duration(jsonConfig.TokenValidityDuration)
	}
}
