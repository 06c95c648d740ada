package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/commboard/commboard/internal/flagx"
	"github.com/commboard/commboard/internal/timex"
)

// JsonConfig is the intermediate DTO for reading a JSON configuration file.
// Duration fields use timex.Duration so both "15m"/"7d" strings and integer
// nanoseconds parse; after unmarshalling the values are copied into Config.
type JsonConfig struct {
	EndpointAddr                 string         `json:"endpoint_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
}

// parseJson overlays configuration from the JSON file named by the -c or
// -config flag. When no flag is given nothing is loaded. An unreadable or
// invalid file panics: a requested config file that cannot be used is a
// startup error, not something to run past.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration != 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration)
	}
	if c.RefreshTokenValidityDuration != 0 {
		config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenValidityDuration)
	}
}
