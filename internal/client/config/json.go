package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/astroproof/internal/flagx"
	"github.com/dmitrijs2005/astroproof/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. Absent fields leave the
// runtime Config untouched.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DataDir             string         `json:"data_dir"`
	DBFile              string         `json:"db_file"`
	DailyFreeLimit      *int           `json:"daily_free_limit"`
	FreeScopeID         string         `json:"free_scope_id"`
	PriceOneScope       string         `json:"price_one_scope"`
	PriceAllScopes      string         `json:"price_all_scopes"`
	Currency            string         `json:"currency"`
	PassDuration        timex.Duration `json:"pass_duration"`
	EnvelopeVersion     int            `json:"envelope_version"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	CompletionURL       string         `json:"completion_url"`
	CompletionAPIKey    string         `json:"completion_api_key"`
	CompletionModel     string         `json:"completion_model"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag nothing is loaded. Read or unmarshal
// errors panic.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
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

	setString(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.DBFile, jc.DBFile)
	setString(&cfg.FreeScopeID, jc.FreeScopeID)
	setString(&cfg.PriceOneScope, jc.PriceOneScope)
	setString(&cfg.PriceAllScopes, jc.PriceAllScopes)
	setString(&cfg.Currency, jc.Currency)
	setString(&cfg.CompletionURL, jc.CompletionURL)
	setString(&cfg.CompletionAPIKey, jc.CompletionAPIKey)
	setString(&cfg.CompletionModel, jc.CompletionModel)

	if jc.DailyFreeLimit != nil {
		cfg.DailyFreeLimit = *jc.DailyFreeLimit
	}
	if jc.EnvelopeVersion != 0 {
		cfg.EnvelopeVersion = jc.EnvelopeVersion
	}
	if jc.OnlineCheckInterval.Duration != 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.PassDuration.Duration != 0 {
		cfg.PassDuration = jc.PassDuration.Duration
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
