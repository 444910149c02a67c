package config

import "time"

// Config holds runtime settings for the AstroProof CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client checks that the server is reachable.
//   - DataDir, DBFile: location of the local SQLite database.
//   - DailyFreeLimit, FreeScopeID: the free tier policy.
//   - PriceOneScope, PriceAllScopes, Currency: pass prices shown to the user.
//   - PassDuration: lifetime of a pass, shown in upgrade offers.
//   - EnvelopeVersion: key derivation used when sealing (1 PBKDF2, 2 Argon2id).
//   - RequestTimeout: upper bound for every backend and generator call.
//   - Completion*: optional chat-completion endpoint for reading text. Without
//     an URL the deterministic generator is used.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DataDir             string
	DBFile              string
	DailyFreeLimit      int
	FreeScopeID         string
	PriceOneScope       string
	PriceAllScopes      string
	Currency            string
	PassDuration        time.Duration
	EnvelopeVersion     int
	RequestTimeout      time.Duration
	CompletionURL       string
	CompletionAPIKey    string
	CompletionModel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DataDir = "astroproof-data"
	c.DBFile = "astroproof.db"
	c.DailyFreeLimit = 3
	c.FreeScopeID = "astro-chatbot"
	c.PriceOneScope = "0.20"
	c.PriceAllScopes = "0.50"
	c.Currency = "APT"
	c.PassDuration = 24 * time.Hour
	c.EnvelopeVersion = 1
	c.RequestTimeout = 15 * time.Second
	c.CompletionModel = "gpt-4o-mini"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
