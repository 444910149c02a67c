package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/astroproof/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-i int      online check interval (seconds)
//	-d string   data directory
//	-f int      daily free limit
//	-s string   free scope id
//	-v int      envelope version for new readings
//	-t int      request timeout (seconds)
//	-m string   chat completion URL
//	-k string   chat completion API key
//	-o string   chat completion model
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], "-a", "-i", "-d", "-f", "-s", "-v", "-t", "-m", "-k", "-o")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.IntVar(&cfg.DailyFreeLimit, "f", cfg.DailyFreeLimit, "daily free readings")
	fs.StringVar(&cfg.FreeScopeID, "s", cfg.FreeScopeID, "free scope id")
	fs.IntVar(&cfg.EnvelopeVersion, "v", cfg.EnvelopeVersion, "envelope version (1 or 2)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.CompletionURL, "m", cfg.CompletionURL, "chat completion URL")
	fs.StringVar(&cfg.CompletionAPIKey, "k", cfg.CompletionAPIKey, "chat completion API key")
	fs.StringVar(&cfg.CompletionModel, "o", cfg.CompletionModel, "chat completion model")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
