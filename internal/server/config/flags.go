package config

import (
	"flag"
	"os"

	"github.com/commboard/commboard/internal/flagx"
	"github.com/commboard/commboard/internal/timex"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t string   access token validity ("15m")
//	-r string   refresh token validity ("7d")
//
// os.Args is first filtered to only these flags with flagx.FilterArgs so the
// parse does not collide with the -c/-config flags of the JSON overlay.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.String("t", config.AccessTokenValidityDuration.String(), "access token validity (e.g. 15m)")
	refreshTokenValidity := fs.String("r", config.RefreshTokenValidityDuration.String(), "refresh token validity (e.g. 7d)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if d, err := timex.ParseDuration(*accessTokenValidity); err == nil {
		config.AccessTokenValidityDuration = d
	} else {
		panic(err)
	}
	if d, err := timex.ParseDuration(*refreshTokenValidity); err == nil {
		config.RefreshTokenValidityDuration = d
	} else {
		panic(err)
	}
}
