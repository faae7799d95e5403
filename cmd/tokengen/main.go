// Command tokengen mints a session token for the protected API groups.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"superstore/config"
	"superstore/internal/infra/auth"
)

const defaultTTL = 24 * time.Hour

func main() {
	subject := flag.String("subject", "", "Subject claim for the token")
	ttl := flag.Duration("ttl", 0, "Token lifetime (defaults to auth.tokenTtl)")
	flag.Parse()

	if err := run(*subject, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(subject string, ttl time.Duration) error {
	if subject == "" {
		return errors.New("no subject given; pass -subject")
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return errors.New("auth.secret is not configured")
	}

	if ttl == 0 {
		ttl = cfg.Auth.TokenTTL
	}
	if ttl == 0 {
		ttl = defaultTTL
	}

	svc, err := auth.NewJWTService(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to build token service")
	}

	token, err := svc.GenerateToken(subject, ttl)
	if err != nil {
		return errors.Wrap(err, "failed to generate token")
	}

	fmt.Println(token)

	return nil
}
