package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Vote eligibility policies. The original application was ambiguous about
// whether repeat votes were allowed, so the policy is an explicit setting.
const (
	PolicyOnePerVoter  = "one-per-voter"
	PolicyUnrestricted = "unrestricted"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// VotePolicy is one of PolicyOnePerVoter or PolicyUnrestricted.
	VotePolicy string

	// MaxOptions caps the number of options per poll. 0 means unlimited.
	MaxOptions int

	// BcryptCost overrides the password hashing cost. 0 means the
	// library default. Tests lower this to keep hashing fast.
	BcryptCost int
}

// ParseFlags validates flags with environment-variable fallback
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("yoda-polls", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Poll engine policy
	fs.StringVar(&cfg.VotePolicy, "vote-policy", "", "Vote eligibility policy (one-per-voter or unrestricted)")
	fs.IntVar(&cfg.MaxOptions, "max-options", -1, "Maximum options per poll (0 = unlimited)")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", 0, "Password hashing cost (0 = library default)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "yoda-polls.db"
	}

	if cfg.VotePolicy == "" {
		cfg.VotePolicy = os.Getenv("VOTE_POLICY")
		if cfg.VotePolicy == "" {
			cfg.VotePolicy = PolicyOnePerVoter
		}
	}
	if cfg.VotePolicy != PolicyOnePerVoter && cfg.VotePolicy != PolicyUnrestricted {
		return Config{}, fmt.Errorf("unsupported vote policy %q (use %s or %s)", cfg.VotePolicy, PolicyOnePerVoter, PolicyUnrestricted)
	}

	if cfg.MaxOptions < 0 {
		if maxStr := os.Getenv("MAX_POLL_OPTIONS"); maxStr != "" {
			max, err := strconv.Atoi(maxStr)
			if err != nil || max < 0 {
				return Config{}, errors.New("invalid MAX_POLL_OPTIONS env variable")
			}
			cfg.MaxOptions = max
		} else {
			cfg.MaxOptions = 0 // unlimited
		}
	}

	if cfg.BcryptCost == 0 {
		if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
			cost, err := strconv.Atoi(costStr)
			if err != nil {
				return Config{}, errors.New("invalid BCRYPT_COST env variable")
			}
			cfg.BcryptCost = cost
		}
	}

	return cfg, nil
}
