package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port        int
	DatabaseURL string
	ImageDir    string
	TopN        int
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("costumevote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")

	fs.StringVar(&cfg.ImageDir, "img", "", "Directory for uploaded images")
	fs.IntVar(&cfg.TopN, "top-n", 0, "Number of candidates in the results top list")

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
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.ImageDir == "" {
		cfg.ImageDir = os.Getenv("IMAGE_DIR")
		if cfg.ImageDir == "" {
			cfg.ImageDir = "img"
		}
	}

	if cfg.TopN == 0 {
		if topStr := os.Getenv("RESULTS_TOP_N"); topStr != "" {
			topN, err := strconv.Atoi(topStr)
			if err != nil || topN < 1 {
				return Config{}, errors.New("invalid RESULTS_TOP_N env variable")
			}
			cfg.TopN = topN
		} else {
			cfg.TopN = 5
		}
	}
	if cfg.TopN < 1 {
		return Config{}, errors.New("top-n must be at least 1")
	}

	return cfg, nil
}
