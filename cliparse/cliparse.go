package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// DefaultExemptEmail is the test address allowed to submit repeatedly.
const DefaultExemptEmail = "aavadhan@umich.edu"

type Config struct {
	Port        int
	StorePath   string
	CatalogPath string

	AdminPassword string
	ExemptEmail   string

	// Optional SMTP settings; notification is disabled when SMTPAddr is empty.
	SMTPAddr     string
	SMTPUsername string
	SMTPPassword string
	NotifyFrom   string
	NotifyTo     string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("skills-matrix", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StorePath, "s", "", "Response store CSV path")
	fs.StringVar(&cfg.CatalogPath, "c", "", "Skill catalog YAML path (optional)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin dashboard password (prefer env)")
	fs.StringVar(&cfg.ExemptEmail, "exempt-email", "", "Email exempt from the duplicate check")

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
			cfg.Port = 8090 // default
		}
	}
	if cfg.StorePath == "" {
		cfg.StorePath = os.Getenv("STORE_PATH")
	}
	if cfg.StorePath == "" {
		cfg.StorePath = "responses.csv"
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}

	// Secrets - MUST be provided
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	if cfg.ExemptEmail == "" {
		cfg.ExemptEmail = os.Getenv("EXEMPT_EMAIL")
	}
	if cfg.ExemptEmail == "" {
		cfg.ExemptEmail = DefaultExemptEmail
	}

	// Notification sink (env only, all optional)
	cfg.SMTPAddr = os.Getenv("SMTP_ADDR")
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.NotifyFrom = os.Getenv("NOTIFY_FROM")
	cfg.NotifyTo = os.Getenv("NOTIFY_TO")

	return cfg, nil
}
