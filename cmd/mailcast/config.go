package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/nn1-dev/mailcast/pkg/audience"
	"github.com/nn1-dev/mailcast/pkg/broadcast"
	"github.com/nn1-dev/mailcast/pkg/logger"
	"github.com/nn1-dev/mailcast/pkg/mailer"
	"github.com/nn1-dev/mailcast/pkg/mailer/resend"
	"github.com/nn1-dev/mailcast/pkg/mailer/ses"
)

// Mail providers.
const (
	providerResend = "resend"
	providerSES    = "ses"
)

type config struct {
	APIKey         string        `env:"API_KEY"`
	Addr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"5m"`

	Logger    logger.Config
	Mailer    mailer.Config
	Resend    resend.Config
	SES       ses.Config
	Audience  audience.Config
	Broadcast broadcast.Config
}

// loadConfig reads an optional .env file and parses the environment.
func loadConfig(files ...string) (config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, err
	}
	return env.ParseAs[config]()
}

// readiness lists the settings the service cannot work without.
func (c config) readiness() map[string]string {
	settings := map[string]string{
		"API_KEY":            c.APIKey,
		"API_KEY_NEWSLETTER": c.Audience.NewsletterAPIKey,
		"API_KEY_TICKETS":    c.Audience.TicketsAPIKey,
	}
	switch c.Mailer.Provider {
	case providerResend:
		settings["API_KEY_RESEND"] = c.Resend.APIKey
	case providerSES:
		settings["AWS_REGION"] = c.SES.Region
	}
	return settings
}
