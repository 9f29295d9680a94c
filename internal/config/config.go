package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const defaultTimezone = "Europe/Moscow"

// Config holds runtime configuration loaded from the environment. BOT_TOKEN
// is required; everything else has a usable default.
type Config struct {
	BotToken string `envconfig:"BOT_TOKEN" required:"true"`
	Timezone string `envconfig:"TIMEZONE" default:"Europe/Moscow"`

	DataFile      string `envconfig:"DATA_FILE" default:"data.json"`
	EmployeesCSV  string `envconfig:"EMPLOYEES_CSV" default:"employees.csv"`
	EmployeesXLSX string `envconfig:"EMPLOYEES_XLSX" default:"employees.xlsx"`

	UseWebhook    bool   `envconfig:"USE_WEBHOOK" default:"false"`
	WebhookListen string `envconfig:"WEBHOOK_LISTEN" default:"0.0.0.0"`
	WebhookPort   int    `envconfig:"WEBHOOK_PORT" default:"8080"`
	WebhookPath   string `envconfig:"WEBHOOK_PATH" default:"/webhook"`
	PublicURL     string `envconfig:"PUBLIC_URL"` // required in webhook mode only

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads environment variables into Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves the configured time zone. ok is false when the name was
// invalid and the Moscow fallback was used; resolution never fails.
func (c *Config) Location() (loc *time.Location, ok bool) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		loc, _ = time.LoadLocation(defaultTimezone)
		return loc, false
	}
	return loc, true
}
