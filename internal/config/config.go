package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Session struct {
		Secret     string `env:"SECRET,required"`
		Expiration int    `env:"EXPIRATION" envDefault:"86400"` // 1 day
		CookieName string `env:"COOKIE_NAME" envDefault:"__therapprove_session"`
	} `envPrefix:"SESSION_"`
	Redis struct {
		Host             string `env:"HOST" envDefault:"localhost"`
		Port             int    `env:"PORT" envDefault:"6379"`
		Password         string `env:"PASSWORD,required"`
		OperationTimeout int    `env:"OPERATION_TIMEOUT" envDefault:"10"`
		BlobTTL          int    `env:"BLOB_TTL" envDefault:"604800"` // 7 days
	} `envPrefix:"REDIS_"`
	RabbitMQ struct {
		DSN            string `env:"DSN,required"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Email struct {
		From string `env:"FROM,required"`
		SMTP struct {
			Username    string `env:"USERNAME,required"`
			Password    string `env:"PASSWORD,required"`
			Host        string `env:"HOST,required"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	Availability struct {
		AnalysisDelay int `env:"ANALYSIS_DELAY" envDefault:"1500"` // milliseconds
	} `envPrefix:"AVAILABILITY_"`
	Referrals struct {
		DefaultZip    string  `env:"DEFAULT_ZIP" envDefault:"46077"`
		DefaultRadius float64 `env:"DEFAULT_RADIUS" envDefault:"25"`
	} `envPrefix:"REFERRALS_"`
	Seed struct {
		Sessions  int `env:"SESSIONS" envDefault:"3"`
		Referrals int `env:"REFERRALS" envDefault:"25"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// only surface the first error to keep logs readable
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}
