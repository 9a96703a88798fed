package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"holipass"`
		Timezone string `envconfig:"TIMEZONE" default:"Asia/Kolkata"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Authorization,Content-Type"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PATCH,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			Enable           bool     `envconfig:"ENABLE" default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"20"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Admin struct {
		Username     string `envconfig:"USERNAME" default:"admin"`
		Password     string `envconfig:"PASSWORD"`
		PasswordHash string `envconfig:"PASSWORD_HASH"`
	} `envconfig:"ADMIN"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN" default:"60"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"1440"`
	} `envconfig:"JWT"`

	DB struct {
		Mongo struct {
			URI            string `envconfig:"URI"`
			Database       string `envconfig:"DATABASE" default:"holi_party"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"5"`
			// How long the availability gate skips the database after a
			// connection failure before attempting it again.
			CooldownSeconds int `envconfig:"COOLDOWN_SECONDS" default:"60"`
		} `envconfig:"MONGO"`
	} `envconfig:"DB"`

	Sheets struct {
		SpreadsheetID  string `envconfig:"SPREADSHEET_ID"`
		CredsPath      string `envconfig:"CREDS_PATH" default:"creds.json"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
	} `envconfig:"SHEETS"`

	Storage struct {
		// Base directory for the JSON fallback files (bookings.json,
		// event_content.json). Ephemeral on free-tier hosting unless a
		// disk is mounted here.
		DataDir string `envconfig:"DATA_DIR" default:"."`
	} `envconfig:"STORAGE"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		ContentTTLSeconds int `envconfig:"CONTENT_TTL_SECONDS" default:"60"`
	} `envconfig:"CACHE"`

	Email struct {
		// One of: resend, sendgrid, mailgun, smtp. SMTP ports are blocked
		// on free-tier hosting, so the HTTPS providers are preferred there.
		Provider       string `envconfig:"PROVIDER" default:"resend"`
		From           string `envconfig:"FROM"`
		ContactInbox   string `envconfig:"CONTACT_INBOX"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
		Resend         struct {
			APIKey string `envconfig:"API_KEY"`
		} `envconfig:"RESEND"`
		SendGrid struct {
			APIKey string `envconfig:"API_KEY"`
		} `envconfig:"SENDGRID"`
		Mailgun struct {
			APIKey string `envconfig:"API_KEY"`
			Domain string `envconfig:"DOMAIN"`
		} `envconfig:"MAILGUN"`
		SMTP struct {
			Host     string `envconfig:"HOST" default:"smtp.gmail.com"`
			Port     int    `envconfig:"PORT" default:"587"`
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SMTP"`
	} `envconfig:"EMAIL"`

	Payment struct {
		Razorpay struct {
			KeyID          string `envconfig:"KEY_ID"`
			KeySecret      string `envconfig:"KEY_SECRET"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
		} `envconfig:"RAZORPAY"`
	} `envconfig:"PAYMENT"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
