package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string
	Port     string
	Timezone string

	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Office   OfficeConfig
	Mail     MailConfig
	Logbook  LogbookConfig
	Reminder ReminderConfig
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker  string
	GroupID string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// OfficeConfig holds the fallback office used until a location is saved.
type OfficeConfig struct {
	Latitude          float64
	Longitude         float64
	MaxDistanceMeters float64
	Name              string
	CacheTTL          time.Duration
}

type MailConfig struct {
	Driver         string
	SendgridAPIKey string
	FromName       string
	FromAddress    string
}

type LogbookConfig struct {
	DailyLimit int
}

type ReminderConfig struct {
	ClockInAt  string
	ClockOutAt string
	Tolerance  time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("TIMEZONE", "Asia/Jakarta")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "magang")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("KAFKA_GROUP_ID", "go-magang-notification")

	v.SetDefault("JWT_TTL", "24h")

	v.SetDefault("OFFICE_LATITUDE", -6.1751)
	v.SetDefault("OFFICE_LONGITUDE", 106.8650)
	v.SetDefault("OFFICE_MAX_DISTANCE", 500)
	v.SetDefault("OFFICE_NAME", "Kantor Utama")
	v.SetDefault("OFFICE_CACHE_TTL", "5m")

	v.SetDefault("MAIL_DRIVER", "console")
	v.SetDefault("MAIL_FROM_NAME", "Sistem Absensi Magang")
	v.SetDefault("MAIL_FROM_ADDRESS", "noreply@magang.local")

	v.SetDefault("LOGBOOK_DAILY_LIMIT", 4)

	v.SetDefault("REMINDER_CLOCK_IN_AT", "07:15")
	v.SetDefault("REMINDER_CLOCK_OUT_AT", "16:45")
	v.SetDefault("REMINDER_TOLERANCE", "5m")
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppEnv:   v.GetString("APP_ENV"),
		Port:     v.GetString("PORT"),
		Timezone: v.GetString("TIMEZONE"),
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Port:     v.GetString("DB_PORT"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{Addr: v.GetString("REDIS_ADDR")},
		Kafka: KafkaConfig{
			Broker:  v.GetString("KAFKA_BROKER"),
			GroupID: v.GetString("KAFKA_GROUP_ID"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			TTL:    v.GetDuration("JWT_TTL"),
		},
		Office: OfficeConfig{
			Latitude:          v.GetFloat64("OFFICE_LATITUDE"),
			Longitude:         v.GetFloat64("OFFICE_LONGITUDE"),
			MaxDistanceMeters: v.GetFloat64("OFFICE_MAX_DISTANCE"),
			Name:              v.GetString("OFFICE_NAME"),
			CacheTTL:          v.GetDuration("OFFICE_CACHE_TTL"),
		},
		Mail: MailConfig{
			Driver:         strings.ToLower(v.GetString("MAIL_DRIVER")),
			SendgridAPIKey: v.GetString("SENDGRID_API_KEY"),
			FromName:       v.GetString("MAIL_FROM_NAME"),
			FromAddress:    v.GetString("MAIL_FROM_ADDRESS"),
		},
		Logbook: LogbookConfig{DailyLimit: v.GetInt("LOGBOOK_DAILY_LIMIT")},
		Reminder: ReminderConfig{
			ClockInAt:  v.GetString("REMINDER_CLOCK_IN_AT"),
			ClockOutAt: v.GetString("REMINDER_CLOCK_OUT_AT"),
			Tolerance:  v.GetDuration("REMINDER_TOLERANCE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

const minProductionSecretLen = 32

func (c Config) validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.IsProduction() && len(c.JWT.Secret) < minProductionSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes in production", minProductionSecretLen)
	}
	if math.IsNaN(c.Office.Latitude) || c.Office.Latitude < -90 || c.Office.Latitude > 90 {
		return fmt.Errorf("OFFICE_LATITUDE must be within [-90, 90]")
	}
	if math.IsNaN(c.Office.Longitude) || c.Office.Longitude < -180 || c.Office.Longitude > 180 {
		return fmt.Errorf("OFFICE_LONGITUDE must be within [-180, 180]")
	}
	if !(c.Office.MaxDistanceMeters > 0) || math.IsInf(c.Office.MaxDistanceMeters, 1) {
		return fmt.Errorf("OFFICE_MAX_DISTANCE must be positive")
	}
	if c.Mail.Driver == "sendgrid" && c.Mail.SendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is required when MAIL_DRIVER=sendgrid")
	}
	if c.Logbook.DailyLimit <= 0 {
		return fmt.Errorf("LOGBOOK_DAILY_LIMIT must be positive")
	}
	return nil
}

// Location panics on an invalid zone; Load already rejected those.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		panic(err)
	}
	return loc
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
