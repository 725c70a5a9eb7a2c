package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App         AppConfig
	Store       StoreConfig
	DynamoDB    DynamoDBConfig
	DB          DBConfig
	Redis       RedisConfig
	Appointment AppointmentConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type StoreConfig struct {
	Driver string
}

type DynamoDBConfig struct {
	Table    string
	Region   string
	Endpoint string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
}

// AppointmentConfig holds the optional policies applied by the appointment usecase.
// All of them are off by default.
type AppointmentConfig struct {
	ValidateState   bool
	RequireExisting bool
	IDSuffix        bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("STORE_DRIVER", StoreDriverDynamoDB)

	v.SetDefault("DYNAMODB_TABLE", "AppointmentsTable")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("DYNAMODB_ENDPOINT", "")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "appointments")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "appointment:")

	v.SetDefault("APPOINTMENT_VALIDATE_STATE", false)
	v.SetDefault("APPOINTMENT_REQUIRE_EXISTING", false)
	v.SetDefault("APPOINTMENT_ID_SUFFIX", false)
}

// LoadConfig reads the optional .env file (or CONFIG_FILE) and overlays the
// process environment. A missing file is not an error: Lambda deployments
// only have environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = ".env"
	}
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Driver: v.GetString("STORE_DRIVER"),
		},
		DynamoDB: DynamoDBConfig{
			Table:    v.GetString("DYNAMODB_TABLE"),
			Region:   v.GetString("AWS_REGION"),
			Endpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:      v.GetString("REDIS_HOST"),
			Port:      v.GetString("REDIS_PORT"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			KeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
		},
		Appointment: AppointmentConfig{
			ValidateState:   v.GetBool("APPOINTMENT_VALIDATE_STATE"),
			RequireExisting: v.GetBool("APPOINTMENT_REQUIRE_EXISTING"),
			IDSuffix:        v.GetBool("APPOINTMENT_ID_SUFFIX"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

var (
	ErrUnknownStoreDriver = errors.New("unknown store driver")
	ErrMissingTable       = errors.New("DYNAMODB_TABLE must not be empty")
)

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverDynamoDB:
		if c.DynamoDB.Table == "" {
			return ErrMissingTable
		}
	case StoreDriverRedis, StoreDriverPostgres, StoreDriverMemory:
	default:
		return ErrUnknownStoreDriver
	}
	return nil
}
