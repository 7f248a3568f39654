package config

import (
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/joho/godotenv"
)

var cfg *Config
var once sync.Once

// Config is the configuration for the application
type Config struct {
	Server
	PostgreSQL
	Process
	Seed
	Log
}

// Process configures the periodic ledger report.
type Process struct {
	Interval string `env:"REPORT_INTERVAL" envDefault:"60"`
}

// Server is the configuration for the server
type Server struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080"`
}

// Addr returns the address for the server
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// Seed selects where the initial accounts come from: "default", "file" or "postgres".
type Seed struct {
	Source string `env:"SEED_SOURCE" envDefault:"default"`
	File   string `env:"SEED_FILE" envDefault:"accounts.json"`
}

// Log is the configuration for the logger
type Log struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	File    string `env:"LOG_FILE" envDefault:""`
	Console string `env:"LOG_CONSOLE" envDefault:"true"`
}

// PostgreSQL is the configuration for the database
type PostgreSQL struct {
	Driver          string `env:"DB_DRIVER" envDefault:"postgres"`
	Host            string `env:"DB_HOST" envDefault:"localhost"`
	Port            string `env:"DB_PORT" envDefault:"5432"`
	Database        string `env:"DB_DATABASE" envDefault:"account_ledger"`
	Username        string `env:"DB_USERNAME" envDefault:"account_ledger"`
	Password        string `env:"DB_PASSWORD" envDefault:"account_ledger"`
	SSLMode         string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxConnAttempts string `env:"DB_MAX_CONN_ATTEMPTS" envDefault:"5"`
}

// DSN returns the DSN for the database
func (c PostgreSQL) DSN() string {
	return fmt.Sprintf("%s://%s:%s@%s:%s/%s?sslmode=%s",
		c.Driver,
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
		c.SSLMode,
	)
}

// Load loads the configuration from environment variables. Variables found in
// the given .env files (default ".env") are applied first without overriding
// the real environment; missing files are ignored.
func Load(envFiles ...string) *Config {
	once.Do(func() {
		cfg = Parse(envFiles...)
	})

	return cfg
}

// Parse builds a fresh Config on every call.
func Parse(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}

	c := &Config{}
	cfgType := reflect.TypeOf(*c)
	cfgValue := reflect.ValueOf(c).Elem()

	for i := 0; i < cfgType.NumField(); i++ {
		field := cfgType.Field(i)
		fieldValue := cfgValue.Field(i)
		for j := 0; j < field.Type.NumField(); j++ {
			subField := field.Type.Field(j)
			envVar := subField.Tag.Get("env")
			envDefault := subField.Tag.Get("envDefault")
			value := getEnv(envVar, envDefault)

			fieldValue.Field(j).SetString(value)
		}
	}

	return c
}

// getEnv retrieves the value of the environment variable named by the key or returns the defaultValue if not set
func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = defaultValue
	}
	return value
}
