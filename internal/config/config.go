package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env           string         // Env is the current environment: local, development, production.
	HTTP          HTTPConfig     // HTTP holds the REST listener configuration.
	Postgres      PostgresConfig // Postgres holds the database configuration.
	MigrationsDir string         // MigrationsDir is the directory with goose SQL migrations.
}

// HTTPConfig struct holds the configuration of the REST API listener.
type HTTPConfig struct {
	Address         string        // Address is the listen address in format `host:port`.
	ShutdownTimeout time.Duration // ShutdownTimeout bounds the graceful shutdown.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// MustLoad loads the configuration and panics on failure.
//
// Values are taken, in increasing priority, from the defaults, the optional YAML file
// named by CONFIG_PATH and the environment. A `.env` file in the working directory,
// if present, is loaded into the environment first.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic("failed to load .env file: " + err.Error())
	}

	vpr := viper.New()

	vpr.SetDefault("env", "local")
	vpr.SetDefault("http.address", ":8080")
	vpr.SetDefault("http.shutdown_timeout", "10s")
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("migrations_dir", "migrations")

	bindings := map[string]string{
		"env":                   "HESTIA_ENV",
		"http.address":          "HESTIA_HTTP_ADDRESS",
		"http.shutdown_timeout": "HESTIA_SHUTDOWN_TIMEOUT",
		"migrations_dir":        "HESTIA_MIGRATIONS_DIR",
		"postgres.host":         "DB_HOST",
		"postgres.port":         "DB_PORT",
		"postgres.user":         "DB_USERNAME",
		"postgres.password":     "DB_PASSWORD",
		"postgres.db_name":      "DB_NAME",
	}
	for key, env := range bindings {
		if err := vpr.BindEnv(key, env); err != nil {
			panic("failed to bind env " + env + ": " + err.Error())
		}
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	shutdownTimeout, err := time.ParseDuration(vpr.GetString("http.shutdown_timeout"))
	if err != nil {
		panic("failed to parse shutdown timeout from configuration")
	}

	return &Config{
		Env: vpr.GetString("env"),
		HTTP: HTTPConfig{
			Address:         vpr.GetString("http.address"),
			ShutdownTimeout: shutdownTimeout,
		},
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		MigrationsDir: vpr.GetString("migrations_dir"),
	}
}
