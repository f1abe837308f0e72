package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Auth       Auth
	Prometheus Prometheus
	Redis      Redis
}

type HTTPServer struct {
	Address string
	Port    int
}

type Database struct {
	URI            string
	MigrationsPath string
}

type Auth struct {
	AdminKey   string
	JWTSecret  string
	CookieName string
}

type Prometheus struct {
	Address string
	Port    int
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)

	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("auth.cookie_name", "admin-token")

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9103)

	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	// Secrets and the connection string come from the environment, never
	// from the config file.
	_ = viper.BindEnv("database.uri", "DATABASE_URI")
	_ = viper.BindEnv("auth.admin_key", "ADMIN_API_KEY")
	_ = viper.BindEnv("auth.jwt_secret", "JWT_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Error reading config file: %s", err)
			os.Exit(1)
		}
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address: viper.GetString("http_server.address"),
			Port:    viper.GetInt("http_server.port"),
		},
		Database: Database{
			URI:            viper.GetString("database.uri"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Auth: Auth{
			AdminKey:   viper.GetString("auth.admin_key"),
			JWTSecret:  viper.GetString("auth.jwt_secret"),
			CookieName: viper.GetString("auth.cookie_name"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
	}

	if config.Database.URI == "" {
		log.Print("DATABASE_URI environment variable is required")
		os.Exit(1)
	}
	if config.Auth.JWTSecret == "" {
		log.Print("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if config.Auth.AdminKey == "" {
		log.Print("ADMIN_API_KEY environment variable is required")
		os.Exit(1)
	}

	return config
}
