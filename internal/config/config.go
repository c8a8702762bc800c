package config

import (
	"fmt"
	"os"
)

// Config regroupe toute la configuration du serveur, chargée depuis
// l'environnement avec des valeurs par défaut de développement
type Config struct {
	Port string

	// DBDriver choisit l'implémentation du store : "sqlite" (embarqué)
	// ou "postgres" (réseau)
	DBDriver   string
	SQLitePath string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// RedisAddr active le cache du classement total quand renseigné
	RedisAddr string

	AdminUsername string
	AdminPassword string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		SQLitePath:    getEnv("SQLITE_PATH", "./focusplay.db"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "focusplay"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}

	if cfg.DBDriver != "sqlite" && cfg.DBDriver != "postgres" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (expected sqlite or postgres)", cfg.DBDriver)
	}

	return cfg, nil
}

// PostgresDSN construit l'URL de connexion pour le driver pgx
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
