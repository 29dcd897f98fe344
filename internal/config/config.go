package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config contiene la configuración del servidor leída del entorno
type Config struct {
	ServerAddr string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	DBMaxOpenConns int
	DBMaxIdleConns int
	DBMaxIdleTime  string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	AllowOrigins string
}

// LoadConfig carga .env si existe y construye la configuración con
// valores por defecto razonables para desarrollo
func LoadConfig() (*Config, error) {
	// .env es opcional; en producción las variables vienen del entorno
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr: getString("SERVER_ADDR", ":8080"),

		DBHost:     getString("DB_HOST", "localhost"),
		DBPort:     getString("DB_PORT", "5432"),
		DBName:     getString("DB_NAME", "school_admin"),
		DBUser:     getString("DB_USER", "postgres"),
		DBPassword: getString("DB_PASSWORD", ""),
		DBSSLMode:  getString("DB_SSLMODE", "disable"),

		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 25),
		DBMaxIdleTime:  getString("DB_MAX_IDLE_TIME", "15m"),

		SMTPHost:      getString("SMTP_HOST", ""),
		SMTPPort:      getString("SMTP_PORT", "587"),
		SMTPUser:      getString("SMTP_USER", ""),
		SMTPPassword:  getString("SMTP_PASSWORD", ""),
		SMTPFromName:  getString("SMTP_FROM_NAME", "Administración Escolar"),
		SMTPFromEmail: getString("SMTP_FROM_EMAIL", ""),

		AllowOrigins: getString("ALLOW_ORIGINS", "http://localhost:3000"),
	}

	if cfg.DBName == "" || cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_NAME y DB_USER son requeridos")
	}

	return cfg, nil
}

// GetDBConnString construye la cadena de conexión a Postgres
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=%s connect_timeout=5",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword, c.DBSSLMode,
	)
}

func getString(key, fallback string) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return val
}

func getInt(key string, fallback int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	valInt, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return valInt
}
