package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	JWTSecret string
	JWTTTL    string

	Log      string
	LogLevel string
	Env      string // dev|prod

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryDossier   string
}

// LoadConfig charge .env, lit les variables d'environnement et pose les défauts.
// Ne journalise rien : pour ne pas créer de dépendance vers logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		// Deux révisions de la table de routes divergeaient sur la durée de vie
		// du jeton (quelques heures vs plusieurs semaines) : défaut retenu : 7 jours.
		JWTTTL: def(os.Getenv("JWT_TTL"), "168h"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryDossier:   def(os.Getenv("CLOUDINARY_DOSSIER"), "luxew_medias"),
	}

	return cfg, nil
}

// Validate retourne des avertissements et une erreur fatale (si critique).
func (c *Config) Validate() (warnings []string, err error) {
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("configuration BD incomplète (DB_HOST/DB_USER/DB_NAME)")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET est vide")
	}

	if c.CloudinaryCloudName == "" || c.CloudinaryAPIKey == "" || c.CloudinaryAPISecret == "" {
		warnings = append(warnings, "identifiants Cloudinary absents : l'upload de médias échouera")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT est vide, défaut 8080")
	}

	return warnings, nil
}

// GetDSN : DSN complète (avec mot de passe).
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe : DSN sans mot de passe (pour les logs).
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
