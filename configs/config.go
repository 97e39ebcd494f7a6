package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// checkout pricing, cents and whole percent
	DeliveryFeeCents int64
	TaxRatePercent   int64

	OwnerEmail    string
	OwnerPassword string
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		DBSource:         getEnv("DB_SOURCE", "nani.db"),
		Port:             getEnv("PORT", "8000"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           time.Duration(cast.ToInt64(getEnv("JWT_TTL_HOURS", "24"))) * time.Hour,
		DeliveryFeeCents: cast.ToInt64(getEnv("DELIVERY_FEE_CENTS", "299")),
		TaxRatePercent:   cast.ToInt64(getEnv("TAX_RATE_PERCENT", "10")),
		OwnerEmail:       getEnv("OWNER_EMAIL", "owner@nani.local"),
		OwnerPassword:    getEnv("OWNER_PASSWORD", "owner1234"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
