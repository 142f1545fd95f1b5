package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	// VcSeedFile optionally points at a YAML file of initial VC
	// definitions applied at boot.
	VcSeedFile string

	PendingCacheTTL       time.Duration
	ClusterStatusInterval time.Duration
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "cluster")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "cluster-core")

	VcSeedFile = getEnv("VC_SEED_FILE", "")

	PendingCacheTTL = getDuration("PENDING_CACHE_TTL_SECONDS", 30*time.Second)
	ClusterStatusInterval = getDuration("CLUSTER_STATUS_INTERVAL_SECONDS", 60*time.Second)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		log.Printf("invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
