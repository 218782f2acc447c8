package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
	Mode string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Catalog struct {
	BaseURL         string
	APIKey          string
	RequestInterval time.Duration
}

type Pool struct {
	Size             int
	StrictValidation bool
	CacheTTL         time.Duration
}

type Breaker struct {
	FailureThreshold uint32
	SuccessThreshold uint32
	ResetTimeout     time.Duration
	MonitoringWindow time.Duration
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Catalog  Catalog
	Pool     Pool
	Breaker  Breaker
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Catalog:  *newCatalog(),
		Pool:     *newPool(),
		Breaker:  *newBreaker(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
		Mode: getenv("APP_MODE", "RW"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "reelswipe"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		BaseURL:         getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		APIKey:          os.Getenv("TMDB_API_KEY"),
		RequestInterval: time.Duration(getenvInt("TMDB_REQUEST_INTERVAL_MS", 250)) * time.Millisecond,
	}
}

func newPool() *Pool {
	return &Pool{
		Size:             getenvInt("POOL_SIZE", 50),
		StrictValidation: getenvBool("STRICT_VALIDATION", false),
		CacheTTL:         time.Duration(getenvInt("FILTER_CACHE_TTL_HOURS", 24)) * time.Hour,
	}
}

func newBreaker() *Breaker {
	return &Breaker{
		FailureThreshold: uint32(getenvInt("BREAKER_FAILURE_THRESHOLD", 5)),
		SuccessThreshold: uint32(getenvInt("BREAKER_SUCCESS_THRESHOLD", 2)),
		ResetTimeout:     time.Duration(getenvInt("BREAKER_RESET_TIMEOUT_SEC", 60)) * time.Second,
		MonitoringWindow: time.Duration(getenvInt("BREAKER_MONITORING_WINDOW_SEC", 300)) * time.Second,
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("%s %s must be an integer, got %q", logtag, key, val)
	}
	fmt.Printf("%s %s = %d\n", logtag, key, n)
	return n
}

func getenvBool(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %t\n", logtag, key, defaultValue)
		return defaultValue
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		log.Fatalf("%s %s must be a boolean, got %q", logtag, key, val)
	}
	fmt.Printf("%s %s = %t\n", logtag, key, b)
	return b
}
