package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	HotelsCSV   string
	ReviewsCSV  string
	BookingsCSV string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration
	MySQLDSN    string
	Workers     int
	WriteRPS    int
	WriteBurst  int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		HotelsCSV:   env("HOTELS_CSV", "hotels.csv"),
		ReviewsCSV:  env("REVIEWS_CSV", "reviews.csv"),
		BookingsCSV: env("BOOKINGS_CSV", "bookings.csv"),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hanoi?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		Workers:     atoi("ARCHIVE_WORKERS", 8),
		WriteRPS:    atoi("WRITE_RATE_RPS", 2),
		WriteBurst:  atoi("WRITE_RATE_BURST", 5),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
