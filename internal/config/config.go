package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/cricbuzz-livestats/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	defaultRapidAPIHost = "cricbuzz-cricket.p.rapidapi.com"
	defaultDBName       = "cricbuzz_db"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	RapidAPIKey  string
	RapidAPIHost string
	// CricbuzzBaseURL overrides https://<RapidAPIHost>; tests point it at a
	// local server.
	CricbuzzBaseURL             string
	CricbuzzMatchTimeout        time.Duration
	CricbuzzStatsTimeout        time.Duration
	CricbuzzCircuitEnabled      bool
	CricbuzzCircuitFailureCount int
	CricbuzzCircuitOpenTimeout  time.Duration
	CricbuzzCircuitHalfOpenMax  int
	CacheTTL                    time.Duration

	// DBURL is empty when no database is configured; players then live in
	// memory and analytics queries report the database as unavailable.
	DBURL                  string
	DBMaxOpenConns         int
	DBMaxIdleConns         int
	DBConnMaxLifetime      time.Duration
	AnalyticsVerifyWorkers int
	AnalyticsQueryTimeout  time.Duration

	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("SERVICE_NAME", "cricbuzz-livestats"),
		ServiceVersion:             getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:                   logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		RapidAPIKey:                strings.TrimSpace(os.Getenv("RAPIDAPI_KEY")),
		RapidAPIHost:               strings.TrimSpace(getEnv("RAPIDAPI_HOST", defaultRapidAPIHost)),
		CricbuzzBaseURL:            strings.TrimSpace(getEnv("CRICBUZZ_BASE_URL", "")),
		DBURL:                      resolveDBURL(),
		PprofAddr:                  strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		UptraceDSN:                 strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.RapidAPIKey == "" {
		return Config{}, fmt.Errorf("RAPIDAPI_KEY is required")
	}
	if cfg.RapidAPIHost == "" {
		return Config{}, fmt.Errorf("RAPIDAPI_HOST cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	durations := []struct {
		key      string
		fallback string
		dst      *time.Duration
	}{
		{key: "APP_READ_TIMEOUT", fallback: "10s", dst: &cfg.ReadTimeout},
		{key: "APP_WRITE_TIMEOUT", fallback: "60s", dst: &cfg.WriteTimeout},
		{key: "CRICBUZZ_MATCH_TIMEOUT", fallback: "15s", dst: &cfg.CricbuzzMatchTimeout},
		{key: "CRICBUZZ_STATS_TIMEOUT", fallback: "20s", dst: &cfg.CricbuzzStatsTimeout},
		{key: "CRICBUZZ_CIRCUIT_OPEN_TIMEOUT", fallback: "15s", dst: &cfg.CricbuzzCircuitOpenTimeout},
		{key: "CACHE_TTL", fallback: "60s", dst: &cfg.CacheTTL},
		{key: "DB_CONN_MAX_LIFETIME", fallback: "30m", dst: &cfg.DBConnMaxLifetime},
		{key: "ANALYTICS_QUERY_TIMEOUT", fallback: "30s", dst: &cfg.AnalyticsQueryTimeout},
		{key: "PYROSCOPE_UPLOAD_RATE", fallback: "15s", dst: &cfg.PyroscopeUploadRate},
	}
	for _, d := range durations {
		value, err := time.ParseDuration(getEnv(d.key, d.fallback))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		if value <= 0 {
			return Config{}, fmt.Errorf("%s must be > 0", d.key)
		}
		*d.dst = value
	}

	ints := []struct {
		key      string
		fallback int
		dst      *int
	}{
		{key: "CRICBUZZ_CIRCUIT_FAILURE_COUNT", fallback: 5, dst: &cfg.CricbuzzCircuitFailureCount},
		{key: "CRICBUZZ_CIRCUIT_HALF_OPEN_MAX_REQ", fallback: 2, dst: &cfg.CricbuzzCircuitHalfOpenMax},
		{key: "DB_MAX_OPEN_CONNS", fallback: 10, dst: &cfg.DBMaxOpenConns},
		{key: "DB_MAX_IDLE_CONNS", fallback: 5, dst: &cfg.DBMaxIdleConns},
		{key: "ANALYTICS_VERIFY_WORKERS", fallback: 4, dst: &cfg.AnalyticsVerifyWorkers},
	}
	for _, n := range ints {
		value, err := getEnvAsInt(n.key, n.fallback)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", n.key, err)
		}
		if value <= 0 {
			return Config{}, fmt.Errorf("%s must be > 0", n.key)
		}
		*n.dst = value
	}

	bools := []struct {
		key      string
		fallback string
		dst      *bool
	}{
		{key: "CRICBUZZ_CIRCUIT_ENABLED", fallback: "true", dst: &cfg.CricbuzzCircuitEnabled},
		{key: "PPROF_ENABLED", fallback: "false", dst: &cfg.PprofEnabled},
		{key: "UPTRACE_ENABLED", fallback: "false", dst: &cfg.UptraceEnabled},
		{key: "UPTRACE_LOGS_ENABLED", fallback: "true", dst: &cfg.UptraceLogsEnabled},
		{key: "PYROSCOPE_ENABLED", fallback: "false", dst: &cfg.PyroscopeEnabled},
	}
	for _, b := range bools {
		value, err := strconv.ParseBool(getEnv(b.key, b.fallback))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", b.key, err)
		}
		*b.dst = value
	}

	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if cfg.PyroscopeEnabled {
		if cfg.PyroscopeServerAddress == "" {
			return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
		}
		if cfg.PyroscopeAppName == "" {
			return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
		}
	}

	return cfg, nil
}

// DatabaseURL loads .env and resolves the database URL without requiring the
// rest of the service configuration. Migrations use it.
func DatabaseURL() string {
	_ = godotenv.Load()
	return resolveDBURL()
}

// resolveDBURL prefers DB_URL and otherwise assembles a URL from the DB_*
// parts. Without DB_URL or DB_HOST no database is used.
func resolveDBURL() string {
	if raw := strings.TrimSpace(os.Getenv("DB_URL")); raw != "" {
		return raw
	}

	host := strings.TrimSpace(os.Getenv("DB_HOST"))
	if host == "" {
		return ""
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(getEnv("DB_USER", "postgres"), os.Getenv("DB_PASS")),
		Host:   host + ":" + getEnv("DB_PORT", "5432"),
		Path:   "/" + getEnv("DB_NAME", defaultDBName),
	}
	query := url.Values{}
	query.Set("sslmode", getEnv("DB_SSLMODE", "disable"))
	u.RawQuery = query.Encode()

	return u.String()
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
