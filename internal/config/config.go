package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/club-stats/internal/domain/stats"
	"github.com/riskibarqy/club-stats/internal/domain/standings"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	CORSAllowedOrigins []string

	DataBackend        string
	FirestoreProjectID string
	FirestoreTimeout   time.Duration
	FirestoreCircuit   resilience.CircuitBreakerConfig

	CacheEnabled bool
	CacheTTL     time.Duration

	AdminPassword string

	Years      stats.Years
	RankedKeys []stats.StatKey

	AwardShortlistSize int
	AwardSlotCount     int
	AwardMaxSlots      int
	AwardWeights       standings.AwardWeights

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration

	PprofEnabled bool
	PprofAddr    string
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "club-stats-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminPassword:      strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
	}

	if cfg.ReadTimeout, err = getEnvAsDuration("APP_READ_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsDuration("APP_WRITE_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	if err := loadBackend(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.CacheEnabled, err = getEnvAsBool("CACHE_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getEnvAsDuration("CACHE_TTL", 60*time.Second); err != nil {
		return Config{}, err
	}

	if appEnv == EnvProd && cfg.AdminPassword == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD is required when APP_ENV=%s", EnvProd)
	}

	if cfg.Years, err = stats.ParseYears(getEnv("STATS_YEARS", "2022-2025")); err != nil {
		return Config{}, fmt.Errorf("parse STATS_YEARS: %w", err)
	}
	if raw := strings.TrimSpace(os.Getenv("STATS_RANKED_KEYS")); raw != "" {
		if cfg.RankedKeys, err = stats.ParseStatKeys(raw); err != nil {
			return Config{}, fmt.Errorf("parse STATS_RANKED_KEYS: %w", err)
		}
	} else {
		cfg.RankedKeys = stats.DefaultRankedKeys()
	}

	if err := loadAward(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadBackend(cfg *Config) error {
	backend := strings.ToLower(strings.TrimSpace(getEnv("DATA_BACKEND", BackendMemory)))
	switch backend {
	case BackendMemory, BackendFirestore:
	default:
		return fmt.Errorf("invalid DATA_BACKEND %q: valid values are %s, %s", backend, BackendMemory, BackendFirestore)
	}
	cfg.DataBackend = backend

	cfg.FirestoreProjectID = strings.TrimSpace(os.Getenv("FIRESTORE_PROJECT_ID"))
	if backend == BackendFirestore && cfg.FirestoreProjectID == "" {
		return fmt.Errorf("FIRESTORE_PROJECT_ID is required when DATA_BACKEND=%s", BackendFirestore)
	}

	var err error
	if cfg.FirestoreTimeout, err = getEnvAsDuration("FIRESTORE_TIMEOUT", 10*time.Second); err != nil {
		return err
	}

	circuit := resilience.DefaultCircuitBreakerConfig()
	if circuit.Enabled, err = getEnvAsBool("FIRESTORE_CIRCUIT_ENABLED", circuit.Enabled); err != nil {
		return err
	}
	if circuit.FailureThreshold, err = getEnvAsPositiveInt("FIRESTORE_CIRCUIT_FAILURE_COUNT", circuit.FailureThreshold); err != nil {
		return err
	}
	if circuit.OpenTimeout, err = getEnvAsDuration("FIRESTORE_CIRCUIT_OPEN_TIMEOUT", circuit.OpenTimeout); err != nil {
		return err
	}
	if circuit.HalfOpenMaxReq, err = getEnvAsPositiveInt("FIRESTORE_CIRCUIT_HALF_OPEN_MAX_REQ", circuit.HalfOpenMaxReq); err != nil {
		return err
	}
	cfg.FirestoreCircuit = circuit

	return nil
}

func loadAward(cfg *Config) error {
	var err error
	if cfg.AwardShortlistSize, err = getEnvAsPositiveInt("AWARD_SHORTLIST_SIZE", 3); err != nil {
		return err
	}
	if cfg.AwardSlotCount, err = getEnvAsPositiveInt("AWARD_SLOT_COUNT", 3); err != nil {
		return err
	}
	if cfg.AwardMaxSlots, err = getEnvAsPositiveInt("AWARD_MAX_SLOTS", 5); err != nil {
		return err
	}
	if cfg.AwardMaxSlots < cfg.AwardSlotCount {
		return fmt.Errorf("AWARD_MAX_SLOTS must be >= AWARD_SLOT_COUNT")
	}

	weights := standings.DefaultAwardWeights()
	if weights.Goal, err = getEnvAsFloat("AWARD_WEIGHT_GOAL", weights.Goal); err != nil {
		return err
	}
	if weights.Assist, err = getEnvAsFloat("AWARD_WEIGHT_ASSIST", weights.Assist); err != nil {
		return err
	}
	if weights.CleanSheet, err = getEnvAsFloat("AWARD_WEIGHT_CLEAN_SHEET", weights.CleanSheet); err != nil {
		return err
	}
	if weights.Appearance, err = getEnvAsFloat("AWARD_WEIGHT_APPEARANCE", weights.Appearance); err != nil {
		return err
	}
	cfg.AwardWeights = weights

	return nil
}

func loadObservability(cfg *Config) error {
	var err error
	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return err
	}
	cfg.UptraceDSN = strings.TrimSpace(os.Getenv("UPTRACE_DSN"))

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return err
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(os.Getenv("PYROSCOPE_SERVER_ADDRESS"))
	cfg.PyroscopeAppName = getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName)
	cfg.PyroscopeAuthToken = strings.TrimSpace(os.Getenv("PYROSCOPE_AUTH_TOKEN"))
	if cfg.PyroscopeUploadRate, err = getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second); err != nil {
		return err
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return err
	}
	cfg.PprofAddr = getEnv("PPROF_ADDR", "127.0.0.1:6060")

	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsPositiveInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out < 1 {
		return 0, fmt.Errorf("%s must be >= 1", key)
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out < 0 {
		return 0, fmt.Errorf("%s must be >= 0", key)
	}
	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
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

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
