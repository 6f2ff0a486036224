package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/stats"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.ServiceName != "club-stats-api" {
		t.Fatalf("unexpected server defaults: addr=%q service=%q", cfg.HTTPAddr, cfg.ServiceName)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected timeouts: read=%s write=%s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.DataBackend != BackendMemory {
		t.Fatalf("expected memory backend by default, got %q", cfg.DataBackend)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != time.Minute {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if len(cfg.Years) != 4 || cfg.Years.Latest() != "2025" {
		t.Fatalf("unexpected years: %v", cfg.Years)
	}
	if len(cfg.RankedKeys) != len(stats.DefaultRankedKeys()) {
		t.Fatalf("unexpected ranked keys: %v", cfg.RankedKeys)
	}
	if cfg.AwardShortlistSize != 3 || cfg.AwardSlotCount != 3 || cfg.AwardMaxSlots != 5 {
		t.Fatalf("unexpected award defaults: %+v", cfg)
	}
	if cfg.AwardWeights.Goal != 1 || cfg.AwardWeights.Appearance != 0 {
		t.Fatalf("unexpected award weights: %+v", cfg.AwardWeights)
	}
	if !cfg.FirestoreCircuit.Enabled || cfg.FirestoreCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected circuit defaults: %+v", cfg.FirestoreCircuit)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_FirestoreRequiresProjectID(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATA_BACKEND", BackendFirestore)
	t.Setenv("FIRESTORE_PROJECT_ID", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DATA_BACKEND=firestore without FIRESTORE_PROJECT_ID")
	}

	t.Setenv("FIRESTORE_PROJECT_ID", "club-stats-prod")
	t.Setenv("FIRESTORE_CIRCUIT_FAILURE_COUNT", "3")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FirestoreProjectID != "club-stats-prod" || cfg.FirestoreCircuit.FailureThreshold != 3 {
		t.Fatalf("unexpected firestore config: %+v", cfg)
	}
}

func TestLoad_ProdRequiresAdminPassword(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("ADMIN_PASSWORD", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for prod without ADMIN_PASSWORD")
	}

	t.Setenv("ADMIN_PASSWORD", "s3cret")
	if _, err := Load(); err != nil {
		t.Fatalf("load config: %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"DATA_BACKEND":              "postgres",
		"CACHE_TTL":                 "-1s",
		"STATS_YEARS":               "2025-2022",
		"STATS_RANKED_KEYS":         "goals,saves",
		"AWARD_SLOT_COUNT":          "0",
		"AWARD_MAX_SLOTS":           "2",
		"AWARD_WEIGHT_GOAL":         "-3",
		"FIRESTORE_CIRCUIT_ENABLED": "maybe",
		"APP_LOG_LEVEL":             "loud",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoad_CustomStatsAndWeights(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("STATS_YEARS", "2024,2023")
	t.Setenv("STATS_RANKED_KEYS", "goals,cleanSheets")
	t.Setenv("AWARD_WEIGHT_APPEARANCE", "0.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://club.example, ,https://admin.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.Years) != 2 || cfg.Years[0] != "2023" {
		t.Fatalf("unexpected years: %v", cfg.Years)
	}
	if len(cfg.RankedKeys) != 2 || cfg.RankedKeys[1] != stats.StatCleanSheets {
		t.Fatalf("unexpected ranked keys: %v", cfg.RankedKeys)
	}
	if cfg.AwardWeights.Appearance != 0.5 {
		t.Fatalf("unexpected appearance weight: %v", cfg.AwardWeights.Appearance)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing .env must be ignored: %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("CLUB_STATS_DOTENV_PROBE=loaded\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("CLUB_STATS_DOTENV_PROBE", "")
	os.Unsetenv("CLUB_STATS_DOTENV_PROBE")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load .env: %v", err)
	}
	if got := os.Getenv("CLUB_STATS_DOTENV_PROBE"); got != "loaded" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}

func TestLoad_Observability(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceEnabled || cfg.PyroscopeEnabled || cfg.PprofEnabled {
		t.Fatalf("expected observability exporters off by default: %+v", cfg)
	}
	if cfg.PprofAddr != "127.0.0.1:6060" || cfg.PyroscopeAppName != "club-stats-api" {
		t.Fatalf("unexpected observability defaults: pprof=%q app=%q", cfg.PprofAddr, cfg.PyroscopeAppName)
	}

	t.Setenv("PYROSCOPE_ENABLED", "true")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when pyroscope is enabled without a server address")
	}

	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope:4040")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.PyroscopeEnabled || cfg.PyroscopeUploadRate != 15*time.Second {
		t.Fatalf("unexpected pyroscope config: %+v", cfg)
	}
}
