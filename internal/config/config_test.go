package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/league-ranking/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataSource != DataSourceMemory {
		t.Fatalf("expected memory data source by default, got %q", cfg.DataSource)
	}
	if cfg.ScoringRuleSet != "2026" {
		t.Fatalf("unexpected default ruleset: %q", cfg.ScoringRuleSet)
	}
	if cfg.SnapshotTTL != 10*time.Minute {
		t.Fatalf("unexpected default snapshot ttl: %s", cfg.SnapshotTTL)
	}
	if cfg.EvolutionWorkers != 4 {
		t.Fatalf("unexpected default evolution workers: %d", cfg.EvolutionWorkers)
	}
	if cfg.ValidationStrict {
		t.Fatalf("expected best-effort validation by default")
	}
	if cfg.AccessCode != "" {
		t.Fatalf("expected no access code by default")
	}
}

func TestLoad_DataSourceRequirements(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "unknown source", env: map[string]string{"DATA_SOURCE": "mongo"}, wantErr: true},
		{name: "xlsx without file", env: map[string]string{"DATA_SOURCE": "xlsx", "DATA_FILE": ""}, wantErr: true},
		{name: "xlsx with file", env: map[string]string{"DATA_SOURCE": "XLSX", "DATA_FILE": "liga.xlsx"}},
		{name: "csv without dir", env: map[string]string{"DATA_SOURCE": "csv", "DATA_DIR": ""}, wantErr: true},
		{name: "postgres without url", env: map[string]string{"DATA_SOURCE": "postgres", "DB_URL": ""}, wantErr: true},
		{name: "sqlite with url", env: map[string]string{"DATA_SOURCE": "sqlite", "DB_URL": "file:liga.db"}},
		{name: "remote without url", env: map[string]string{"DATA_SOURCE": "remote", "REMOTE_DATA_URL": ""}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := Load()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_SnapshotRefreshCronValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("valid schedule", func(t *testing.T) {
		t.Setenv("SNAPSHOT_REFRESH_CRON", "*/15 * * * *")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SnapshotRefreshCron != "*/15 * * * *" {
			t.Fatalf("unexpected cron: %q", cfg.SnapshotRefreshCron)
		}
	})

	t.Run("invalid schedule", func(t *testing.T) {
		t.Setenv("SNAPSHOT_REFRESH_CRON", "every minute")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid SNAPSHOT_REFRESH_CRON")
		}
	})
}

func TestLoad_RankingOptions(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("VALIDATION_STRICT", "true")
	t.Setenv("SCORING_RULESET", " legacy ")
	t.Setenv("EVOLUTION_WORKERS", "8")
	t.Setenv("ACCESS_CODE", "clave")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.ValidationStrict || cfg.ScoringRuleSet != "legacy" || cfg.EvolutionWorkers != 8 || cfg.AccessCode != "clave" {
		t.Fatalf("unexpected ranking options: %+v", cfg)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}

	t.Setenv("EVOLUTION_WORKERS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for EVOLUTION_WORKERS=0")
	}
}

func TestLoad_RemoteCircuitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("DATA_SOURCE", "remote")
	t.Setenv("REMOTE_DATA_URL", "https://docs.example.com/export?format=xlsx")
	t.Setenv("REMOTE_TIMEOUT", "5s")
	t.Setenv("REMOTE_CIRCUIT_FAILURE_COUNT", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RemoteTimeout != 5*time.Second || cfg.RemoteCircuitFailureCount != 2 || !cfg.RemoteCircuitEnabled {
		t.Fatalf("unexpected remote config: %+v", cfg)
	}

	t.Setenv("REMOTE_CIRCUIT_FAILURE_COUNT", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for REMOTE_CIRCUIT_FAILURE_COUNT=0")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "league-ranking-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "league-ranking-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}
