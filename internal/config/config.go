package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

const (
	DataSourceXLSX     = "xlsx"
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
	DataSourceSQLite   = "sqlite"
	DataSourceRemote   = "remote"
	DataSourceMemory   = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	CORSAllowedOrigins          []string
	AccessCode                  string
	LogLevel                    logging.Level
	DataSource                  string
	DataFile                    string
	DataDir                     string
	DBURL                       string
	DBDisablePreparedBinary     bool
	RemoteDataURL               string
	RemoteTimeout               time.Duration
	RemoteCircuitEnabled        bool
	RemoteCircuitFailureCount   int
	RemoteCircuitOpenTimeout    time.Duration
	RemoteCircuitHalfOpenMaxReq int
	SnapshotTTL                 time.Duration
	SnapshotRefreshCron         string
	ScoringRuleSet              string
	ValidationStrict            bool
	EvolutionWorkers            int
	PprofEnabled                bool
	PprofAddr                   string
	UptraceEnabled              bool
	UptraceDSN                  string
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; real environment values
// win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dataSource, err := parseDataSource(getEnv("DATA_SOURCE", DataSourceMemory))
	if err != nil {
		return Config{}, err
	}
	dataFile := strings.TrimSpace(getEnv("DATA_FILE", ""))
	dataDir := strings.TrimSpace(getEnv("DATA_DIR", ""))
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	remoteDataURL := strings.TrimSpace(getEnv("REMOTE_DATA_URL", ""))
	switch dataSource {
	case DataSourceXLSX:
		if dataFile == "" {
			return Config{}, fmt.Errorf("DATA_FILE is required when DATA_SOURCE=%s", dataSource)
		}
	case DataSourceCSV:
		if dataDir == "" {
			return Config{}, fmt.Errorf("DATA_DIR is required when DATA_SOURCE=%s", dataSource)
		}
	case DataSourcePostgres, DataSourceSQLite:
		if dbURL == "" {
			return Config{}, fmt.Errorf("DB_URL is required when DATA_SOURCE=%s", dataSource)
		}
	case DataSourceRemote:
		if remoteDataURL == "" {
			return Config{}, fmt.Errorf("REMOTE_DATA_URL is required when DATA_SOURCE=%s", dataSource)
		}
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	remoteTimeout, err := time.ParseDuration(getEnv("REMOTE_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REMOTE_TIMEOUT: %w", err)
	}
	if remoteTimeout <= 0 {
		return Config{}, fmt.Errorf("REMOTE_TIMEOUT must be > 0")
	}
	remoteCircuitEnabled, err := strconv.ParseBool(getEnv("REMOTE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REMOTE_CIRCUIT_ENABLED: %w", err)
	}
	remoteCircuitFailureCount, err := getEnvAsInt("REMOTE_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse REMOTE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if remoteCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("REMOTE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	remoteCircuitOpenTimeout, err := time.ParseDuration(getEnv("REMOTE_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REMOTE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if remoteCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("REMOTE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	remoteCircuitHalfOpenMaxReq, err := getEnvAsInt("REMOTE_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse REMOTE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if remoteCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("REMOTE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	snapshotTTL, err := time.ParseDuration(getEnv("SNAPSHOT_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SNAPSHOT_TTL: %w", err)
	}
	if snapshotTTL < 0 {
		return Config{}, fmt.Errorf("SNAPSHOT_TTL must be >= 0")
	}
	snapshotRefreshCron := strings.TrimSpace(getEnv("SNAPSHOT_REFRESH_CRON", ""))
	if snapshotRefreshCron != "" {
		if _, err := cron.ParseStandard(snapshotRefreshCron); err != nil {
			return Config{}, fmt.Errorf("parse SNAPSHOT_REFRESH_CRON: %w", err)
		}
	}

	validationStrict, err := strconv.ParseBool(getEnv("VALIDATION_STRICT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse VALIDATION_STRICT: %w", err)
	}
	evolutionWorkers, err := getEnvAsInt("EVOLUTION_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse EVOLUTION_WORKERS: %w", err)
	}
	if evolutionWorkers < 1 {
		return Config{}, fmt.Errorf("EVOLUTION_WORKERS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "league-ranking-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AccessCode:                  strings.TrimSpace(getEnv("ACCESS_CODE", "")),
		LogLevel:                    logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		DataSource:                  dataSource,
		DataFile:                    dataFile,
		DataDir:                     dataDir,
		DBURL:                       dbURL,
		DBDisablePreparedBinary:     dbDisablePreparedBinary,
		RemoteDataURL:               remoteDataURL,
		RemoteTimeout:               remoteTimeout,
		RemoteCircuitEnabled:        remoteCircuitEnabled,
		RemoteCircuitFailureCount:   remoteCircuitFailureCount,
		RemoteCircuitOpenTimeout:    remoteCircuitOpenTimeout,
		RemoteCircuitHalfOpenMaxReq: remoteCircuitHalfOpenMaxReq,
		SnapshotTTL:                 snapshotTTL,
		SnapshotRefreshCron:         snapshotRefreshCron,
		ScoringRuleSet:              strings.TrimSpace(getEnv("SCORING_RULESET", "2026")),
		ValidationStrict:            validationStrict,
		EvolutionWorkers:            evolutionWorkers,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
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
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseDataSource(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case DataSourceXLSX, DataSourceCSV, DataSourcePostgres, DataSourceSQLite, DataSourceRemote, DataSourceMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid DATA_SOURCE %q: valid values are xlsx, csv, postgres, sqlite, remote, memory", v)
	}
}
