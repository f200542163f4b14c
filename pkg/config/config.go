package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Source  SourceConfig
	Program ProgramConfig
	CORS    CORSConfig
	Log     LogConfig
	Metrics MetricsConfig
	Export  ExportConfig
}

// SourceConfig points at the two upstream catalogue services.
type SourceConfig struct {
	CourseBaseURL    string
	TimetableBaseURL string
	UserAgent        string
	Timeout          time.Duration
	AcademicYear     int
}

// ProgramConfig drives the program-requirements catalogue crawl.
type ProgramConfig struct {
	ID       string
	Year     int
	CacheDir string
	UseCache bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// ExportConfig gates the timetable export endpoint.
type ExportConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Source = SourceConfig{
		CourseBaseURL:    v.GetString("COURSE_BASE_URL"),
		TimetableBaseURL: v.GetString("TIMETABLE_BASE_URL"),
		UserAgent:        v.GetString("SOURCE_USER_AGENT"),
		Timeout:          parseDuration(v.GetString("SOURCE_TIMEOUT"), 15*time.Second),
		AcademicYear:     v.GetInt("ACADEMIC_YEAR"),
	}
	if cfg.Source.AcademicYear == 0 {
		cfg.Source.AcademicYear = time.Now().Year()
	}

	cfg.Program = ProgramConfig{
		ID:       v.GetString("PROGRAM_ID"),
		Year:     v.GetInt("PROGRAM_YEAR"),
		CacheDir: v.GetString("PROGRAM_CACHE_DIR"),
		UseCache: v.GetBool("PROGRAM_CACHE_ENABLED"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}
	cfg.Export = ExportConfig{Enabled: v.GetBool("ENABLE_EXPORT")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("COURSE_BASE_URL", "https://my.uq.edu.au/programs-courses")
	v.SetDefault("TIMETABLE_BASE_URL", "https://timetable.my.uq.edu.au")
	v.SetDefault("SOURCE_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/102.0.0.0 Safari/537.36")
	v.SetDefault("SOURCE_TIMEOUT", "15s")
	v.SetDefault("PROGRAM_ID", "5522")
	v.SetDefault("PROGRAM_YEAR", 2024)
	v.SetDefault("PROGRAM_CACHE_DIR", "./cache")
	v.SetDefault("PROGRAM_CACHE_ENABLED", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("ENABLE_EXPORT", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
