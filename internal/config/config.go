package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration of the service, resolved from
// environment variables (optionally seeded from a .env file) with named
// defaults. Planner tunables live here rather than as inline literals so a
// deployment can adjust them without a rebuild.
type Config struct {
	Port        string
	DBPath      string
	DatabaseURL string
	SeedPath    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ORSAPIKey string

	LogLevel  string
	LogFormat string

	Planner PlannerSettings
}

type PlannerSettings struct {
	RadiusKm          float64
	BudgetFraction    float64
	DefaultPopularity float64
	FallbackMode      string
	FarePerKm         float64
	MinutesPerKm      float64
	MinFare           int
	MinMinutes        int
	FallbackFare      int
	FallbackMinutes   int
}

// Load resolves configuration from the environment. A missing .env file is
// not an error; system environment variables always apply.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded configuration from .env")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_PATH", "data/app.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SEED_PATH", "data/seeds/nairobi.json")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ORS_API_KEY", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEARCH_RADIUS_KM", 20.0)
	v.SetDefault("BUDGET_FRACTION", 0.6)
	v.SetDefault("DEFAULT_POPULARITY", 0.5)
	v.SetDefault("FALLBACK_MODE", "Matatu")
	v.SetDefault("FARE_PER_KM", 8.0)
	v.SetDefault("MINUTES_PER_KM", 3.0)
	v.SetDefault("MIN_FARE", 30)
	v.SetDefault("MIN_MINUTES", 10)
	v.SetDefault("FALLBACK_FARE", 80)
	v.SetDefault("FALLBACK_MINUTES", 45)

	cfg := &Config{
		Port:        v.GetString("PORT"),
		DBPath:      v.GetString("DB_PATH"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		SeedPath:    v.GetString("SEED_PATH"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		ORSAPIKey: v.GetString("ORS_API_KEY"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),

		Planner: PlannerSettings{
			RadiusKm:          v.GetFloat64("SEARCH_RADIUS_KM"),
			BudgetFraction:    v.GetFloat64("BUDGET_FRACTION"),
			DefaultPopularity: v.GetFloat64("DEFAULT_POPULARITY"),
			FallbackMode:      v.GetString("FALLBACK_MODE"),
			FarePerKm:         v.GetFloat64("FARE_PER_KM"),
			MinutesPerKm:      v.GetFloat64("MINUTES_PER_KM"),
			MinFare:           v.GetInt("MIN_FARE"),
			MinMinutes:        v.GetInt("MIN_MINUTES"),
			FallbackFare:      v.GetInt("FALLBACK_FARE"),
			FallbackMinutes:   v.GetInt("FALLBACK_MINUTES"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Planner.RadiusKm <= 0 {
		return fmt.Errorf("SEARCH_RADIUS_KM must be positive, got %v", cfg.Planner.RadiusKm)
	}
	if cfg.Planner.BudgetFraction <= 0 || cfg.Planner.BudgetFraction > 1 {
		return fmt.Errorf("BUDGET_FRACTION must be in (0, 1], got %v", cfg.Planner.BudgetFraction)
	}
	if cfg.Planner.DefaultPopularity < 0 || cfg.Planner.DefaultPopularity > 1 {
		return fmt.Errorf("DEFAULT_POPULARITY must be in [0, 1], got %v", cfg.Planner.DefaultPopularity)
	}
	return nil
}
