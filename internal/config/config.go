package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Cache        CacheConfig
	ModelService ModelServiceConfig
	Planner      PlannerConfig
	Log          LogConfig
	Worker       WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ItineraryCacheTTL time.Duration
	RiskCacheTTL      time.Duration
}

// ModelServiceConfig - подключение к сервису обученных моделей
type ModelServiceConfig struct {
	BaseURL        string
	RequestTimeout int
}

// PlannerConfig - глобальные значения по умолчанию для построения маршрутов
type PlannerConfig struct {
	DefaultBudgetLKR       float64
	DefaultAvailableDays   int
	DefaultDistancePrefKm  float64
	DefaultMaxHotels       int
	TransportCostPerKmLKR  float64
	DefaultAttractionsCost float64
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ItineraryCacheTTL: time.Duration(viper.GetInt("ITINERARY_CACHE_TTL")) * time.Second,
			RiskCacheTTL:      time.Duration(viper.GetInt("RISK_CACHE_TTL")) * time.Second,
		},
		ModelService: ModelServiceConfig{
			BaseURL:        viper.GetString("MODEL_SERVICE_URL"),
			RequestTimeout: viper.GetInt("MODEL_SERVICE_TIMEOUT"),
		},
		Planner: PlannerConfig{
			DefaultBudgetLKR:       viper.GetFloat64("PLANNER_DEFAULT_BUDGET_LKR"),
			DefaultAvailableDays:   viper.GetInt("PLANNER_DEFAULT_DAYS"),
			DefaultDistancePrefKm:  viper.GetFloat64("PLANNER_DEFAULT_DISTANCE_PREF_KM"),
			DefaultMaxHotels:       viper.GetInt("PLANNER_DEFAULT_MAX_HOTELS"),
			TransportCostPerKmLKR:  viper.GetFloat64("PLANNER_TRANSPORT_COST_PER_KM_LKR"),
			DefaultAttractionsCost: viper.GetFloat64("PLANNER_DEFAULT_ATTRACTION_COST_LKR"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	// Set default values if not provided
	if cfg.ModelService.BaseURL == "" {
		cfg.ModelService.BaseURL = "http://localhost:5005"
	}
	if cfg.ModelService.RequestTimeout == 0 {
		cfg.ModelService.RequestTimeout = 30
	}
	if cfg.Cache.ItineraryCacheTTL == 0 {
		cfg.Cache.ItineraryCacheTTL = 300 * time.Second
	}
	if cfg.Cache.RiskCacheTTL == 0 {
		cfg.Cache.RiskCacheTTL = 60 * time.Second
	}
	if cfg.Planner.DefaultBudgetLKR == 0 {
		cfg.Planner.DefaultBudgetLKR = 150000.0
	}
	if cfg.Planner.DefaultAvailableDays == 0 {
		cfg.Planner.DefaultAvailableDays = 3
	}
	if cfg.Planner.DefaultDistancePrefKm == 0 {
		cfg.Planner.DefaultDistancePrefKm = 80.0
	}
	if cfg.Planner.DefaultMaxHotels == 0 {
		cfg.Planner.DefaultMaxHotels = 5
	}
	if cfg.Planner.TransportCostPerKmLKR == 0 {
		cfg.Planner.TransportCostPerKmLKR = 120.0
	}
	if cfg.Planner.DefaultAttractionsCost == 0 {
		cfg.Planner.DefaultAttractionsCost = 2500.0
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "risk-assessment-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
