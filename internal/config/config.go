package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	Monitor   MonitorConfig
	Zones     ZonesConfig
	Reporting ReportingConfig
	Metrics   MetricsConfig
	Worker    WorkerConfig
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

type LogConfig struct {
	Level  string
	Format string
}

// MonitorConfig tunes the per-session monitoring loop.
type MonitorConfig struct {
	PollInterval       time.Duration
	HistoryLimit       int
	DebounceWindow     time.Duration
	MaxSessions        int
	SessionIdleTimeout time.Duration
	AccuracyCeilingM   float64
}

type ZonesConfig struct {
	Path     string
	Timezone string
}

type ReportingConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type MetricsConfig struct {
	Enabled bool
	Addr    string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
	BatchSize         int64
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
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Monitor: MonitorConfig{
			PollInterval:       time.Duration(viper.GetInt("MONITOR_POLL_INTERVAL")) * time.Second,
			HistoryLimit:       viper.GetInt("MONITOR_HISTORY_LIMIT"),
			DebounceWindow:     time.Duration(viper.GetInt("MONITOR_DEBOUNCE_WINDOW")) * time.Second,
			MaxSessions:        viper.GetInt("MONITOR_MAX_SESSIONS"),
			SessionIdleTimeout: time.Duration(viper.GetInt("MONITOR_SESSION_IDLE_TIMEOUT")) * time.Second,
			AccuracyCeilingM:   viper.GetFloat64("MONITOR_ACCURACY_CEILING_M"),
		},
		Zones: ZonesConfig{
			Path:     viper.GetString("ZONES_PATH"),
			Timezone: viper.GetString("ZONES_TIMEZONE"),
		},
		Reporting: ReportingConfig{
			Enabled: viper.GetBool("REPORTING_ENABLED"),
			BaseURL: viper.GetString("REPORTING_BASE_URL"),
			APIKey:  viper.GetString("REPORTING_API_KEY"),
			Timeout: time.Duration(viper.GetInt("REPORTING_TIMEOUT")) * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Addr:    viper.GetString("METRICS_ADDR"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
			BatchSize:         viper.GetInt64("WORKER_BATCH_SIZE"),
		},
	}

	// Set default values if not provided
	if cfg.Monitor.PollInterval == 0 {
		cfg.Monitor.PollInterval = 5 * time.Second
	}
	if cfg.Monitor.HistoryLimit == 0 {
		cfg.Monitor.HistoryLimit = 500
	}
	if cfg.Monitor.DebounceWindow == 0 {
		cfg.Monitor.DebounceWindow = 30 * time.Second
	}
	if cfg.Monitor.MaxSessions == 0 {
		cfg.Monitor.MaxSessions = 200
	}
	if cfg.Monitor.SessionIdleTimeout == 0 {
		cfg.Monitor.SessionIdleTimeout = 30 * time.Minute
	}
	if cfg.Monitor.AccuracyCeilingM == 0 {
		cfg.Monitor.AccuracyCeilingM = 100
	}
	if cfg.Zones.Timezone == "" {
		cfg.Zones.Timezone = "Asia/Kolkata"
	}
	if cfg.Reporting.Timeout == 0 {
		cfg.Reporting.Timeout = 10 * time.Second
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9100"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "monitor-position-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 10
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
