package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Predictor PredictorConfig `mapstructure:"predictor"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Actuator  ActuatorConfig  `mapstructure:"actuator"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Audit     AuditConfig     `mapstructure:"audit"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type SchedulerConfig struct {
	Algorithm string  `mapstructure:"algorithm"`
	Quantum   float64 `mapstructure:"quantum"`
	Seed      int64   `mapstructure:"seed"`
}

type PredictorConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Addr string        `mapstructure:"addr"`
	TTL  time.Duration `mapstructure:"ttl"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ActuatorConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	FIFOPriority int  `mapstructure:"fifo_priority"`
	RRPriority   int  `mapstructure:"rr_priority"`
	NiceValue    int  `mapstructure:"nice_value"`
}

type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"`
	AdminUser     string        `mapstructure:"admin_user"`
	AdminPassword string        `mapstructure:"admin_password"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
}

type AuditConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	LogPath string `mapstructure:"log_path"`
}

func Load() (*Config, error) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.refresh_interval", 3*time.Second)

	viper.SetDefault("scheduler.algorithm", "hybrid")
	viper.SetDefault("scheduler.quantum", 100.0)
	viper.SetDefault("scheduler.seed", 0)

	viper.SetDefault("predictor.timeout", 2*time.Second)
	viper.SetDefault("redis.ttl", 30*time.Second)

	viper.SetDefault("actuator.enabled", false)
	viper.SetDefault("actuator.fifo_priority", 50)
	viper.SetDefault("actuator.rr_priority", 30)
	viper.SetDefault("actuator.nice_value", 10)

	viper.SetDefault("auth.jwt_secret", "change-me")
	viper.SetDefault("auth.admin_user", "admin")
	viper.SetDefault("auth.admin_password", "admin")
	viper.SetDefault("auth.token_ttl", 12*time.Hour)

	viper.SetDefault("audit.enabled", false)
	viper.SetDefault("audit.log_path", "./logs/audit.log")

	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
