package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "PORTAL"

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Session    SessionConfig    `mapstructure:"session"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Fixtures   FixturesConfig   `mapstructure:"fixtures"`
	Log        LogConfig        `mapstructure:"log"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type SessionConfig struct {
	Backend      string        `mapstructure:"backend" validate:"required"`
	Secret       string        `mapstructure:"secret" validate:"required,min=8"`
	TTL          time.Duration `mapstructure:"ttl" validate:"gte=0"`
	LoginDelay   time.Duration `mapstructure:"login_delay" validate:"gte=0"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db" validate:"gte=0"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type SimulationConfig struct {
	ActionDelay time.Duration `mapstructure:"action_delay" validate:"gte=0"`
}

type FixturesConfig struct {
	// Path replaces the embedded dataset when set.
	Path string `mapstructure:"path"`
	// AccountsPath is an ini file overriding demo credentials per role.
	AccountsPath string `mapstructure:"accounts_path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type RateLimitConfig struct {
	LoginPerSecond float64 `mapstructure:"login_per_second" validate:"gte=0"`
	LoginBurst     int     `mapstructure:"login_burst" validate:"gte=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.secret", "cloud-portal-demo-secret")
	v.SetDefault("session.ttl", 12*time.Hour)
	v.SetDefault("session.login_delay", 1500*time.Millisecond)
	v.SetDefault("session.cookie_secure", false)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "portal:session:")

	v.SetDefault("simulation.action_delay", 800*time.Millisecond)

	v.SetDefault("fixtures.path", "")
	v.SetDefault("fixtures.accounts_path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("ratelimit.login_per_second", 1.0)
	v.SetDefault("ratelimit.login_burst", 5)
}

// Load reads defaults, then the optional config file at path, then PORTAL_*
// environment variables. SERVER_HOST and SERVER_PORT are honoured as well.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"server.host": "SERVER_HOST",
		"server.port": "SERVER_PORT",
	} {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
