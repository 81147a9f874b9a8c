package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

var (
	ServiceName    = "order-splitter-service"
	ServiceVersion = ""
)

var (
	Env *EnvConfig
)

type EnvConfig struct {
	Env                     string            `mapstructure:"env"`
	Log                     LogConfig         `mapstructure:"log"`
	GracefulShutdownTimeout time.Duration     `mapstructure:"graceful_shutdown_timeout"`
	APIKeys                 []APIKeyConfig    `mapstructure:"api_keys"`
	Port                    map[string]string `mapstructure:"port"`
	Order                   OrderConfig       `mapstructure:"order"`
	RateLimit               RateLimitConfig   `mapstructure:"rate_limit"`
}

type LogConfig struct {
	ShowCaller bool   `mapstructure:"show_caller"`
	LogLevel   string `mapstructure:"log_level"`
}

type APIKeyConfig struct {
	Name      string `mapstructure:"name"`
	Key       string `mapstructure:"key"`
	Active    bool   `mapstructure:"active"`
	ExpiredAt any    `mapstructure:"expired_at"`
}

// OrderConfig holds the two tunables of the split calculation: how many
// decimal places a share quantity is rounded to (0-10) and the fallback
// per-share price used when a portfolio line carries no market price.
type OrderConfig struct {
	ShareDecimalPlaces int     `mapstructure:"share_decimal_places"`
	FixedStockPrice    float64 `mapstructure:"fixed_stock_price"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

const (
	DefaultShareDecimalPlaces = 3
	MaxShareDecimalPlaces     = 10
	DefaultFixedStockPrice    = 100
)

func LoadConfig(configPath string) error {
	viper.Reset()

	configPath = strings.TrimSpace(configPath)
	if configPath == "" {
		viper.SetConfigName("config")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	} else {
		ext := strings.ToLower(filepath.Ext(configPath))
		if ext == ".yml" || ext == ".yaml" {
			viper.SetConfigFile(configPath)
		} else {
			viper.SetConfigName(filepath.Base(configPath))
			viper.SetConfigType("yml")
			configDir := filepath.Dir(configPath)
			if configDir == "." || configDir == "" {
				viper.AddConfigPath(".")
			} else {
				viper.AddConfigPath(configDir)
			}
		}
	}

	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.SetDefault("order.share_decimal_places", DefaultShareDecimalPlaces)
	viper.SetDefault("order.fixed_stock_price", DefaultFixedStockPrice)

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	err = viper.Unmarshal(&Env)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	err = Env.Validate()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// Validate rejects configurations the split calculation cannot run with.
// Checked once at load so a bad value fails the process at startup instead
// of producing NaN quantities at request time.
func (c *EnvConfig) Validate() error {
	if c.Order.ShareDecimalPlaces < 0 || c.Order.ShareDecimalPlaces > MaxShareDecimalPlaces {
		return fmt.Errorf("order.share_decimal_places must be between 0 and %d, got %d", MaxShareDecimalPlaces, c.Order.ShareDecimalPlaces)
	}

	if c.Order.FixedStockPrice <= 0 {
		return fmt.Errorf("order.fixed_stock_price must be positive, got %v", c.Order.FixedStockPrice)
	}

	return nil
}

// ResolveOrderConfig returns the order tunables currently in effect. It is
// called once per order rather than cached, so a config reload takes effect
// without a restart.
func ResolveOrderConfig() OrderConfig {
	cfg := OrderConfig{
		ShareDecimalPlaces: DefaultShareDecimalPlaces,
		FixedStockPrice:    DefaultFixedStockPrice,
	}

	if Env == nil {
		return cfg
	}

	cfg.ShareDecimalPlaces = Env.Order.ShareDecimalPlaces
	if Env.Order.FixedStockPrice > 0 {
		cfg.FixedStockPrice = Env.Order.FixedStockPrice
	}

	return cfg
}

// FallbackPrice is FixedStockPrice as a decimal, the form the allocator
// works in.
func (c OrderConfig) FallbackPrice() decimal.Decimal {
	return decimal.NewFromFloat(c.FixedStockPrice)
}
