package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyData        = "data"
	KeyOutput      = "output"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyDummyCount  = "dummy.count"
	KeyDummyPrefix = "dummy.prefix"

	EnvPrefix = "RECSTORE"
)

// Config is the resolved CLI configuration. Data, when empty, means the
// records are generated with table.PopulateDummy.
type Config struct {
	Data   string `mapstructure:"data"`
	Output string `mapstructure:"output" validate:"oneof=table json"`
	Log    struct {
		Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
		Format string `mapstructure:"format" validate:"oneof=console json"`
	} `mapstructure:"log"`
	Dummy struct {
		Count  uint32 `mapstructure:"count" validate:"lte=10000000"`
		Prefix string `mapstructure:"prefix"`
	} `mapstructure:"dummy"`
}

var validate = validator.New()

// New returns a viper instance with defaults and RECSTORE_* environment
// lookups set up. RECSTORE_LOG_LEVEL maps to log.level.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyData, "")
	v.SetDefault(KeyOutput, "table")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyDummyCount, 1000)
	v.SetDefault(KeyDummyPrefix, "testdata")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds command-line flags to their configuration keys. The map
// goes from key to flag name.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("no flag %q for key %q", name, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Load decodes and validates the configuration held by v. Log levels are
// case-insensitive.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
