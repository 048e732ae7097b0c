package cli

import (
	"fmt"
	"strings"

	"github.com/RedPaladin7/pokerhands/poker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "POKERHANDS"

const (
	keyConfig     = "config"
	keyLogLevel   = "log-level"
	keyLogFormat  = "log-format"
	keyAPIAddr    = "api-addr"
	keyMaxPlayers = "max-players"
	keySeed       = "seed"
)

type Config struct {
	LogLevel   string
	LogFormat  string
	APIAddr    string
	MaxPlayers int
	Seed       uint64
}

// newViper binds flags to POKERHANDS_* environment variables, so
// --api-addr can also come from POKERHANDS_API_ADDR.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:   v.GetString(keyLogLevel),
		LogFormat:  v.GetString(keyLogFormat),
		APIAddr:    v.GetString(keyAPIAddr),
		MaxPlayers: v.GetInt(keyMaxPlayers),
		Seed:       v.GetUint64(keySeed),
	}
	if cfg.MaxPlayers < 1 || cfg.MaxPlayers > poker.MaxPlayers {
		return Config{}, fmt.Errorf("max players must be between 1 and %d, got %d", poker.MaxPlayers, cfg.MaxPlayers)
	}
	return cfg, nil
}

func setupLogging(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	logrus.SetLevel(lvl)
	switch format {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}
	return nil
}
