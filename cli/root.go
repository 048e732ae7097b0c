package cli

import (
	"github.com/RedPaladin7/pokerhands/poker"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pokerhands",
		Short:         "Deal and rank five-card poker hands",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "Config file (yaml, json or toml)")
	pf.String(keyLogLevel, "info", "Log level (debug, info, warn, error)")
	pf.String(keyLogFormat, "text", "Log format (text, json)")
	pf.Int(keyMaxPlayers, poker.MaxPlayers, "Maximum number of players per round")
	pf.Uint64(keySeed, 0, "Shuffle seed, 0 for a random shuffle every round")

	root.AddCommand(newServeCommand(), newDealCommand(), newEvalCommand())
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

// commandConfig resolves flags, environment and config file for cmd and
// applies the logging settings.
func commandConfig(cmd *cobra.Command) (Config, error) {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return Config{}, err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return Config{}, err
	}
	if err := setupLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
