package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration as YAML",
	Long: `Print the configuration a game would start with, after the config file
search and the difficulty preset are applied.

With --defaults the embedded default file is printed unchanged, comments
included, which makes a good starting point for ~/.match3/configs/match3.yaml.

Examples:
  match3 config
  match3 config --difficulty hard
  match3 config --defaults > ~/.match3/configs/match3.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the embedded defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := effectiveConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// effectiveConfig loads the config the way a game does and applies the preset.
func effectiveConfig(path, preset string) (config.Match3Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, p)
	return cfg, cfg.Validate()
}
