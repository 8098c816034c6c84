package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/taskbook/internal/config"
	"github.com/zjrosen/taskbook/internal/demo"
	"github.com/zjrosen/taskbook/internal/log"
	"github.com/zjrosen/taskbook/internal/presentation"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "taskbook",
	Short:   "An in-memory user and task registry",
	Long:    `Taskbook keeps two in-memory registries (users and tasks), seeds them with sample data, and renders them as a status board or JSON. All data is process-lifetime only; nothing is persisted.`,
	Version: version,
	RunE:    runBoard,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/taskbook/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "",
		"output format: board or json")
	rootCmd.PersistentFlags().Bool("no-seed", false,
		"start with empty registries instead of sample data")
}

func initConfig() {
	// Bound here rather than in init so the binding survives a viper reset.
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	defaults := config.Defaults()
	viper.SetDefault("output", defaults.Output)
	viper.SetDefault("seed", defaults.Seed)
	viper.SetDefault("log.enabled", defaults.Log.Enabled)
	viper.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .taskbook/config.yaml (current directory)
		// 2. ~/.config/taskbook/config.yaml (user config)
		if _, err := os.Stat(".taskbook/config.yaml"); err == nil {
			viper.SetConfigFile(".taskbook/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "taskbook"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .taskbook/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".taskbook/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setup applies the logging config and returns registries, seeded unless
// disabled by config or the --no-seed flag.
func setup(cmd *cobra.Command) (*demo.Demo, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.SetEnabled(cfg.Log.Enabled)
	log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
	log.Debug(log.CatConfig, "configuration loaded", "file", viper.ConfigFileUsed(), "output", cfg.Output)

	d := demo.New(nil)

	seed := cfg.Seed
	if noSeed, _ := cmd.Flags().GetBool("no-seed"); noSeed {
		seed = false
	}
	if seed {
		d.Seed()
	}
	return d, nil
}

func runBoard(cmd *cobra.Command, args []string) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	tasks := d.TaskDTOs(ctx)

	if cfg.Output == config.OutputJSON {
		formatter := presentation.NewFormatter(cmd.OutOrStdout())
		if err := formatter.FormatUsers(d.UserDTOs()); err != nil {
			return fmt.Errorf("formatting users: %w", err)
		}
		if err := formatter.FormatTasks(tasks); err != nil {
			return fmt.Errorf("formatting tasks: %w", err)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, presentation.RenderUsers(d.UserDTOs()))
	fmt.Fprintln(out)
	fmt.Fprint(out, presentation.RenderBoard(tasks, d.Now()))
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
