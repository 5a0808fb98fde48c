package cmd

import (
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/interviewprep/internal/forest"
)

const (
	app = "interviewprep"
)

// Config is the decoded viper configuration.
type Config struct {
	Debug   bool        `mapstructure:"debug"`
	JSON    bool        `mapstructure:"json"`
	LogFile string      `mapstructure:"log-file"`
	Model   ModelConfig `mapstructure:"model"`
}

// ModelConfig tunes the readiness classifier.
type ModelConfig struct {
	Trees int    `mapstructure:"trees"`
	Seed  uint64 `mapstructure:"seed"`
}

// Forest returns the classifier config with these overrides applied.
func (m ModelConfig) Forest() forest.Config {
	cfg := forest.DefaultConfig()
	if m.Trees != 0 {
		cfg.Trees = m.Trees
	}
	cfg.Seed = m.Seed
	return cfg
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "Practice common interview questions and get scored feedback",
		Long: "interviewprep scores your answers to common interview questions with a hybrid of " +
			"keyword matching and a small trained classifier, and tracks your progress for the session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interviewprep.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file (the TUI logs nowhere otherwise)")
	rootCmd.Flags().Bool("no-welcome", false, "skip the welcome screen")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))

	defaults := forest.DefaultConfig()
	viper.SetDefault("model.trees", defaults.Trees)
	viper.SetDefault("model.seed", defaults.Seed)

	viper.SetEnvPrefix(app)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	// A .env file in the working directory may carry INTERVIEWPREP_* settings.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional unless one was named explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
