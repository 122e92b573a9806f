package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-screener/internal/logger"
	"github.com/spigell/resume-screener/internal/screening"
	"github.com/spigell/resume-screener/internal/server"
)

const (
	app       = "resume-screener"
	envPrefix = "RESUME_SCREENER"
)

type Config struct {
	Server    server.Config  `mapstructure:"server"`
	Screening map[string]any `mapstructure:"screening"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-screener scores how well a resume matches a job description",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-output", "", "write logs to this file instead of stderr")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-output", rootCmd.PersistentFlags().Lookup("log-output"))

	viper.SetDefault("server.addr", ":5000")
	viper.SetDefault("server.max-upload-mb", 10)
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	err := viper.ReadInConfig()
	if err == nil {
		return
	}

	// The config file is optional unless it was requested explicitly.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return
	}

	log.Fatal(err)
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// setup builds the logger, the configuration and the scorer shared by all commands.
func setup() (*zap.Logger, *Config, *screening.Scorer) {
	logger, err := logger.New(logger.Options{
		JSON:   viper.GetBool("json"),
		Debug:  viper.GetBool("debug"),
		Output: viper.GetString("log-output"),
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	scorer, err := newScorer(config, logger)
	if err != nil {
		logger.Fatal("building the scorer", zap.Error(err))
	}

	return logger, config, scorer
}

func newScorer(config *Config, logger *zap.Logger) (*screening.Scorer, error) {
	rules, err := screening.DecodeConfig(config.Screening)
	if err != nil {
		return nil, fmt.Errorf("screening config: %w", err)
	}

	logger.Debug("screening rules loaded",
		zap.Int("skills", len(rules.Skills)),
		zap.Int("bonus_rules", len(rules.Bonus)),
		zap.Float64("shortlist_threshold", rules.Thresholds.Shortlist),
		zap.Float64("maybe_threshold", rules.Thresholds.Maybe),
	)

	return screening.New(rules, logger)
}
