package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spigell/resume-analyzer/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "resume-analyzer"
)

type Config struct {
	Resume   *ResumeConfig   `mapstructure:"resume"`
	Matching *MatchingConfig `mapstructure:"matching"`
	AI       *AIConfig       `mapstructure:"ai"`
	Report   *ReportConfig   `mapstructure:"report"`
}

type ResumeConfig struct {
	Format string `mapstructure:"format"`
}

type MatchingConfig struct {
	TopN             int      `mapstructure:"top-n"`
	MinimumScore     float64  `mapstructure:"minimum-score"`
	ExperienceLevels []string `mapstructure:"experience-levels"`
	CatalogFile      string   `mapstructure:"catalog-file"`
	ExcludeFile      string   `mapstructure:"exclude-file"`
	Exclude          *struct {
		Companies []string `mapstructure:"companies"`
	} `mapstructure:"exclude"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key" json:"-"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ReportConfig struct {
	Output string `mapstructure:"output"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-analyzer parses a resume, matches it against job postings and assesses it",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env is optional, real environment variables win.
	_ = godotenv.Load()

	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	setDefaults()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-analyzer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func newLogger() (*zap.Logger, error) {
	return logger.New(logger.Options{
		JSON:  viper.GetBool("json"),
		Debug: viper.GetBool("debug"),
		File:  viper.GetString("log-file"),
		Name:  app,
	})
}

func setDefaults() {
	viper.SetDefault("matching.top-n", 5)
	viper.SetDefault("matching.minimum-score", 0)
	viper.SetDefault("ai.enabled", false)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.timeout", 60*time.Second)
	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	viper.SetDefault("ai.gemini.max-retries", 3)
	viper.SetDefault("ai.gemini.max-log-length", 200)
}

func initConfig() {
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

	// Defaults are enough when no config file was found.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return
	}

	// We can't proceed if the config file parsed with error.
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
	if config.Resume == nil {
		config.Resume = &ResumeConfig{}
	}
	if config.Matching == nil {
		config.Matching = &MatchingConfig{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.Report == nil {
		config.Report = &ReportConfig{}
	}

	return config, nil
}
