package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/recruit-console/internal/backend"
	"github.com/spigell/recruit-console/internal/logger"
	"github.com/spigell/recruit-console/internal/secrets"
)

const (
	app       = "recruit-console"
	envPrefix = "RECRUIT"
)

type Config struct {
	Backend *BackendConfig `mapstructure:"backend" validate:"required"`
	Server  *ServerConfig  `mapstructure:"server" validate:"required"`
}

type BackendConfig struct {
	URL       string        `mapstructure:"url" validate:"required,url"`
	Token     string        `mapstructure:"token"`
	TokenFile string        `mapstructure:"token-file"`
	UserAgent string        `mapstructure:"user-agent"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type ServerConfig struct {
	Listen        string `mapstructure:"listen" validate:"required"`
	MaxUploadSize int64  `mapstructure:"max-upload-size" validate:"gt=0"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "recruit-console is a web console and cli for the recruiting assistant backend",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetDefault("backend.url", "http://localhost:5000")
	viper.SetDefault("backend.token", "")
	viper.SetDefault("backend.user-agent", app)
	viper.SetDefault("backend.timeout", time.Duration(0))
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("server.max-upload-size", 10<<20)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv("backend.token-file", "RECRUIT_TOKEN_FILE"); err != nil {
		log.Fatalf("binding RECRUIT_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is recruit-console.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("backend", "", "backend base url (overrides backend.url)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("backend.url", rootCmd.PersistentFlags().Lookup("backend"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional; defaults and env cover a local backend.
	// A file that exists but does not parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config is required")
	}

	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// setup builds the logger, reads the config and returns a backend client.
// Failures are fatal: every command needs all three.
func setup() (*zap.Logger, *Config, *backend.Client) {
	logger, err := logger.New(logger.Options{
		JSON:    viper.GetBool("json"),
		Debug:   viper.GetBool("debug"),
		Version: version,
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	token, err := resolveToken(config)
	if err != nil {
		logger.Fatal(
			"loading backend token",
			zap.Error(err),
			zap.String("hint", "set RECRUIT_TOKEN_FILE environment variable or the 'backend.token-file' key in the configuration file"),
		)
	}

	client := backend.New(logger, config.Backend.URL, token).WithTimeout(config.Backend.Timeout)
	if config.Backend.UserAgent != "" {
		client.UserAgent = config.Backend.UserAgent
	}

	logger.Debug("backend configured",
		zap.String("url", config.Backend.URL),
		zap.Bool("token", token != ""),
		zap.Duration("timeout", config.Backend.Timeout),
	)

	return logger, config, client
}

// resolveToken loads the optional backend token. No token is not an error.
func resolveToken(config *Config) (string, error) {
	token, err := secrets.Load(secrets.Source{
		Name:  "backend token",
		Value: config.Backend.Token,
		File:  config.Backend.TokenFile,
		Env:   envPrefix + "_TOKEN",
	})
	if errors.Is(err, secrets.ErrNotConfigured) {
		return "", nil
	}

	return token, err
}
