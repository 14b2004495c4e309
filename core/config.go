package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	AppName  string
	Build    string

	// backend API
	APIBaseURL     string
	RequestTimeout time.Duration

	RollbarToken string
}

// NewConfig loads configuration from the environment, with an optional
// config/.env.<env> file taking precedence over built-in defaults.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "AulaConsole")
	conf.SetDefault("apiBaseUrl", "https://aulabackend-production.up.railway.app")
	conf.SetDefault("requestTimeout", 30*time.Second)
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("build", "dev")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case strings.ToUpper("TEST"):
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:          conf.GetBool("debug"),
		TestMode:       conf.GetBool("testMode"),
		Env:            env,
		AppName:        conf.GetString("appName"),
		Build:          conf.GetString("build"),
		APIBaseURL:     strings.TrimRight(conf.GetString("apiBaseUrl"), "/"),
		RequestTimeout: conf.GetDuration("requestTimeout"),
		RollbarToken:   conf.GetString("rollbarToken"),
	}
}
