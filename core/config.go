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

type (
	Config struct {
		AppName  string
		Env      string // DEV (default), TEST, QA, PROD
		Debug    bool
		TestMode bool
		Build    string

		RollbarToken string

		Server     ServerConfig
		Scheduler  SchedulerConfig
		Graduation GraduationConfig
	}

	ServerConfig struct {
		Host            string
		Addr            string
		DebugHost       string
		ShutdownTimeout time.Duration
	}

	// SchedulerConfig points at the authoritative scheduler service.
	SchedulerConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	GraduationConfig struct {
		CreditsRequired float64
		TotalLevels     int
	}
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Maplewood Scheduler")
	conf.SetDefault("build", "dev")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugHost", "localhost:4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("schedulerBaseUrl", "http://localhost:8080/api")
	conf.SetDefault("schedulerTimeout", 10*time.Second)
	conf.SetDefault("graduationCreditsRequired", 24.0)
	conf.SetDefault("graduationTotalLevels", 4)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Addr:            conf.GetString("serverAddr"),
			DebugHost:       conf.GetString("serverDebugHost"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
		Scheduler: SchedulerConfig{
			BaseURL: conf.GetString("schedulerBaseUrl"),
			Timeout: conf.GetDuration("schedulerTimeout"),
		},
		Graduation: GraduationConfig{
			CreditsRequired: conf.GetFloat64("graduationCreditsRequired"),
			TotalLevels:     conf.GetInt("graduationTotalLevels"),
		},
	}
}
