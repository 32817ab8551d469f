package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type config struct {
	logLevel   log.Level
	outputJSON bool
	left       float64
	right      float64
}

// loadConfig reads arith.{yaml,json,toml} from the working directory if one
// exists, ARITH_* environment variables override it.
func loadConfig() (*config, error) {
	viper.SetConfigName("arith")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("arith")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.SetDefault("log.level", "info")
	viper.SetDefault("output.json", false)
	viper.SetDefault("demo.left", 10)
	viper.SetDefault("demo.right", 20)

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return nil, err
	}

	return &config{
		logLevel:   level,
		outputJSON: viper.GetBool("output.json"),
		left:       viper.GetFloat64("demo.left"),
		right:      viper.GetFloat64("demo.right"),
	}, nil
}
