package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mealmajor/accountd/config"
	"github.com/mealmajor/accountd/internal/app"
)

func main() {
	// A .env file may override where the config lives; absence is fine.
	_ = godotenv.Load()

	configPath := os.Getenv(config.CONFIG_PATH_ENV)
	if configPath == "" {
		configPath = config.CONFIG_PATH
	}

	app, err := app.NewApp(configPath)
	if err != nil {
		panic(err)
	}

	if err = app.Run(); err != nil {
		panic(err)
	}
}
