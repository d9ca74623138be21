package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/yolodolo42/subkit/internal/cli"
	"github.com/yolodolo42/subkit/internal/logger"
)

func main() {
	_ = godotenv.Load() // .env is optional
	logger.Init()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
