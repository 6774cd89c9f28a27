package main

import (
	"github.com/git-nard/wanderer-albay-guide-remake/config"
	"github.com/git-nard/wanderer-albay-guide-remake/di"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
