package handler

import (
	"net/http"

	"github.com/git-nard/wanderer-albay-guide-remake/config"
	"github.com/git-nard/wanderer-albay-guide-remake/di"
	"github.com/git-nard/wanderer-albay-guide-remake/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
