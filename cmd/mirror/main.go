package main

import (
	"fmt"
	"os"

	"github.com/granitdvor/monument-backend/config"
	"github.com/granitdvor/monument-backend/internal/mirror"
	"github.com/granitdvor/monument-backend/internal/provider"
	"github.com/granitdvor/monument-backend/pkg/logger"
)

// Read-only catalog gateway. Serves the public API from the static JSON
// export when DEPLOYMENT_MODE=static (falling back to the live backend per
// resource), or proxies the live backend when dynamic. It never touches
// the database, so it can run next to a published static site.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	hostname, _ := os.Hostname()
	resolver := provider.NewResolver(
		cfg.Deployment.Mode,
		hostname,
		provider.NewDirSource(cfg.Deployment.StaticDir),
		provider.NewHTTPLiveAPI(cfg.Deployment.LiveAPIURL),
	)

	logger.Info("Starting GranitDvor mirror", map[string]interface{}{
		"mode":       string(resolver.Mode()),
		"static_dir": cfg.Deployment.StaticDir,
		"live_api":   cfg.Deployment.LiveAPIURL,
		"port":       cfg.Server.Port,
	})

	engine := mirror.NewRouter(resolver).Setup()
	if err := engine.Run(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil {
		logger.Fatal("Failed to start mirror", err)
	}
}
