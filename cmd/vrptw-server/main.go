// Command vrptw-server runs the HTTP façade: POST /api/solve and
// GET /api/instances over a directory of Solomon instance files.
// Listen address, data directory, solver overrides, and log settings come
// from a .env file or VRPTW_* environment variables (package cliconfig).
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/vrptw-solver/cliconfig"
	"github.com/katalvlaran/vrptw-solver/httpapi"
	"github.com/katalvlaran/vrptw-solver/obslog"
)

func main() {
	cfg, err := cliconfig.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := obslog.NewLogger(&obslog.LoggerConfig{
		Level:  obslog.Level(cfg.Log.Level),
		Format: cfg.Log.Format,
	})

	srv := httpapi.NewServer(cfg.Server.DataDir, cfg.Solver.Options(), log)
	if err := srv.Run(cfg.Server.Addr()); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
