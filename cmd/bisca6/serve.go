package main

import (
	"github.com/beira/bisca6/cmd/bisca6/shared"
	"github.com/beira/bisca6/internal/server"
)

// ServeCmd runs the websocket match server.
type ServeCmd struct {
	Config string `help:"Path to an HCL configuration file"`
	Addr   string `help:"Override the configured listen address"`
	Port   int    `help:"Override the configured listen port"`
}

func (c *ServeCmd) Run() error {
	cfg := server.DefaultConfig()
	if c.Config != "" {
		loaded, err := server.LoadConfig(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.Addr != "" {
		cfg.Server.Address = c.Addr
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}

	logger, err := shared.SetupLoggerWithLevel(cfg.Server.LogLevel)
	if err != nil {
		return err
	}

	return server.New(cfg, logger, nil).ListenAndServe()
}
