package main

import (
	"crypto/tls"
	"fmt"
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	server "github.com/mutablelogic/go-server"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	httphandler "github.com/mutablelogic/go-wearbot/pkg/httphandler"
	version "github.com/mutablelogic/go-wearbot/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	RunServer RunServer `cmd:"" name:"run" help:"Run the advice server." group:"SERVER"`
}

type RunServer struct {
	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunServer) Run(ctx *Globals) error {
	advisor, weather, err := ctx.Advisor()
	if err != nil {
		return err
	}
	versionTag := version.Version()

	// Create the TLS config if TLS options are provided
	tlsConfig, err := cmd.tlsConfig()
	if err != nil {
		return err
	}

	// Create the server
	srv, err := httpserver.New(ctx.HTTP.Addr, tlsConfig)
	if err != nil {
		return err
	}

	// Create middleware: request tracing, then request logging
	middleware := []httprouter.HTTPMiddlewareFunc{
		otel.HTTPHandlerFunc(ctx.tracer),
	}
	if mw, ok := any(ctx.logger).(server.HTTPMiddleware); ok {
		middleware = append(middleware, mw.WrapFunc)
	}

	// Create the HTTP router and register handlers
	router, err := httprouter.NewRouter(ctx.ctx, srv.Router(), ctx.HTTP.Prefix, ctx.HTTP.Origin, "Wearbot", versionTag, middleware...)
	if err != nil {
		return err
	} else if err := httphandler.RegisterHandlers(advisor, weather, router); err != nil {
		return err
	} else if err := router.RegisterCatchAll("/", false); err != nil {
		return err
	}

	// Bind to the address before reporting that the server has started
	if err := srv.Listen(); err != nil {
		return err
	}

	// Run the server until the context is cancelled
	ctx.logger.Printf(ctx.ctx, "%s@%s started on %s", ctx.execName, versionTag, srv.Addr())
	if err := srv.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	ctx.logger.Printf(ctx.ctx, "%s@%s stopped", ctx.execName, versionTag)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *RunServer) tlsConfig() (*tls.Config, error) {
	if cmd.TLS.CertFile == "" && cmd.TLS.KeyFile == "" {
		return nil, nil
	}
	var pemData [][]byte
	for _, path := range []string{cmd.TLS.CertFile, cmd.TLS.KeyFile} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		pemData = append(pemData, data)
	}
	config, err := httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS config: %w", err)
	}
	return config, nil
}
