package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch-cli/internal/api"
	"github.com/jonathan/jobmatch-cli/internal/config"
	"github.com/jonathan/jobmatch-cli/internal/guard"
	"github.com/jonathan/jobmatch-cli/internal/logger"
	"github.com/jonathan/jobmatch-cli/internal/observability"
	"github.com/jonathan/jobmatch-cli/internal/session"
)

// defaultAPIURL is used when neither flag, env, nor config file names one.
const defaultAPIURL = "http://localhost:5000/api"

// app bundles the wired dependencies every command runs against.
type app struct {
	cfg     config.Config
	log     *logrus.Logger
	client  *api.Client
	store   *session.Store
	guard   *guard.Guard
	printer *observability.Printer
}

// resolveConfig layers configuration: CLI flags win, then environment
// variables, then the config file, then defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = apiURL
	}
	if cmd.Flags().Changed("session-file") {
		cfg.SessionFile = sessionFile
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = timeoutSecs
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{APIURL: defaultAPIURL})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newApp wires the config, logger, API client, session store, and guard.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Verbose)

	client := api.New(api.Options{
		BaseURL: cfg.APIURL,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		Logger:  log,
	})

	path := cfg.SessionFile
	if path == "" {
		path, err = session.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	store, err := session.NewStore(client, path, log)
	if err != nil {
		return nil, fmt.Errorf("opening session: %w", err)
	}

	return &app{
		cfg:     cfg,
		log:     log,
		client:  client,
		store:   store,
		guard:   guard.New(store),
		printer: observability.NewPrinter(os.Stdout),
	}, nil
}

// requireAuth wires the app and gates the command behind the session guard.
func requireAuth(cmd *cobra.Command, destination string) (*app, error) {
	a, err := newApp(cmd)
	if err != nil {
		return nil, err
	}
	if err := a.guard.Require(cmd.Context(), destination); err != nil {
		return nil, err
	}
	return a, nil
}
