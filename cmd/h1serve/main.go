package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"dqx0.com/go/h1serve/httpx"
	"dqx0.com/go/h1serve/internal/config"
	"dqx0.com/go/h1serve/internal/obs"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	directory := flag.String("directory", "", "serving root for /files (prefix, used as given)")
	host := flag.String("host", "", "listen host (default 127.0.0.1)")
	port := flag.Int("port", 0, "listen port (default 4221)")
	level := flag.String("log-level", "", "debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *directory != "" {
		cfg.Files.Directory = *directory
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Files.Directory == "" {
		logger.Logf(obs.Info, "no serving root configured, /files requests will get 404")
	}

	s := &httpx.Server{
		Addr:            cfg.Address(),
		Router:          httpx.NewDefaultRouter(cfg.Files.Directory),
		Middleware:      []httpx.Middleware{httpx.Gzip()},
		Logger:          logger,
		Meter:           obs.LogMeter{L: logger},
		UserAgentParser: httpx.UAPFamily,
	}
	if err := s.ListenAndServe(); err != nil {
		logger.Logf(obs.Error, "server stopped: %v", err)
		os.Exit(1)
	}
}

func newLogger(c config.LogConfig) (obs.Logger, error) {
	lvl, err := obs.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	switch c.Format {
	case "json":
		return obs.NewZeroLogger(os.Stderr, lvl, false), nil
	case "console":
		return obs.NewZeroLogger(os.Stderr, lvl, true), nil
	case "std":
		return obs.StdLogger{L: log.New(os.Stderr, "", log.LstdFlags), Min: lvl, Pref: "h1serve"}, nil
	}
	return nil, fmt.Errorf("unknown log format %q", c.Format)
}
