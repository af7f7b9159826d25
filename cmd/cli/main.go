package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"algoprep/internal/cli/command"
	"algoprep/internal/cli/config"
	httpclient "algoprep/internal/cli/http"
	"algoprep/internal/cli/progress"
	"algoprep/internal/cli/repl"
)

const defaultConfigPath = "configs/cli.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to config file")
	baseURL := flag.String("base", "", "Override base URL")
	timeout := flag.Duration("timeout", 0, "Override HTTP timeout (e.g. 10s)")
	progressPath := flag.String("progress", "", "Override progress file path")
	pretty := flag.Bool("pretty", false, "Pretty print JSON response")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		return
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if *progressPath != "" {
		cfg.ProgressPath = *progressPath
	}
	if *pretty {
		trueValue := true
		cfg.PrettyJSON = &trueValue
	}

	ledger := progress.Load(cfg.ProgressPath)
	client := httpclient.New(cfg.BaseURL, cfg.Timeout)
	commands := command.Registry()

	session, err := repl.New(client, commands, &ledger, cfg.ProgressPath, cfg.PrettyJSON != nil && *cfg.PrettyJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start session failed: %v\n", err)
		return
	}
	session.Run(context.Background())
}
