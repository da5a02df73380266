package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"network-canary/internal/config"
	"network-canary/internal/monitor"
	"network-canary/internal/notify"
	"network-canary/internal/ping"
	"network-canary/internal/status"
)

func main() {
	configPath := flag.String("config", "", "Path to optional YAML config file")
	webhookFile := flag.String("webhook-file", "", "Override path to the webhook credential file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if *webhookFile != "" {
		cfg.WebhookFile = *webhookFile
	}
	if err := cfg.Validate(); err != nil {
		fatal(fmt.Errorf("invalid configuration: %w", err))
	}

	webhookURL, err := config.LoadWebhookURL(cfg.WebhookFile)
	if err != nil {
		fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	reporter := status.NewConsole()
	reporter.Banner(cfg.Target, cfg.Interval())

	mon := monitor.New(cfg, ping.New(), notify.NewDiscord(webhookURL), reporter, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	mon.Start()
	<-sigChan

	// Clean interrupt: stop the loop, send nothing, exit zero.
	mon.Stop()
	mon.Wait()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
