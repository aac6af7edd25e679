package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-ranking/internal/app"
	"github.com/riskibarqy/league-ranking/internal/config"
	"github.com/riskibarqy/league-ranking/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-ranking/internal/platform/logging"
)

func main() {
	outPath := flag.String("out", "", "write the report to this file instead of stdout")
	indent := flag.Bool("indent", true, "indent the JSON output")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the report, so logs go to stderr.
	logger := logging.NewJSONWriter(os.Stderr, cfg.LogLevel).With("service", "league-report")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *outPath, *indent); err != nil {
		logger.Error("report failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, outPath string, indent bool) error {
	services, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}
	defer func() { _ = services.Close() }()

	doc, err := httpapi.BuildReport(ctx, services.Ranking)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	var payload []byte
	if indent {
		payload, err = sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	} else {
		payload, err = sonic.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	payload = append(payload, '\n')

	if outPath == "" {
		_, err = os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	logger.Info("report written", "path", outPath, "snapshot_id", doc.SnapshotID, "bytes", len(payload))
	return nil
}
