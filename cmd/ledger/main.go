package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/rschio/ledger/internal/core/bank"
	"github.com/rschio/ledger/internal/logger"
	"github.com/rschio/ledger/internal/opctx"
	"github.com/rschio/ledger/internal/scenario"
	"github.com/rschio/ledger/internal/trace"
	"github.com/shopspring/decimal"
)

var build = "develop"

const birthDateLayout = "02/01/2006"

func main() {
	log := logger.New(os.Stderr, "Ledger")

	if err := run(log); err != nil {
		log.Error("startup", "ERROR", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx := context.Background()

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Env      string `conf:"default:DEV"`
		Customer struct {
			Address   string `conf:"default:Rua das Flores 123"`
			TaxID     string `conf:"default:123.456.789-00,mask"`
			FullName  string `conf:"default:João Silva"`
			BirthDate string `conf:"default:01/01/1990"`
		}
		Account struct {
			Number         int    `conf:"default:1"`
			Branch         string `conf:"default:001"`
			OpeningBalance string `conf:"default:1000.00"`
		}
		Steps string `conf:"help:space separated kind:amount script; empty runs the demo script"`
		Trace struct {
			Mode           string  `conf:"default:discard"`
			Endpoint       string  `conf:"default:localhost:4317"`
			SampleFraction float64 `conf:"default:1.0"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "personal ledger demonstration",
		},
	}

	const prefix = "LEDGER"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Info("starting ledger", "version", build)
	defer log.Info("shutdown complete")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Info("startup", "config", out)

	birthDate, err := time.Parse(birthDateLayout, cfg.Customer.BirthDate)
	if err != nil {
		return fmt.Errorf("parsing birth date: %w", err)
	}

	opening, err := decimal.NewFromString(cfg.Account.OpeningBalance)
	if err != nil {
		return fmt.Errorf("parsing opening balance: %w", err)
	}

	steps, err := scenario.ParseSteps(stepScript(cfg.Steps))
	if err != nil {
		return fmt.Errorf("parsing steps: %w", err)
	}

	// =========================================================================
	// Tracing Support

	log.Info("startup", "status", "initializing tracing support", "mode", cfg.Trace.Mode)

	tp, err := trace.NewProvider(ctx, trace.Config{
		Env:            cfg.Env,
		Endpoint:       cfg.Trace.Endpoint,
		Service:        "ledger",
		SampleFraction: cfg.Trace.SampleFraction,
		Mode:           cfg.Trace.Mode,
	})
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		log.Info("shutdown", "status", "stopping tracing support")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("shutdown", "status", "flushing traces", "ERROR", err)
		}
	}()

	// =========================================================================
	// Run Scenario

	ctx, span := opctx.Start(ctx, tp.Tracer("ledger"), "ledger.run")
	defer span.End()

	sc := scenario.Config{
		Address: cfg.Customer.Address,
		Individual: &bank.IndividualDetails{
			TaxID:     cfg.Customer.TaxID,
			FullName:  cfg.Customer.FullName,
			BirthDate: birthDate,
		},
		AccountNumber:  cfg.Account.Number,
		Branch:         cfg.Account.Branch,
		OpeningBalance: opening,
		Steps:          steps,
	}

	a, err := scenario.Run(ctx, log, os.Stdout, sc)
	if err != nil {
		return fmt.Errorf("running scenario: %w", err)
	}
	log.InfoContext(ctx, "scenario", "status", "done",
		"balance", a.Balance().String(), "entries", a.History().Len())

	return nil
}

func stepScript(configured string) string {
	if strings.TrimSpace(configured) == "" {
		return scenario.DefaultSteps
	}
	return configured
}
