package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/venta-consola/internal/application/sales"
	"github.com/jhoicas/venta-consola/internal/domain/entity"
	infrapdf "github.com/jhoicas/venta-consola/internal/infrastructure/pdf"
	"github.com/jhoicas/venta-consola/internal/interfaces/console"
	"github.com/jhoicas/venta-consola/pkg/config"
	"github.com/jhoicas/venta-consola/pkg/logger"
	"github.com/jhoicas/venta-consola/pkg/money"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run arma las dependencias y ejecuta la consola. Los defer (archivo de log,
// señales) se ejecutan antes de que main decida el código de salida.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	var logOut io.Writer = os.Stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("abrir archivo de log: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Out:   logOut,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("sale_number", cfg.Sale.Number).
		Msg("iniciando aplicación")

	formatter, err := money.NewFormatter(cfg.Sale.Currency, cfg.Sale.Locale)
	if err != nil {
		log.Error().Err(err).Msg("formato de moneda")
		return err
	}

	// Una única venta vive durante toda la ejecución; nada se persiste al salir.
	sale := entity.NewSale(cfg.Sale.Number)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(formatter, cfg.Input.DateLayout)
	saleUC := sales.NewSaleUseCase(sale, pdfGenerator, log)

	cli := console.New(console.Deps{
		Sales:       saleUC,
		In:          os.Stdin,
		Out:         os.Stdout,
		Money:       formatter,
		DateLayout:  cfg.Input.DateLayout,
		MaxAttempts: cfg.Input.MaxAttempts,
		ReportDir:   cfg.Report.Dir,
		Logger:      log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("consola finalizada con error")
		return fmt.Errorf("consola: %w", err)
	}

	summary := saleUC.Summary()
	log.Info().
		Str("session_id", summary.SessionID).
		Int("customers", summary.CustomerCount).
		Int("line_items", summary.LineItemCount).
		Str("total", summary.Total.String()).
		Msg("aplicación detenida")
	return nil
}
