// Command fixsales rewrites every stored sale in its repaired form and
// regenerates both CSV mirrors.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"expo/config"
	"expo/internal/domain/entity"
	"expo/internal/domain/lifecycle"
	"expo/internal/domain/repository"
	"expo/internal/errors"
	logs "expo/internal/infra/log"
	"expo/internal/infra/persistence/blobstore"
	"expo/internal/infra/pubsub"
	"expo/internal/usecase"
	"expo/internal/usecase/impl"
	"expo/internal/util"

	"go.uber.org/fx"
)

type repairSummary struct {
	Elapsed           time.Duration
	Processed         int
	Rewritten         int
	TotalRevenue      float64
	BBPayTransactions int
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Report totals without rewriting any record")
	flag.Parse()

	if err := run(*dryRun, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dryRun bool, out io.Writer) error {
	var (
		saleRepo repository.SaleRepository
		ledger   usecase.LedgerUsecase
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			impl.NewLedgerService,
		),
		blobstore.Module,
		pubsub.Module,
		fx.Populate(&saleRepo, &ledger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()
		_ = app.Stop(stopCtx)
	}()

	summary, err := repairSales(context.Background(), saleRepo, ledger, dryRun)
	if err != nil {
		return err
	}

	printSummary(out, summary, dryRun)

	return nil
}

// repairSales loads every sale through the repairing reader, writes each one
// back and rebuilds the mirrors once at the end.
func repairSales(ctx context.Context, saleRepo repository.SaleRepository, ledger usecase.LedgerUsecase, dryRun bool) (*repairSummary, error) {
	sales, err := saleRepo.ListSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sales")
	}

	started := time.Now()
	summary := &repairSummary{}
	defer func() { summary.Elapsed = time.Since(started) }()
	for _, sale := range sales {
		summary.Processed++
		summary.TotalRevenue += sale.Total
		if sale.PaymentMethod == entity.PaymentMethodBBPay {
			summary.BBPayTransactions++
		}

		if dryRun {
			continue
		}
		if err := saleRepo.PutSale(ctx, sale); err != nil {
			return nil, errors.Wrapf(err, "failed to rewrite sale %s", sale.ID)
		}
		summary.Rewritten++
	}

	if dryRun {
		return summary, nil
	}

	if err := ledger.RebuildMirrors(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to rebuild CSV mirrors")
	}

	return summary, nil
}

func printSummary(out io.Writer, s *repairSummary, dryRun bool) {
	if dryRun {
		fmt.Fprintln(out, "Dry run, nothing was written")
	}
	fmt.Fprintf(out, "Sales processed: %d\n", s.Processed)
	fmt.Fprintf(out, "Sales rewritten: %d\n", s.Rewritten)
	fmt.Fprintf(out, "Total revenue: %.2f\n", s.TotalRevenue)
	fmt.Fprintf(out, "BBPAY transactions: %d\n", s.BBPayTransactions)
	fmt.Fprintf(out, "Elapsed: %s\n", util.FormatDuration(s.Elapsed))
}
