package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"superstore/config"
	"superstore/internal/infra/importer"
	"superstore/internal/infra/persistence/postgres"
	"superstore/internal/usecase"
	"superstore/internal/usecase/impl"
	"superstore/internal/util"
)

// Supported subcommands:
// - migrate:   Create or update the database schema
// - load:      Read the superstore CSV into the staging table
// - normalize: Project staged rows into the live tables
// - reset:     Empty the staging table

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	loadCmd := flag.NewFlagSet("load", flag.ExitOnError)
	normalizeCmd := flag.NewFlagSet("normalize", flag.ExitOnError)
	resetCmd := flag.NewFlagSet("reset", flag.ExitOnError)

	// load parameters
	loadCSV := loadCmd.String("csv", "", "Path to the superstore CSV export (defaults to import.csvPath)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := importerFlags{
		Migrate:   migrateCmd,
		Load:      loadFlags{cmd: loadCmd, csv: loadCSV},
		Normalize: normalizeCmd,
		Reset:     resetCmd,
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type importerFlags struct {
	Migrate   *flag.FlagSet
	Load      loadFlags
	Normalize *flag.FlagSet
	Reset     *flag.FlagSet
}

type loadFlags struct {
	cmd *flag.FlagSet
	csv *string
}

func runSubcommand(ctx context.Context, flags *importerFlags) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}

	switch os.Args[1] {
	case "migrate":
		if err := flags.Migrate.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return handleMigrate(db, logger)
	case "load":
		if err := flags.Load.cmd.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return handleLoad(ctx, db, cfg, logger, *flags.Load.csv)
	case "normalize":
		if err := flags.Normalize.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return handleNormalize(ctx, db, cfg, logger)
	case "reset":
		if err := flags.Reset.Parse(os.Args[2:]); err != nil {
			return errors.WithStack(err)
		}

		return handleReset(ctx, db, cfg, logger)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", os.Args[1])
	}
}

func handleMigrate(db *gorm.DB, logger *slog.Logger) error {
	if err := postgres.Migrate(db); err != nil {
		return errors.Wrap(err, "migration failed")
	}

	logger.Info("schema migrated")

	return nil
}

func handleLoad(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger, csvPath string) error {
	if csvPath == "" && cfg.Import != nil {
		csvPath = cfg.Import.CSVPath
	}
	if csvPath == "" {
		return errors.New("no CSV path given; pass -csv or set import.csvPath")
	}

	info, err := os.Stat(csvPath)
	if err != nil {
		return errors.Wrap(err, "failed to stat CSV")
	}

	checksum, err := util.CalculateFileChecksum(csvPath)
	if err != nil {
		return errors.Wrap(err, "failed to checksum CSV")
	}

	logger.Info("loading CSV",
		slog.String("csv", csvPath),
		slog.String("size", util.FormatBytes(info.Size())),
		slog.String("sha256", checksum),
	)

	start := time.Now()

	rows, err := importer.NewCSVReader(csvPath).ReadAll()
	if err != nil {
		return errors.Wrap(err, "failed to read CSV")
	}

	svc := newImportService(db, cfg, logger)
	if err := svc.Stage(ctx, rows); err != nil {
		return errors.Wrap(err, "failed to stage rows")
	}

	logger.Info("rows staged",
		slog.Int("count", len(rows)),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return nil
}

func handleNormalize(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	svc := newImportService(db, cfg, logger)

	summary, err := svc.Normalize(ctx)
	if err != nil {
		return errors.Wrap(err, "normalization failed")
	}

	logger.Info("normalization finished",
		slog.Int64("stagedRows", summary.StagedRows),
		slog.Int("customers", summary.Customers),
		slog.Int("products", summary.Products),
		slog.Int("orders", summary.Orders),
		slog.Int("sales", summary.Sales),
	)

	return nil
}

func handleReset(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	svc := newImportService(db, cfg, logger)
	if err := svc.Reset(ctx); err != nil {
		return errors.Wrap(err, "failed to reset staging table")
	}

	logger.Info("staging table emptied")

	return nil
}

func newImportService(db *gorm.DB, cfg *config.Config, logger *slog.Logger) usecase.ImportUsecase {
	return impl.NewImportService(
		postgres.NewRawDataRepository(db, cfg),
		postgres.NewCustomerRepository(db),
		postgres.NewProductRepository(db),
		postgres.NewOrderRepository(db),
		postgres.NewSaleRepository(db),
		logger,
	)
}

func printUsage() {
	fmt.Println("Usage: importer <subcommand> [flags]")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  migrate               Create or update the database schema")
	fmt.Println("  load -csv <path>      Stage the superstore CSV export")
	fmt.Println("  normalize             Project staged rows into the live tables")
	fmt.Println("  reset                 Empty the staging table")
}
