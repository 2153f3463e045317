// labpair manages a student lab-pairing workbook: it normalizes roster
// names, draws randomized lab pairings and reports partnerships repeated
// across rounds.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vishnuv4/students-excel/internal/adapters/excel"
	"github.com/vishnuv4/students-excel/internal/adapters/postgres"
	pghistoryrepo "github.com/vishnuv4/students-excel/internal/adapters/postgres/historyrepo"
	"github.com/vishnuv4/students-excel/internal/app/pairing"
	"github.com/vishnuv4/students-excel/internal/app/roster"
	platformclock "github.com/vishnuv4/students-excel/internal/platform/clock"
	"github.com/vishnuv4/students-excel/internal/platform/config"
	"github.com/vishnuv4/students-excel/internal/platform/logger"
	platformshuffle "github.com/vishnuv4/students-excel/internal/platform/shuffle"
	historyrepoport "github.com/vishnuv4/students-excel/internal/ports/out/historyrepo"
)

var (
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type rootFlags struct {
	workbook  string
	logLevel  string
	logFormat string
}

// app bundles the wired services for one command invocation.
type app struct {
	cfg      config.Config
	log      zerolog.Logger
	roster   *roster.Service
	pairings *pairing.Service
	pool     *pgxpool.Pool
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// buildApp loads configuration (env first, flags on top) and wires the
// services. The history archive is attached only when a database URL is
// configured.
func buildApp(ctx context.Context, flags *rootFlags) (*app, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if flags.workbook != "" {
		cfg.WorkbookPath = flags.workbook
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.LogFormat = flags.logFormat
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "labpair",
	})

	wb := excel.NewRepo(cfg.WorkbookPath)

	a := &app{cfg: cfg}
	var history historyrepoport.Repository
	if cfg.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			return nil, fmt.Errorf("connect history archive: %w", err)
		}
		a.pool = pool
		history = pghistoryrepo.NewRepo(pool)
		log.Debug().Msg("pairing history archive enabled")
	}

	a.roster = roster.NewService(wb)
	a.pairings = pairing.NewService(wb, history, platformshuffle.NewMathShuffler(), platformclock.NewSystemClock())
	a.log = log
	return a, nil
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "labpair",
		Short:         "Manage student lab pairings in an Excel workbook",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.workbook, "workbook", "w", "", "path to the xlsx workbook (default from LABPAIR_WORKBOOK or students.xlsx)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "log format: console|json")

	root.AddCommand(
		newListSheetsCmd(flags),
		newNormalizeNamesCmd(flags),
		newGeneratePairingCmd(flags),
		newCheckDuplicatesCmd(flags),
		newHistoryCmd(flags),
		newServeCmd(flags),
	)
	return root
}
