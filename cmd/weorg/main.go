package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/config"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/duckdb"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/enrich"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/filter"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/lookup"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/metrics"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/pipeline"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/report"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "weorg: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	levels     []string
	ids        []int
	search     string
	limit      int
	csvPath    string
	htmlPath   string
	duckdbPath string
	noLookup   bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "weorg <export.csv>",
		Short: "Filter and analyze Windows Event Log CSV exports",
		Long: `weorg reads the non-standard CSV export of the Windows Event Log,
reconstructs the event records, extracts the structured fields buried in
their messages (English and Portuguese exports) and applies severity, ID
and keyword filters. Results go to the terminal, a CSV file, an HTML
report or a DuckDB database, optionally enriched with an online Event-ID
explanation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (YAML)")
	cmd.Flags().StringSliceVar(&opts.levels, "level", nil, "filter by event level(s)")
	cmd.Flags().IntSliceVar(&opts.ids, "id", nil, "filter by one or more Event IDs")
	cmd.Flags().StringVar(&opts.search, "search", "", "keyword to search for within the event message")
	cmd.Flags().IntVar(&opts.limit, "limit", pipeline.DefaultLimit, "maximum number of events to retrieve")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "export filtered results to a CSV file")
	cmd.Flags().StringVar(&opts.htmlPath, "html", "", "generate an interactive HTML report of the results")
	cmd.Flags().StringVar(&opts.duckdbPath, "duckdb", "", "append filtered results to a DuckDB database")
	cmd.Flags().BoolVar(&opts.noLookup, "no-online-lookup", false, "disable the online lookup for Event IDs")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print pipeline counters to stderr")
	cmd.MarkFlagsMutuallyExclusive("csv", "html")
	return cmd
}

func run(cmd *cobra.Command, opts *options, file string) error {
	cfg := config.Default()
	if opts.configPath != "" {
		c, err := config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = opts.limit
	}
	if len(opts.levels) > 0 {
		cfg.Levels = opts.levels
	}
	if len(opts.ids) > 0 {
		cfg.IDs = opts.ids
	}
	if cmd.Flags().Changed("search") {
		cfg.Search = opts.search
	}
	if opts.noLookup {
		cfg.Lookup.Disabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	body, err := pipeline.ReadExport(file)
	if err != nil {
		return err
	}
	p := pipeline.New(filter.New(cfg.Levels, cfg.IDs, cfg.Search), cfg.Limit, os.Stderr)
	events := p.Run(body)

	// Lookup capability is decided here, once; the enricher never probes it
	// again per event.
	var lookupFn enrich.LookupFunc
	if !cfg.Lookup.Disabled {
		lookupFn = lookup.NewClient(cfg.Lookup.BaseURL, cfg.LookupTimeout()).Explain
	}
	enr := enrich.New(lookupFn, !cfg.Lookup.Disabled, os.Stderr)
	enr.Apply(ctx, events)

	switch {
	case opts.csvPath != "":
		if err := report.WriteCSVFile(opts.csvPath, events); err != nil {
			return err
		}
		fmt.Printf("[*] Exported %d event(s) to %s\n", len(events), opts.csvPath)
	case opts.htmlPath != "":
		if err := report.WriteHTMLFile(opts.htmlPath, events); err != nil {
			return err
		}
		fmt.Printf("[*] Generated interactive HTML report: %s\n", opts.htmlPath)
	default:
		(&report.Printer{W: os.Stdout}).Print(events)
	}

	if opts.duckdbPath != "" {
		if err := exportDuckDB(opts.duckdbPath, events); err != nil {
			return err
		}
		fmt.Printf("[*] Appended %d event(s) to %s\n", len(events), opts.duckdbPath)
	}
	if opts.verbose {
		metrics.WriteTo(os.Stderr)
	}
	return nil
}

func exportDuckDB(path string, events []types.Event) error {
	db, err := duckdb.Open(path)
	if err != nil {
		return fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.InsertEvents(events); err != nil {
		db.Close()
		return fmt.Errorf("store events: %w", err)
	}
	return db.Close()
}
