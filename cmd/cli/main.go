// Command report-engine generates risk-assessment reports: it assembles a
// record into a patch set, merges it with the report template, converts
// the result to the print artifact and uploads both to the blob store.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/assemble"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/config"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/export"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/jsonutil"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/metrics"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/notify"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/render"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/reportgen"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/session"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/storage"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/ui"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/pkg/workerpool"
	"github.com/riddhiksingh8/coe-ens-orbis-engine/templates"

	"github.com/redis/go-redis/v9"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.ParseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer := ui.NewPrinter(os.Stdout, cfg.NoColor)

	gen, cleanup, err := buildGenerator(ctx, cfg, logger)
	if err != nil {
		printer.Error("setup", err)
		return 1
	}
	defer cleanup()

	var failed int
	if cfg.RecordFile != "" {
		failed = runSingle(ctx, gen, printer, cfg.RecordFile)
	} else {
		failed = runBatch(ctx, gen, printer, cfg.BatchFile, cfg.Concurrency, logger)
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// buildGenerator constructs every pipeline collaborator up front so the
// generator itself stays free of global state.
func buildGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*reportgen.Generator, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	tpl, err := loadTemplate(cfg.TemplatePath)
	if err != nil {
		return nil, cleanup, err
	}

	var conv render.Converter
	switch cfg.Converter {
	case "chrome":
		conv = &render.ChromeConverter{ExecPath: cfg.ChromePath}
	default:
		conv = &render.PDFConverter{}
	}

	store, err := storage.Connect(ctx, cfg.NATSURL, logger)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	closers = append(closers, store.Close)

	collector := metrics.NewCollector()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := collector.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Warn("metrics server stopped", "error", err)
			}
		}()
	}

	var sessions reportgen.SessionStore
	if cfg.RedisAddr != "" {
		ss := session.NewStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), cfg.SessionTTL, logger)
		closers = append(closers, func() {
			if err := ss.Close(); err != nil {
				logger.Warn("close session store", "error", err)
			}
		})
		sessions = ss
	}

	gen := &reportgen.Generator{
		Assembler: &assemble.Assembler{TitleImage: cfg.TitleImage},
		Renderer:  render.NewRenderer(tpl, conv, logger),
		Exporter:  export.NewPipeline(store, cfg.Workdir, logger),
		Notifier:  notify.NewPublisher(store.Conn(), cfg.StatusSubject, logger),
		Sessions:  sessions,
		Metrics:   collector,
		Logger:    logger,
	}
	return gen, cleanup, nil
}

// runSingle generates one report from a record file. Returns the number of
// failed generations (0 or 1).
func runSingle(ctx context.Context, gen *reportgen.Generator, printer *ui.Printer, path string) int {
	record, err := readRecord(path)
	if err != nil {
		printer.Error(path, err)
		return 1
	}
	return generate(ctx, gen, printer, record)
}

// runBatch reads one record per line and generates reports concurrently.
func runBatch(ctx context.Context, gen *reportgen.Generator, printer *ui.Printer, path string, workers int, logger *slog.Logger) int {
	f, err := os.Open(path)
	if err != nil {
		printer.Error(path, err)
		return 1
	}
	defer f.Close()

	var records []*assemble.Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		var record assemble.Record
		if err := jsonutil.Unmarshal(data, &record); err != nil {
			printer.Error(fmt.Sprintf("%s:%d", path, line), err)
			return 1
		}
		records = append(records, &record)
	}
	if err := scanner.Err(); err != nil {
		printer.Error(path, err)
		return 1
	}
	logger.Info("batch loaded", "records", len(records), "workers", workers)

	pool := workerpool.New(workers)
	defer pool.Close()

	var failed atomic.Int64
	var mu sync.Mutex
	pool.ForEach(len(records), func(i int) {
		if ctx.Err() != nil {
			failed.Add(1)
			return
		}
		res, err := gen.Generate(ctx, records[i])
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			printer.Error(records[i].Name, err)
			failed.Add(1)
			return
		}
		report(printer, records[i].Name, res)
	})
	return int(failed.Load())
}

func generate(ctx context.Context, gen *reportgen.Generator, printer *ui.Printer, record *assemble.Record) int {
	res, err := gen.Generate(ctx, record)
	if err != nil {
		printer.Error(record.Name, err)
		return 1
	}
	report(printer, record.Name, res)
	return 0
}

func report(printer *ui.Printer, entity string, res *reportgen.Result) {
	printer.Success(entity, res.PrimaryURL, res.DerivedURL)
	for _, w := range res.Warnings {
		printer.Warn(w.Error())
	}
}

// loadTemplate reads the template asset from disk, falling back to the
// embedded copy when the path does not exist.
func loadTemplate(path string) (*render.Template, error) {
	if _, err := os.Stat(path); err == nil {
		return render.LoadTemplate(path)
	}
	src, err := templates.FS.ReadFile(templates.Report)
	if err != nil {
		return nil, fmt.Errorf("embedded template: %w", err)
	}
	return render.ParseTemplate(src)
}

func readRecord(path string) (*assemble.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var record assemble.Record
	if err := jsonutil.UnmarshalRead(f, &record); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &record, nil
}
