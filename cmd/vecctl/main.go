package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/enhance/internal/batch"
	"github.com/annel0/enhance/internal/config"
	"github.com/annel0/enhance/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

const usage = "usage: vecctl -job steps.yaml [-config enhance.yaml] [-metrics-file out.prom]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run выполняет vecctl и возвращает код выхода: 0 - все шаги успешны,
// 1 - ошибка или неудачные шаги, 2 - неверные аргументы.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vecctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "Path to YAML config (default: $ENHANCE_CONFIG)")
		jobPath     = fs.String("job", "", "Path to YAML job file")
		metricsFile = fs.String("metrics-file", "", "Write Prometheus textfile metrics here")
		stopOnError = fs.Bool("stop-on-error", false, "Abort at the first failing step")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *jobPath == "" {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Failed to load config: %v\n", err)
		return 1
	}
	if err := cfg.Logging.Apply("vecctl"); err != nil {
		fmt.Fprintf(stderr, "❌ Bad logging config: %v\n", err)
		return 1
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	job, err := batch.LoadJob(*jobPath)
	if err != nil {
		logging.Error("%v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	runner := batch.NewRunner(batch.Options{
		StopOnError: *stopOnError || cfg.Batch.StopOnError,
		Tolerance:   cfg.Math.GetTolerance(),
		Registerer:  registry,
	})

	report, runErr := runner.Run(ctx, job)
	if report != nil {
		for _, res := range report.Results {
			fmt.Fprintln(stdout, res)
		}
	}

	path := *metricsFile
	if path == "" {
		path = cfg.Batch.MetricsFile
	}
	if path != "" {
		if err := batch.WriteTextfile(path, registry); err != nil {
			logging.Error("write metrics %s: %v", path, err)
		} else {
			logging.Debug("metrics written to %s", path)
		}
	}

	if runErr != nil {
		logging.Error("run failed: %v", runErr)
		return 1
	}
	if report.Failed > 0 {
		logging.Warn("%d of %d steps failed", report.Failed, len(report.Results))
		return 1
	}
	return 0
}
