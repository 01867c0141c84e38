// Command jslint runs the lexer/parser/scope-analyzer pipeline over one or
// more JavaScript files and prints their diagnostics, mirroring
// quick-lint-js's own CLI (original_source/src/quick-lint-js/main.cpp) but
// built from the corpus's ambient CLI stack: github.com/spf13/cobra for flag
// parsing (grounded on AleutianAI-AleutianFOSS/cmd/aleutian/cmd_chat.go) and
// go.uber.org/zap for structured diagnostics about the run itself, as
// opposed to the JavaScript-level diagnostics jslint reports (grounded on
// kiteco-kiteco-public/kite-golib/gkeutil/logger.go).
package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vegerot/quick-lint-js/cliconfig"
	"github.com/vegerot/quick-lint-js/diag"
	"github.com/vegerot/quick-lint-js/parser"
	"github.com/vegerot/quick-lint-js/report"
	"github.com/vegerot/quick-lint-js/scope"
	"github.com/vegerot/quick-lint-js/source"
)

var (
	noColor    bool
	configPath string
	verbose    bool
)

// errDiagnosticsFound signals a clean lint failure (diagnostics reported,
// nothing went wrong mechanically), distinguished from a real RunE error so
// main can choose exit code 1 instead of cobra's usual 2.
var errDiagnosticsFound = fmt.Errorf("diagnostics found")

func main() {
	err := newRootCommand().Execute()
	switch err {
	case nil:
		os.Exit(0)
	case errDiagnosticsFound:
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jslint [files...]",
		Short: "Find bugs in JavaScript programs",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLint,
		// errDiagnosticsFound is a normal outcome, not a usage error;
		// cobra's default "Error: ..." banner would be misleading here.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
	cmd.Flags().StringVar(&configPath, "config-file", "", "path to a .quick-lint-js.yaml file (default: none)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-file timing to stderr")
	return cmd
}

// newLogger builds a single console-encoded core on stderr (for a terminal
// audience rather than JSON) whose threshold is warn, or info under
// --verbose.
func newLogger(verbose bool) *zap.Logger {
	level := zap.WarnLevel
	if verbose {
		level = zap.InfoLevel
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

func runLint(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	globals := scope.DefaultGlobals()
	if configPath != "" {
		cfg, err := cliconfig.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		globals = cfg.ApplyTo(globals)
		logger.Info("loaded config", zap.String("path", configPath), zap.Int("extra_globals", len(cfg.ExtraGlobals)))
	}

	results := lintFiles(cmd, args, globals, logger)

	foundAny := false
	for _, r := range results {
		if len(r.collector.Diagnostics) > 0 {
			foundAny = true
			printer := report.NewPrinter(r.path, r.buf, noColor)
			printer.Print(cmd.OutOrStdout(), r.collector)
		}
	}
	if foundAny {
		return errDiagnosticsFound
	}
	return nil
}

type fileResult struct {
	path      string
	buf       *source.Buffer
	collector *diag.Collector
}

// lintFiles processes args on a worker pool bounded by GOMAXPROCS, the way a
// CLI that might be handed hundreds of files avoids serializing on disk I/O
// and parsing (spec.md §8's "external collaborator: the CLI driver").
func lintFiles(cmd *cobra.Command, paths []string, globals *scope.GlobalVariables, logger *zap.Logger) []fileResult {
	results := make([]fileResult, len(paths))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(paths) {
		workers = len(paths)
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = lintOneFile(paths[i], globals, logger)
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func lintOneFile(path string, globals *scope.GlobalVariables, logger *zap.Logger) fileResult {
	start := time.Now()
	contents, err := os.ReadFile(path)
	var collector diag.Collector
	if err != nil {
		logger.Warn("failed to read file", zap.String("path", path), zap.Error(err))
		return fileResult{path: path, buf: source.NewBufferString(""), collector: &collector}
	}

	buf := source.NewBuffer(contents)
	p := parser.New(buf, &collector)
	a := scope.New(buf, &collector, globals)
	p.ParseModule(a)

	logger.Info("linted file", zap.String("path", path), zap.Int("diagnostics", len(collector.Diagnostics)),
		zap.Duration("duration", time.Since(start)))
	return fileResult{path: path, buf: buf, collector: &collector}
}
