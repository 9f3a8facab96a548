// Package cli wires the sr command line: flags, optional config-file merge,
// engine construction, the single job run, and the opt-in debug HTTP
// server.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sr/internal/config"
	"sr/internal/engine"
	"sr/internal/httpapi"
	"sr/internal/processor"
)

// Version is reported by --version.
const Version = "0.2.0"

// Options collects the flag values of one invocation.
type Options struct {
	Input      string
	Output     string
	Scale      float32
	Model      string
	GPUID      int
	CPU        bool
	ListModels bool
	ModelPath  string

	TileSize     int
	OutputFormat string

	ConfigFile  string
	DebugAddr   string
	CORSOrigins string
	LogLevel    string
}

// NewRootCmd builds the root command. newEngine lets tests substitute the
// engine; nil selects the real binding.
func NewRootCmd(newEngine func() (engine.Engine, error)) *cobra.Command {
	if newEngine == nil {
		newEngine = engine.NewVulkan
	}
	opts := &Options{}
	root := &cobra.Command{
		Use:           "sr",
		Short:         "Single-shot image super-resolution via the sr_vulkan engine",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, newEngine)
		},
	}
	fl := root.Flags()
	fl.StringVarP(&opts.Input, "input", "i", "", "Input image path")
	fl.StringVarP(&opts.Output, "output", "o", "", "Output image path")
	fl.Float32VarP(&opts.Scale, "scale", "s", 2.0, "Upscale factor")
	fl.StringVarP(&opts.Model, "model", "m", "", "Model name (see --list-models)")
	fl.IntVar(&opts.GPUID, "gpu-id", 0, "GPU device index")
	fl.BoolVar(&opts.CPU, "cpu", false, "Force CPU processing")
	fl.BoolVar(&opts.ListModels, "list-models", false, "List available models and exit")
	fl.StringVar(&opts.ModelPath, "model-path", "", "Model weights directory (default: $"+processor.ModelPathEnv+" or engine default)")
	fl.IntVar(&opts.TileSize, "tile-size", 400, "Processing tile size")
	fl.StringVar(&opts.OutputFormat, "output-format", "webp", "Engine-side output format")
	fl.StringVar(&opts.ConfigFile, "config", "", "Config file (.yaml|.json|.toml)")
	fl.StringVar(&opts.DebugAddr, "debug-addr", "", "Serve the read-only debug HTTP API on this address")
	fl.StringVar(&opts.CORSOrigins, "cors-origins", "", "Comma-separated origins allowed on the debug API (empty disables CORS)")
	fl.StringVar(&opts.LogLevel, "log-level", "info", "Log level: debug|info|warn|error")
	return root
}

func run(cmd *cobra.Command, opts *Options, newEngine func() (engine.Engine, error)) error {
	if err := mergeConfig(cmd, opts); err != nil {
		return err
	}
	setupLogging(opts.LogLevel)
	logger := newLogger(opts.LogLevel)

	eng, err := newEngine()
	if err != nil {
		return err
	}
	proc := processor.NewWithConfig(processor.Config{
		Engine:       eng,
		ModelPath:    opts.ModelPath,
		GPUID:        opts.GPUID,
		CPUMode:      opts.CPU,
		TileSize:     opts.TileSize,
		OutputFormat: opts.OutputFormat,
		Events:       eventLogger{log: logger},
	})

	if opts.ListModels {
		if err := proc.Init(); err != nil {
			return err
		}
		printListing(cmd.OutOrStdout(), proc.FormatListing())
		return nil
	}

	if opts.Input == "" {
		return errors.New("Please specify input file (-i/--input)")
	}
	if opts.Output == "" {
		return errors.New("Please specify output file (-o/--output)")
	}
	if opts.Model == "" {
		return errors.New("Please specify model name (--model), use --list-models to list all models")
	}

	if opts.DebugAddr != "" {
		if origins := splitCSV(opts.CORSOrigins); len(origins) > 0 {
			httpapi.SetCORSOptions(true, origins, []string{http.MethodGet, http.MethodOptions}, []string{"Content-Type"})
		}
		stop := startDebugServer(opts.DebugAddr, logger, proc)
		defer stop()
	}

	// The spinner animates only on a terminal; the completion line is
	// printed directly so it also lands in pipes and logs.
	sp := newSpinner(cmd.ErrOrStderr())
	sp.Start()
	msg, err := proc.Process(opts.Input, opts.Output, opts.Scale, opts.Model)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("Processing failed: %s", err.Error())
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Done! Time: %s\n", msg)
	return nil
}

// mergeConfig overlays file values onto flags the user did not set.
func mergeConfig(cmd *cobra.Command, opts *Options) error {
	if opts.ConfigFile == "" {
		return nil
	}
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if !fl.Changed("scale") && cfg.Scale != 0 {
		opts.Scale = cfg.Scale
	}
	if !fl.Changed("model") && cfg.Model != "" {
		opts.Model = cfg.Model
	}
	if !fl.Changed("gpu-id") && cfg.GPUID != 0 {
		opts.GPUID = cfg.GPUID
	}
	if !fl.Changed("cpu") && cfg.CPU {
		opts.CPU = true
	}
	if !fl.Changed("model-path") && cfg.ModelPath != "" {
		opts.ModelPath = cfg.ModelPath
	}
	if !fl.Changed("tile-size") && cfg.TileSize != 0 {
		opts.TileSize = cfg.TileSize
	}
	if !fl.Changed("output-format") && cfg.OutputFormat != "" {
		opts.OutputFormat = cfg.OutputFormat
	}
	if !fl.Changed("debug-addr") && cfg.DebugAddr != "" {
		opts.DebugAddr = cfg.DebugAddr
	}
	if !fl.Changed("log-level") && cfg.LogLevel != "" {
		opts.LogLevel = cfg.LogLevel
	}
	return nil
}

// setupLogging keeps the processor's event log quiet unless debugging; the
// spinner owns stderr during a normal run.
func setupLogging(level string) {
	if level == "debug" {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// newLogger builds the structured logger shared by the event publisher and
// the debug HTTP layer.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).With().Timestamp().Logger()
}

// eventLogger forwards processor lifecycle events to the structured log at
// debug level, so a normal run stays quiet.
type eventLogger struct {
	log zerolog.Logger
}

func (l eventLogger) Publish(e processor.Event) {
	ev := l.log.Debug().Str("event", e.Name)
	if e.Model != "" {
		ev = ev.Str("model", e.Model)
	}
	ev.Fields(e.Fields).Msg("processor")
}

// startDebugServer serves the read-only HTTP surface while the job runs.
// The returned func shuts it down.
func startDebugServer(addr string, logger zerolog.Logger, proc *processor.Processor) func() {
	httpapi.SetLogger(logger)
	srv := &http.Server{Addr: addr, Handler: httpapi.NewMux(proc)}
	go func() {
		logger.Info().Str("addr", addr).Msg("debug server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("debug server error")
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func newSpinner(w io.Writer) *spinner.Spinner {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	sp.Suffix = " Processing image..."
	return sp
}

// splitCSV splits a comma-separated flag value, dropping empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printListing(w io.Writer, listing string) {
	fmt.Fprint(w, "Available models:\n\n")
	fmt.Fprintln(w, listing)
	fmt.Fprintln(w, "\nUsage examples:")
	fmt.Fprintln(w, "  sr -i input.jpg -o output.webp --scale 2")
	fmt.Fprintln(w, "  sr -i input.jpg -o output.webp --model waifu2x_cunet_up2x")
}
