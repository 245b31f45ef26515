// SPDX-License-Identifier: MIT

// ansatz builds a preset circuit template and prints its block layout.
//
// The build is described either by flags or by a YAML, JSON(C) or HCL
// document (--config, or the ANSATZ_CONFIG environment variable). Flags
// given alongside a document override the matching document fields.
//
//	ansatz --preset real_amplitudes --wires 4 --reps 2
//	ansatz --config ansatz.hcl --format json
//	ansatz --list-presets
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/ansatz/config"
	"github.com/katalvlaran/ansatz/coupling"
	"github.com/katalvlaran/ansatz/preset"
)

// envConfig names the environment variable holding a default document path.
const envConfig = "ANSATZ_CONFIG"

// Exit codes.
const (
	exitBuild = 1
	exitUsage = 2
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: exitUsage, Message: fmt.Sprintf(format, args...)}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv); err != nil {
		var exit *ExitError
		if errors.As(err, &exit) {
			fmt.Fprintln(os.Stderr, "error:", exit.Message)
			os.Exit(exit.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitBuild)
	}
}

// flags holds the parsed command line.
type flags struct {
	configPath   string
	presetName   string
	wires        int
	reps         int
	entanglement string
	skipFinal    bool
	format       string
	logLevel     string
	listPresets  bool
	coupling     bool
}

func newFlagSet(f *flags, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("ansatz", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&f.configPath, "config", "c", "", "path to a .yaml, .json, .jsonc or .hcl document (default $"+envConfig+")")
	fs.StringVarP(&f.presetName, "preset", "p", "", "preset name, see --list-presets")
	fs.IntVarP(&f.wires, "wires", "w", 0, "number of wires")
	fs.IntVarP(&f.reps, "reps", "r", 0, "repetitions (preset default when omitted)")
	fs.StringVarP(&f.entanglement, "entanglement", "e", "", "topology: linear, reverse_linear, circular or full")
	fs.BoolVar(&f.skipFinal, "skip-final-rotation", false, "drop the trailing rotation layer")
	fs.StringVarP(&f.format, "format", "f", string(formatTable), "output format: table, json, yaml or cbor")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.BoolVar(&f.listPresets, "list-presets", false, "print the preset catalog and exit")
	fs.BoolVar(&f.coupling, "coupling", false, "include the wire-coupling summary")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ansatz [options]\n\nOptions:\n%s", fs.FlagUsages())
	}

	return fs
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)

	return zap.New(core), nil
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	var f flags
	fs := newFlagSet(&f, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usageError("%v", err)
	}
	if fs.NArg() > 0 {
		return usageError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	format, err := parseFormat(f.format)
	if err != nil {
		return usageError("%v", err)
	}
	logger, err := newLogger(f.logLevel, stderr)
	if err != nil {
		return usageError("invalid --log-level %q: %v", f.logLevel, err)
	}
	defer func() { _ = logger.Sync() }()

	if f.listPresets {
		return renderPresets(stdout)
	}

	doc, err := document(f, fs, getenv)
	if err != nil {
		return err
	}
	if err = doc.Validate(); err != nil {
		return usageError("%v", err)
	}
	logger.Debug("document resolved",
		zap.String("preset", doc.Preset),
		zap.Int("wires", doc.Arch.NWires),
		zap.String("format", string(format)),
	)

	tpl, err := doc.Build(preset.WithLogger(logger))
	if err != nil {
		return &ExitError{Code: exitBuild, Message: err.Error()}
	}

	var graph *coupling.Graph
	if f.coupling {
		if graph, err = coupling.FromTemplate(tpl); err != nil {
			return &ExitError{Code: exitBuild, Message: err.Error()}
		}
	}

	if err = render(stdout, format, doc.Preset, tpl, graph); err != nil {
		return &ExitError{Code: exitBuild, Message: err.Error()}
	}

	return nil
}

// document loads the config file, if any, and overlays explicit flags.
func document(f flags, fs *pflag.FlagSet, getenv func(string) string) (config.Document, error) {
	path := f.configPath
	if path == "" {
		path = getenv(envConfig)
	}

	var doc config.Document
	if path != "" {
		d, err := config.ReadFile(path)
		if err != nil {
			return config.Document{}, usageError("%v", err)
		}
		doc = d
	}

	if fs.Changed("preset") {
		doc.Preset = f.presetName
	}
	if fs.Changed("wires") {
		doc.Arch.NWires = f.wires
	}
	if fs.Changed("reps") {
		reps := f.reps
		doc.Reps = &reps
	}
	if fs.Changed("entanglement") {
		doc.Entanglement = f.entanglement
	}
	if fs.Changed("skip-final-rotation") {
		doc.SkipFinalRotation = f.skipFinal
	}

	if doc.Preset == "" {
		return config.Document{}, usageError("a preset is required: use --preset or --config")
	}

	return doc, nil
}
