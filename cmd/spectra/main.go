// Command spectra analyses a numeric series read from a file or stdin.
//
// Usage:
//
//	spectra <command> [flags] [file]
//
// Commands:
//
//	psd     Welch magnitude spectrum and dominant frequency
//	fft     full complex spectrum of the zero-padded series
//	filter  Butterworth low/high-pass filtering
//	probe   single-frequency magnitude (Goertzel)
//	stats   time-domain summary
//
// Samples are read one per line or comma/space separated; blank lines and
// lines starting with '#' are ignored. Defaults come from SPECTRA_* environment
// variables or a .env file in the working directory.
//
// Examples:
//
//	spectra psd -window 64 -overlap 32 -rate 24 prices.txt
//	spectra filter -cutoff 5 -rate 200 -type highpass < signal.txt
//	spectra fft -check signal.txt
//	spectra probe -freq 50 -rate 200 signal.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/walletscope/spectral/internal/config"
	"github.com/walletscope/spectral/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage()
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", args[0])
		usage()
		return 2
	}

	app := &app{cfg: cfg, log: log, stdin: os.Stdin, stdout: os.Stdout}
	if err := cmd(app, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: spectra <command> [flags] [file]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  psd     Welch magnitude spectrum and dominant frequency\n")
	fmt.Fprintf(os.Stderr, "  fft     full complex spectrum of the zero-padded series\n")
	fmt.Fprintf(os.Stderr, "  filter  Butterworth low/high-pass filtering\n")
	fmt.Fprintf(os.Stderr, "  probe   single-frequency magnitude (Goertzel)\n")
	fmt.Fprintf(os.Stderr, "  stats   time-domain summary\n")
	fmt.Fprintf(os.Stderr, "\nRun 'spectra <command> -h' for command flags.\n")
}
