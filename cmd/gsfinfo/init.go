package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/zerodha/logf"
)

// initLogger initializes logger instance.
func initLogger(ko *koanf.Koanf) logf.Logger {
	opts := logf.Opts{EnableCaller: true}
	if ko.Bool("debug") {
		opts.Level = logf.DebugLevel
		opts.EnableColor = true
	}
	return logf.New(opts)
}

// initConfig loads flags and env vars to `ko` object and returns the
// positional args (the files to inspect).
func initConfig() (*koanf.Koanf, []string, error) {
	var (
		ko = koanf.New(".")
		f  = flag.NewFlagSet("gsfinfo", flag.ContinueOnError)
	)

	// Configure Flags.
	f.Usage = func() {
		fmt.Println("usage: gsfinfo [flags] FILE...")
		fmt.Println(f.FlagUsages())
		os.Exit(0)
	}

	f.Bool("debug", false, "Enable debug logging.")
	f.Int("max-records", 0, "Stop after this many records per file (0 = all).")
	f.Bool("skip-invalid", false, "Skip records that fail to decode instead of stopping.")

	// Parse and Load Flags.
	if err := f.Parse(os.Args[1:]); err != nil {
		return nil, nil, err
	}

	if err := ko.Load(posflag.Provider(f, ".", ko), nil); err != nil {
		return nil, nil, err
	}
	if err := ko.Load(env.Provider("GSFINFO_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "GSFINFO_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, nil, err
	}

	return ko, f.Args(), nil
}
