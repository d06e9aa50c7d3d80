/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// slstatus inspects firmware status codes and security manager records.
//
// Usage:
//
//	slstatus [flags] status <code|name>...
//	slstatus [flags] space <code|name>...
//	slstatus [flags] list
//	slstatus [flags] record <network-key-info|aps-key-metadata|context> <hex>
//
// Status lines show the HTTP and gRPC statuses resolved by the library
// mapper, adjusted by --mapper-config when given.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"dirpx.dev/silabs/apis"
	"dirpx.dev/silabs/mapper"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			if msg := err.Error(); msg != "" {
				fmt.Fprintf(os.Stderr, "slstatus: %s\n", msg)
			}
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "slstatus: %v\n", err)
		os.Exit(1)
	}
}

// exitError carries a process exit code. An empty message means the
// failure was already reported.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }
func (e *exitError) ExitCode() int { return e.code }

func usageError(format string, args ...any) error {
	return &exitError{code: 2, msg: fmt.Sprintf(format, args...)}
}

// options are the global flags shared by every command.
type options struct {
	logLevel     string
	mapperConfig string
	explain      bool
	format       string
}

// env is what commands run against.
type env struct {
	opts   options
	out    io.Writer
	log    zerolog.Logger
	mapper apis.Mapper
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("slstatus", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	flagSet.StringVar(&opts.mapperConfig, "mapper-config", "", "YAML file with HTTP/gRPC mapping rules")
	flagSet.BoolVar(&opts.explain, "explain", false, "print which mapping rule matched")
	flagSet.StringVarP(&opts.format, "format", "o", "text", "output format: text, json or cbor")
	flagSet.SetInterspersed(false)
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return &exitError{code: 2, msg: err.Error()}
	}

	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return usageError("invalid --log-level %q", opts.logLevel)
	}
	switch opts.format {
	case "text", "json", "cbor":
	default:
		return usageError("invalid --format %q", opts.format)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).With().Timestamp().Logger()

	m, err := loadMapper(opts.mapperConfig, logger)
	if err != nil {
		return err
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printUsage(stderr, flagSet)
		return usageError("missing command")
	}

	e := &env{opts: opts, out: stdout, log: logger, mapper: m}
	cmd, cmdArgs := rest[0], rest[1:]
	logger.Debug().Str("command", cmd).Strs("args", cmdArgs).Msg("dispatch")

	switch cmd {
	case "status":
		return e.statusCmd(cmdArgs)
	case "space":
		return e.spaceCmd(cmdArgs)
	case "list":
		return e.listCmd(cmdArgs)
	case "record":
		return e.recordCmd(cmdArgs)
	default:
		return usageError("unknown command %q", cmd)
	}
}

func loadMapper(path string, logger zerolog.Logger) (apis.Mapper, error) {
	var opts []mapper.Option
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open mapper config: %w", err)
		}
		defer f.Close()

		opts, err = mapper.LoadConfig(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug().Str("path", path).Int("rules", len(opts)).Msg("mapper config loaded")
	}
	m, err := mapper.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("build mapper: %w", err)
	}
	return m, nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `Usage:
  slstatus [flags] status <code|name>...
  slstatus [flags] space <code|name>...
  slstatus [flags] list
  slstatus [flags] record <network-key-info|aps-key-metadata|context> <hex>

Flags:
%s`, flagSet.FlagUsages())
}
