package main

import (
	"fmt"
	stdio "io"
	"log/slog"
	"os"
	"time"

	"github.com/desertwitch/fiw/internal/configuration"
	"github.com/desertwitch/fiw/internal/filesystem"
	"github.com/desertwitch/fiw/internal/io"
	"github.com/desertwitch/fiw/internal/schema"
	"github.com/desertwitch/fiw/internal/ui"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  = "0.1"
)

type osProvider interface {
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
	Stat(path string, stat *unix.Stat_t) error
	Sendfile(outfd int, infd int, offset *int64, count int) (int, error)
	Geteuid() int
	Getegid() int
}

// options holds the command-line flags. Flags that were set take precedence
// over the configuration file.
type options struct {
	configPath  string
	logLevel    string
	progressBar bool
	digest      bool
	strict      bool
}

// deps holds everything a run needs from the outside world.
type deps struct {
	stdout      stdio.Writer
	stderr      stdio.Writer
	osHandler   osProvider
	unixHandler unixProvider
}

func setupLogging(w stdio.Writer, level slog.Leveler) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ExitCode = run(os.Args[1:], &deps{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		osHandler:   &schema.OS{},
		unixHandler: &schema.Unix{},
	})
}

// run executes the command line and returns the exit code. It is the only
// place deciding about messages and exit codes of failures.
func run(args []string, d *deps) int {
	setupLogging(d.stderr, slog.LevelWarn)

	opts := &options{}
	cfg := configuration.Default()

	cmd := newRootCmd(opts, func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = loadConfig(cmd, opts)
		if err != nil {
			return err
		}

		setupLogging(d.stderr, cfg.LogLevel)

		return newApp(cfg, d).Run(args[0], args[1])
	})

	cmd.SetArgs(args)
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)

	return handleError(cmd.Execute(), cfg, d)
}

func newRootCmd(opts *options, runE func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fiw [flags] [--] <source.img> <target-device>",
		Short: "Fast Image Writer",
		Long: `fiw writes a disk image onto a block or character device.

The source must be a readable regular file, the target a writable device
node. Data is moved by the kernel with sendfile(2) and every write is
synchronous.

Arguments starting with a dash are read as flags. Put them after "--",
e.g. "fiw -- -image.img /dev/sdb".`,
		Version:       Version,
		Args:          requireSourceAndTarget,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runE,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrArguments, err)
	})

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (KEY=value format)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.progressBar, "bar", false, "render a progress bar")
	cmd.Flags().BoolVar(&opts.digest, "digest", false, "print the BLAKE3 digest of the source before writing")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with failure when the transfer ends prematurely")

	return cmd
}

func requireSourceAndTarget(_ *cobra.Command, args []string) error {
	if len(args) < 2 { //nolint:mnd
		return ErrArguments
	}

	return nil
}

func loadConfig(cmd *cobra.Command, opts *options) (configuration.Config, error) {
	cfg, err := configuration.NewHandler(&configuration.GodotenvProvider{}).Load(opts.configPath)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	flags := cmd.Flags()

	if flags.Changed("log-level") {
		level, err := configuration.ParseLogLevel(opts.logLevel)
		if err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		cfg.LogLevel = level
	}

	if flags.Changed("bar") {
		cfg.ProgressBar = opts.progressBar
	}

	if flags.Changed("digest") {
		cfg.Digest = opts.digest
	}

	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}

	return cfg, nil
}

func newApp(cfg configuration.Config, d *deps) *App {
	printer := ui.NewPrinter(d.stdout, cfg.ProgressBar)

	return NewApp(
		cfg,
		filesystem.CurrentIdentity(d.unixHandler),
		filesystem.NewHandler(d.unixHandler),
		io.NewHandler(d.osHandler, d.unixHandler, printer),
		printer,
	)
}
