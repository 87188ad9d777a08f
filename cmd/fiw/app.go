package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/fiw/internal/configuration"
	"github.com/desertwitch/fiw/internal/filesystem"
	"github.com/desertwitch/fiw/internal/io"
	"github.com/desertwitch/fiw/internal/ui"
	"github.com/desertwitch/fiw/internal/validation"
	"github.com/dustin/go-humanize"
)

// App is the principal structure wiring the handlers of one image write.
type App struct {
	config    configuration.Config
	identity  filesystem.Identity
	fsHandler *filesystem.Handler
	ioHandler *io.Handler
	printer   *ui.Printer
}

// NewApp returns a pointer to a new [App].
func NewApp(config configuration.Config,
	identity filesystem.Identity,
	fsHandler *filesystem.Handler,
	ioHandler *io.Handler,
	printer *ui.Printer,
) *App {
	return &App{
		config:    config,
		identity:  identity,
		fsHandler: fsHandler,
		ioHandler: ioHandler,
		printer:   printer,
	}
}

// Run validates source and target, then writes the source onto the target.
// Any error before the transfer means nothing was written. A returned
// [io.ErrTransfer] is passed through unwrapped and reads like the failing
// call, e.g. "sendfile: input/output error".
func (app *App) Run(source string, target string) error {
	srcInfo := app.resolve(source)
	dstInfo := app.resolve(target)

	if err := validation.Preflight(srcInfo, dstInfo); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	srcFile, err := app.ioHandler.OpenSource(source)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}
	defer closeFile(srcFile)

	dstFile, err := app.ioHandler.OpenTarget(target)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}
	defer closeFile(dstFile)

	app.printer.Source(Version, source)

	var digest string
	if app.config.Digest {
		slog.Info("Fingerprinting the source (may take a while):",
			"path", source,
			"size", humanize.Bytes(srcInfo.Size),
		)

		digest, err = app.ioHandler.Fingerprint(source)
		if err != nil {
			slog.Warn("Failed to fingerprint the source (skipped)",
				"path", source,
				"err", err,
			)
		}
	}

	app.printer.Target(digest, target)
	app.printer.Start(srcInfo.Size)

	written, transferErr := app.ioHandler.Transfer(int(srcFile.Fd()), int(dstFile.Fd()), srcInfo.Size)

	summary := app.printer.Finish()

	if transferErr != nil {
		slog.Debug("Transfer ended prematurely:",
			"written", written,
			"size", srcInfo.Size,
			"err", transferErr,
		)

		return transferErr
	}

	slog.Info("Transfer finished:",
		"source", source,
		"target", target,
		"summary", summary,
	)

	return nil
}

func (app *App) resolve(path string) *filesystem.Classification {
	c, err := app.fsHandler.Resolve(path, app.identity)
	if err != nil {
		slog.Debug("Failed to resolve path:",
			"path", path,
			"err", err,
		)

		return nil
	}

	return c
}

func closeFile(f *os.File) {
	if err := f.Close(); err != nil {
		slog.Warn("Failed to close file",
			"path", f.Name(),
			"err", err,
		)
	}
}
