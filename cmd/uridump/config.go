package main

import (
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"gitlab.com/efronlicht/enve"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/uri"
)

const (
	envFormat    = "URIDUMP_FORMAT"
	envDevLog    = "URIDUMP_DEV_LOG"
	envVerbose   = "URIDUMP_VERBOSE"
	envStaticCap = "URIDUMP_STATIC_CAP"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type options struct {
	all, list, sizes bool
	test, static     int
	capacity         int
	debug, file      string
	format           string
	devLog, verbose  bool
}

// defaultOptions returns the flag defaults, overridden from the environment.
func defaultOptions() *options {
	return &options{
		test:     -1,
		static:   -1,
		capacity: enve.IntOr(envStaticCap, uri.DefaultFixedCap),
		format:   enve.StringOr(envFormat, formatText),
		devLog:   enve.BoolOr(envDevLog, false),
		verbose:  enve.BoolOr(envVerbose, false),
	}
}

func (o *options) validate() error {
	switch o.format {
	case formatText, formatJSON, formatYAML:
	default:
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown format %q", o.format))
	}
	if o.capacity <= 0 || o.capacity > uri.MaxLen {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("capacity %d out of range (0, %d]", o.capacity, uri.MaxLen))
	}
	return nil
}

// logger returns the shared stderr loggers when they match the options.
func (o *options) logger(w io.Writer) *slog.Logger {
	if w == os.Stderr {
		switch {
		case o.devLog && o.verbose:
			return log.Dev
		case !o.devLog && !o.verbose:
			return log.Def
		}
	}
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return log.New(w, o.devLog, level)
}

// acted reports whether any action flag was given.
func (o *options) acted() bool {
	return o.list || o.sizes || o.test >= 0 || o.static >= 0 || o.debug != "" || o.file != ""
}
