package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unsafe"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/gouri/dump"
	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/internal/samples"
	"github.com/ghettovoice/gouri/uri"
)

func newRootCmd() *cobra.Command {
	opts := defaultOptions()
	cmd := &cobra.Command{
		Use:   "uridump [flags] [uri...]",
		Short: "uridump decomposes URIs into their components.",
		Long: `uridump parses every URI given as an argument and prints its components.
With no arguments and no action flags all built-in samples are dumped.`,
		SilenceUsage: true,
		PreRunE: func(*cobra.Command, []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.all, "all", "a", false, "dump all built-in samples")
	f.BoolVarP(&opts.list, "list", "l", false, "list built-in samples")
	f.BoolVar(&opts.sizes, "sizes", false, "print value sizes")
	f.IntVarP(&opts.test, "test", "t", opts.test, "dump sample `N` parsed into dynamic storage")
	f.IntVarP(&opts.static, "static", "s", opts.static, "dump sample `N` parsed into fixed storage")
	f.IntVar(&opts.capacity, "capacity", opts.capacity, "fixed storage capacity in bytes (env "+envStaticCap+")")
	f.StringVarP(&opts.debug, "debug", "d", "", "dump `URI` with its bitset and component ranges")
	f.StringVarP(&opts.file, "file", "f", "", "dump every line of `PATH` as a URI")
	f.StringVar(&opts.format, "format", opts.format, "output format: text, json or yaml (env "+envFormat+")")
	f.BoolVar(&opts.devLog, "dev-log", opts.devLog, "use the developer log handler (env "+envDevLog+")")
	f.BoolVarP(&opts.verbose, "verbose", "v", opts.verbose, "log every parsed URI (env "+envVerbose+")")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) (err error) {
	out := cmd.OutOrStdout()
	logger := opts.logger(cmd.ErrOrStderr())
	p := newPrinter(out, opts.format)
	defer func() {
		if cerr := p.close(); err == nil {
			err = cerr
		}
	}()

	if opts.list {
		if err := listSamples(out); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if opts.sizes {
		if err := printSizes(out); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if opts.test >= 0 {
		s, err := sample(opts.test)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if err := emit(p, logger, uri.Parse(s.Source, nil)); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if opts.static >= 0 {
		s, err := sample(opts.static)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u := uri.Parse(s.Source, &uri.ParseOptions{Storage: uri.NewFixedStorage(opts.capacity)})
		if err := emit(p, logger, u); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if opts.debug != "" {
		u := uri.Parse(opts.debug, nil)
		report(logger, &u.View)
		if err := p.debug(&u.View); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if opts.file != "" {
		if err := dumpFile(p, logger, opts.file); err != nil {
			return errtrace.Wrap(err)
		}
	}
	for _, a := range args {
		if err := emit(p, logger, uri.Parse(a, nil)); err != nil {
			return errtrace.Wrap(err)
		}
	}

	if opts.all || (!opts.acted() && len(args) == 0) {
		return errtrace.Wrap(dumpSamples(p, logger))
	}
	return nil
}

func sample(i int) (samples.Sample, error) {
	s, ok := samples.Index(i)
	if !ok {
		return s, errtrace.Wrap(errorutil.NewInvalidArgumentError("test case %d out of range [0, %d)", i, len(samples.URIs)))
	}
	return s, nil
}

func emit(p printer, logger *slog.Logger, u *uri.URI) error {
	report(logger, &u.View)
	return errtrace.Wrap(p.print(&u.View))
}

// report logs parse failures, and every parsed value in verbose mode.
func report(logger *slog.Logger, v *uri.View) {
	if !v.IsValid() {
		logger.Warn("failed to parse uri", "source", log.StringValue(v.Source()), "error", v.Err())
		return
	}
	logger.Debug("parsed uri",
		"uri", v,
		"components", log.FmtValue(v, false),
		"query", v.DecodeQuery(nil),
		"dump", log.CalcValue(func() any { return dump.String(v) }),
	)
}

func listSamples(w io.Writer) error {
	for i, s := range samples.URIs {
		if _, err := fmt.Fprintf(w, "%d\t%s (%d)\n", i, s.Source, len(s.Source)); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func printSizes(w io.Writer) error {
	_, err := fmt.Fprintf(w, "uri: %d\nview: %d\ntable: %d\n",
		unsafe.Sizeof(uri.URI{}), unsafe.Sizeof(uri.View{}), unsafe.Sizeof(uri.Table{}))
	return errtrace.Wrap(err)
}

func dumpSamples(p printer, logger *slog.Logger) error {
	for _, s := range samples.URIs {
		if err := emit(p, logger, uri.Parse(s.Source, nil)); err != nil {
			return errtrace.Wrap(err)
		}
	}
	logger.Info("samples dumped", "count", len(samples.URIs))
	return nil
}

func dumpFile(p printer, logger *slog.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), uri.MaxLen+1)
	var n int
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		n++
		v := uri.NewView(line)
		report(logger, v)
		if err := p.print(v); err != nil {
			return errtrace.Wrap(err)
		}
	}
	if err := sc.Err(); err != nil {
		return errtrace.Wrap(err)
	}
	logger.Info("file read", "path", path, "uris", n)
	return nil
}
