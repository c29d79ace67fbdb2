// Package cmd implements the cmap command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/corrmap"
	"github.com/etnz/corrmap/config"
	"github.com/etnz/corrmap/date"
	"github.com/etnz/corrmap/eodhd"
	"github.com/etnz/corrmap/httpcache"
	"github.com/etnz/corrmap/yahoo"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Commands are all the subcommands of the application.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&driversCmd{},
	&sectorsCmd{},
	&universeCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	universeFile = flag.String("universe", "", "Path to a universe YAML file (defaults to the built-in universe)")
	providerName = flag.String("provider", "", "Market data provider: yahoo or eodhd (defaults to the universe's)")
	eodhdAPIKey  = flag.String("eodhd-api-key", "", "EODHD API key. Takes precedence over the "+eodhd.APIKeyEnv+" environment variable")
	fromDate     = flag.String("from", "", "First day of the analysis (defaults to the universe's)")
	toDate       = flag.String("to", "", "Last day of the analysis, included (defaults to the universe's)")
	logLevel     = flag.String("log-level", "warn", "Log level: debug, info, warn or error")
	noCache      = flag.Bool("no-cache", false, "Do not cache provider responses")
	cacheDir     = flag.String("cache-dir", "", "Folder to keep provider responses in between runs (defaults to memory only)")
)

// deps are the streams and collaborators of a command. Zero values stand for
// the process streams and the configured provider.
type deps struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	source corrmap.Source
}

func (d *deps) in() io.Reader {
	if d.stdin == nil {
		return os.Stdin
	}
	return d.stdin
}

func (d *deps) out() io.Writer {
	if d.stdout == nil {
		return os.Stdout
	}
	return d.stdout
}

func (d *deps) err() io.Writer {
	if d.stderr == nil {
		return os.Stderr
	}
	return d.stderr
}

// withLogger returns ctx with the run logger attached. Every log line of a
// run carries the same run id.
func (d *deps) withLogger(ctx context.Context) context.Context {
	level, err := zerolog.ParseLevel(strings.ToLower(*logLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: d.err(), NoColor: !isTerminal(d.err())}).
		Level(level).
		With().Timestamp().Str("run", uuid.NewString()).
		Logger()
	return logger.WithContext(ctx)
}

// loadConfig loads the universe file and applies the command line overrides.
func loadConfig() (*config.Config, corrmap.Universe, error) {
	cfg, err := config.Load(*universeFile)
	if err != nil {
		return nil, corrmap.Universe{}, err
	}
	if *fromDate != "" {
		if cfg.From, err = date.Parse(*fromDate); err != nil {
			return nil, corrmap.Universe{}, fmt.Errorf("invalid -from: %w", err)
		}
	}
	if *toDate != "" {
		if cfg.To, err = date.Parse(*toDate); err != nil {
			return nil, corrmap.Universe{}, fmt.Errorf("invalid -to: %w", err)
		}
	}
	if *providerName != "" {
		cfg.Provider = *providerName
	}
	u, err := cfg.Universe()
	if err != nil {
		return nil, corrmap.Universe{}, err
	}
	return cfg, u, nil
}

// openSource returns the market data source of the configuration and a
// function to release it.
func (d *deps) openSource(ctx context.Context, cfg *config.Config) (corrmap.Source, func(), error) {
	if d.source != nil {
		return d.source, func() {}, nil
	}
	log := zerolog.Ctx(ctx)
	opts := httpcache.Options{
		Period:  cfg.CachePeriod(),
		Rate:    rate.Limit(cfg.Fetch.Rate),
		Burst:   cfg.Fetch.Burst,
		Timeout: cfg.Fetch.Timeout,
	}
	release := func() {}
	if !*noCache {
		store, err := openCache()
		if err != nil {
			log.Warn().Err(err).Msg("response cache disabled")
		} else {
			opts.Store = store
			release = func() {
				if err := store.Close(); err != nil {
					log.Warn().Err(err).Msg("cannot close response cache")
				}
			}
		}
	}
	client := httpcache.NewClient(opts)

	switch cfg.Provider {
	case "eodhd":
		src, err := eodhd.New(*eodhdAPIKey, eodhd.WithHTTPClient(client))
		if err != nil {
			release()
			return nil, nil, err
		}
		return src, release, nil
	case "yahoo", "":
		return yahoo.New(yahoo.WithHTTPClient(client), yahoo.WithParallelism(cfg.Fetch.Parallelism)), release, nil
	default:
		release()
		return nil, nil, fmt.Errorf("unknown provider %q, want yahoo or eodhd", cfg.Provider)
	}
}

// openCache opens the response cache: in memory for the run, or in
// -cache-dir when set.
func openCache() (*httpcache.Store, error) {
	if *cacheDir == "" {
		return httpcache.OpenInMemory()
	}
	return httpcache.Open(*cacheDir)
}

// run loads the universe and computes the whole analysis.
func (d *deps) run(ctx context.Context) (*corrmap.Analysis, error) {
	cfg, u, err := loadConfig()
	if err != nil {
		return nil, err
	}
	src, release, err := d.openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer release()
	return corrmap.Analyze(ctx, src, u)
}

// fail prints err and returns the matching exit status.
func (d *deps) fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(d.err(), "Error: %v\n", err)
	return subcommands.ExitFailure
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// printMarkdown renders markdown for the terminal, or prints it as is when
// w is not a terminal.
func printMarkdown(w io.Writer, md string) {
	if !isTerminal(w) {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
