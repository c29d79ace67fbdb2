package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/corrmap"
	"github.com/etnz/corrmap/chart"
	"github.com/etnz/corrmap/narrator"
	"github.com/etnz/corrmap/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

const separator = "--------------------------------------------------"

type analyzeCmd struct {
	deps
	symbol     string
	noPrompt   bool
	outDir     string
	palette    string
	markdown   bool
	commentary bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "compute the correlations of the universe and draw them" }
func (*analyzeCmd) Usage() string {
	return `cmap analyze [-s <symbol>] [-no-prompt] [-out <dir>] [-palette <name>] [-markdown] [-commentary]

  Downloads the prices of every symbol of the universe, computes the asset
  and sector correlations and draws them:

    clustermap.pdf       asset correlations ordered by hierarchical clustering
    sectors.pdf          sector vs. sector correlations
    drivers_<SYM>.pdf    most and least correlated symbols of <SYM>, if any

  The symbol is asked for on the standard input unless -s or -no-prompt is set.
  The sector highlights are printed last.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol to report the correlation drivers of. Skips the prompt.")
	f.BoolVar(&c.noPrompt, "no-prompt", false, "Do not ask for a symbol.")
	f.StringVar(&c.outDir, "out", "", "Folder to write the figures to (defaults to a new temporary folder).")
	f.StringVar(&c.palette, "palette", "vlag", "Color palette of the cluster map: vlag or coolwarm.")
	f.BoolVar(&c.markdown, "markdown", false, "Also print the full report as markdown.")
	f.BoolVar(&c.commentary, "commentary", false, "Ask Gemini for a commentary of the report (requires GEMINI_API_KEY).")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx = c.withLogger(ctx)
	log := zerolog.Ctx(ctx)
	w := c.out()

	palette, err := chart.ParsePalette(c.palette)
	if err != nil {
		return c.fail(err)
	}
	cfg, u, err := loadConfig()
	if err != nil {
		return c.fail(err)
	}

	fmt.Fprintf(w, "Downloading data for %d assets...\n", len(u.Symbols()))
	src, release, err := c.openSource(ctx, cfg)
	if err != nil {
		return c.fail(err)
	}
	a, err := corrmap.Analyze(ctx, src, u)
	release()
	if err != nil {
		return c.fail(err)
	}
	fmt.Fprintln(w, "Correlations Computed.")

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Available Assets: %d total tickers.\n", len(a.Available()))
	fmt.Fprintln(w, separator)

	target := corrmap.ParseSymbol(c.symbol)
	if target == "" && !c.noPrompt {
		fmt.Fprint(w, "Enter an asset symbol to analyze (e.g., NVDA, BTC-USD, LMT) or press Enter to skip: ")
		line, err := bufio.NewReader(c.in()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return c.fail(err)
		}
		target = corrmap.ParseSymbol(line)
	}

	dir := c.outDir
	if dir == "" {
		if dir, err = os.MkdirTemp("", "cmap-"); err != nil {
			return c.fail(err)
		}
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return c.fail(err)
	}
	period := u.Range.Label()

	var drivers *corrmap.DriverList
	if target != "" {
		d, err := a.Drivers(target)
		switch {
		case errors.Is(err, corrmap.ErrSymbolNotFound):
			fmt.Fprintf(w, "Warning: %s not found in data. Skipping Chart 3.\n", target)
		case err != nil:
			return c.fail(err)
		default:
			fmt.Fprintf(w, "Generating specific correlation report for %s...\n", target)
			drivers = &d
			name := filepath.Join(dir, "drivers_"+fileName(target)+".pdf")
			if err := writeFigure(name, func(fw io.Writer) error {
				return chart.Drivers(fw, d, chart.DriversOptions(period))
			}); err != nil {
				return c.fail(err)
			}
		}
	}

	clusterOpts := chart.ClusterMapOptions(period)
	clusterOpts.Palette = palette
	if err := writeFigure(filepath.Join(dir, "clustermap.pdf"), func(fw io.Writer) error {
		return chart.ClusterMap(fw, a.Assets, a.Clusters, clusterOpts)
	}); err != nil {
		return c.fail(err)
	}
	if err := writeFigure(filepath.Join(dir, "sectors.pdf"), func(fw io.Writer) error {
		return chart.Heatmap(fw, a.Sectors, chart.HeatmapOptions())
	}); err != nil {
		return c.fail(err)
	}
	fmt.Fprintf(w, "Figures saved in %s\n", dir)
	fmt.Fprintln(w, "Analysis Complete.")

	h, err := a.Highlights()
	if err != nil {
		fmt.Fprintf(c.err(), "Warning: no sector highlights: %v\n", err)
	} else {
		fmt.Fprint(w, renderer.Highlights(h))
	}

	if !c.markdown && !c.commentary {
		return subcommands.ExitSuccess
	}
	report := renderer.ReportMarkdown(renderer.NewReport(a, drivers))
	if c.markdown {
		fmt.Fprintln(w)
		printMarkdown(w, report)
	}
	if c.commentary {
		comment, err := comment(ctx, report)
		if err != nil {
			log.Warn().Err(err).Msg("no commentary")
			fmt.Fprintf(c.err(), "Warning: no commentary: %v\n", err)
			return subcommands.ExitSuccess
		}
		fmt.Fprintln(w)
		printMarkdown(w, "## Commentary\n\n"+comment+"\n")
	}
	return subcommands.ExitSuccess
}

// writeFigure creates the file name and draws into it.
func writeFigure(name string, draw func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := draw(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot draw %s: %w", filepath.Base(name), err)
	}
	return f.Close()
}

// fileName makes a symbol safe to use in a file name.
func fileName(s corrmap.Symbol) string {
	return strings.NewReplacer("/", "_", `\`, "_", ":", "_").Replace(s.String())
}

// comment asks Gemini for a commentary of the report.
func comment(ctx context.Context, report string) (string, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", err
	}
	return narrator.New(client).Comment(ctx, report)
}
