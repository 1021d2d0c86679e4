package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ibehnam/webpage-fonts-downloader/crawl"
	"github.com/ibehnam/webpage-fonts-downloader/css"
	"github.com/ibehnam/webpage-fonts-downloader/exec"
	"github.com/ibehnam/webpage-fonts-downloader/fs"
	"github.com/ibehnam/webpage-fonts-downloader/goquery"
	webhttp "github.com/ibehnam/webpage-fonts-downloader/http"
	webslog "github.com/ibehnam/webpage-fonts-downloader/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fontfetch"),
		kong.Description("Download the web fonts used by a webpage"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	deps := buildDependencies(ctx, cli, stdout, stderr)
	defer func() { _ = deps.Fetcher.Close() }()

	return cli.Run(deps)
}

// buildDependencies wires the pipeline for a CLI invocation.
func buildDependencies(ctx context.Context, cli *CLI, stdout, stderr io.Writer) *Dependencies {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcherOpts := []webhttp.Option{webhttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, webhttp.WithUserAgent(cli.UserAgent))
	}
	fetcher := webslog.NewFetcher(webhttp.NewFetcher(fetcherOpts...), logger)

	limiter := crawl.NewDomainLimiter(cli.RPS)

	output := cli.Output
	if output == "" {
		output = "./" + fs.SiteDir(cli.URL)
	}

	return &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Fetcher: fetcher,
		Collector: &crawl.Collector{
			Fetcher:     fetcher,
			Locator:     goquery.NewLocator(),
			Extractor:   css.NewExtractor(fetcher),
			RateLimiter: limiter,
		},
		Downloader: &crawl.Downloader{
			Fetcher:     fetcher,
			Writer:      fs.NewWriter(output),
			RateLimiter: limiter,
			Concurrency: cli.Concurrency,
		},
		Transcoder: exec.NewTranscoder(),
		Output:     output,
	}
}
