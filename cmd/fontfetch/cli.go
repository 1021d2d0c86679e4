package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
	"github.com/ibehnam/webpage-fonts-downloader/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Fetcher    webfonts.Fetcher
	Collector  *crawl.Collector
	Downloader *crawl.Downloader
	Transcoder webfonts.Transcoder
	Output     string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string        `arg:"" required:"" help:"URL of the webpage to analyze"`
	Output      string        `short:"o" help:"Output directory for downloaded fonts (default: ./<site name>)"`
	Serif       bool          `help:"Include serif fonts"`
	SansSerif   bool          `name:"sans-serif" help:"Include sans-serif fonts"`
	Monospace   bool          `help:"Include monospace fonts"`
	All         bool          `help:"Include every font, whatever its category"`
	ListOnly    bool          `name:"list-only" help:"List fonts without downloading"`
	TTF         bool          `name:"ttf" help:"Convert downloaded woff2 fonts to TTF"`
	Verbose     bool          `short:"v" help:"Verbose output"`
	Timeout     time.Duration `default:"30s" help:"HTTP request timeout"`
	UserAgent   string        `name:"user-agent" help:"User-Agent header for requests"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent download limit"`
	RPS         float64       `name:"rps" default:"4" help:"Max requests per second per host"`
}

// categories translates the category flags into a filter list.
// No flags (or --all) means no filtering.
func (c *CLI) categories() []webfonts.Category {
	if c.All {
		return nil
	}
	var cats []webfonts.Category
	if c.Serif {
		cats = append(cats, webfonts.CategorySerif)
	}
	if c.SansSerif {
		cats = append(cats, webfonts.CategorySansSerif)
	}
	if c.Monospace {
		cats = append(cats, webfonts.CategoryMonospace)
	}
	return cats
}
