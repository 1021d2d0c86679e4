package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
	"github.com/ibehnam/webpage-fonts-downloader/crawl"
)

// Run executes the fetch pipeline: collect, dedupe, filter, list, download,
// and optionally transcode.
func (c *CLI) Run(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStylesheetFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", event.URL, webfonts.ErrorMessage(event.Err))
		case crawl.ProgressStylesheetFetched:
			deps.Logger.Debug("stylesheet processed", "url", event.URL)
		}
	}

	fonts, err := deps.Collector.Collect(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching page: %s\n", webfonts.ErrorMessage(err))
		return err
	}

	fonts = webfonts.Dedupe(fonts)
	fonts = webfonts.Filter(fonts, c.categories()...)

	if len(fonts) == 0 {
		fmt.Fprintln(deps.Stdout, "No fonts found matching the specified criteria.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\nFound %d font(s):\n\n", len(fonts))
	for _, font := range fonts {
		fmt.Fprintf(deps.Stdout, "  %-14s %s (%s, %s)\n",
			"["+string(font.Category)+"]", font.Family, font.Weight, font.Style)
		if c.Verbose {
			if src, ok := webfonts.SelectSource(font); ok {
				fmt.Fprintf(deps.Stdout, "                 URL: %s\n", src.URL)
			}
		}
	}

	if c.ListOnly {
		return nil
	}

	absOutput, err := filepath.Abs(deps.Output)
	if err != nil {
		absOutput = deps.Output
	}
	fmt.Fprintf(deps.Stdout, "\nDownloading to: %s\n\n", absOutput)

	results := deps.Downloader.DownloadAll(deps.Ctx, fonts, nil)

	succeeded := 0
	var downloaded []string
	for _, result := range results {
		if result.Success() {
			succeeded++
			downloaded = append(downloaded, result.Path)
			fmt.Fprintf(deps.Stdout, "  OK: %s\n", filepath.Base(result.Path))
		} else {
			fmt.Fprintf(deps.Stderr, "  FAILED: %s - %s\n", result.Font.Family, webfonts.ErrorMessage(result.Err))
		}
	}
	fmt.Fprintf(deps.Stdout, "\nDownloaded %d/%d font(s).\n", succeeded, len(fonts))

	if c.TTF && len(downloaded) > 0 {
		c.transcodeAll(deps, downloaded)
	}

	if succeeded != len(fonts) {
		return fmt.Errorf("%d of %d downloads failed", len(fonts)-succeeded, len(fonts))
	}
	return nil
}

// transcodeAll converts downloaded woff2 files to TTF and removes the
// originals that converted successfully.
func (c *CLI) transcodeAll(deps *Dependencies, paths []string) {
	fmt.Fprintln(deps.Stdout, "\nConverting to TTF...")

	converted := 0
	for _, path := range paths {
		if !strings.EqualFold(filepath.Ext(path), ".woff2") {
			fmt.Fprintf(deps.Stdout, "  SKIP: %s (not woff2)\n", filepath.Base(path))
			continue
		}
		ttfPath, err := deps.Transcoder.Transcode(deps.Ctx, path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  FAILED: %s - %s\n", filepath.Base(path), webfonts.ErrorMessage(err))
			continue
		}
		if err := os.Remove(path); err != nil {
			deps.Logger.Debug("could not remove original", "path", path, "error", err)
		}
		fmt.Fprintf(deps.Stdout, "  OK: %s\n", filepath.Base(ttfPath))
		converted++
	}

	fmt.Fprintf(deps.Stdout, "\nConverted %d font(s) to TTF.\n", converted)
}
