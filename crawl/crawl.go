// Package crawl orchestrates the font discovery and download pipeline.
// It coordinates page fetching, stylesheet location, font-face extraction,
// and font downloads through the webfonts interfaces.
package crawl

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types emitted while collecting and downloading.
const (
	ProgressPageFetched ProgressType = iota
	ProgressInlineParsed
	ProgressStylesheetFetched
	ProgressStylesheetFailed
	ProgressDownloadCompleted
	ProgressDownloadFailed
)

// ProgressEvent reports progress during collection or download.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
