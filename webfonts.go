// Package webfonts discovers, classifies, and downloads the web fonts
// referenced by a webpage. It resolves stylesheets from HTML, extracts
// @font-face rules (following @import chains), classifies font families
// with heuristic rules, and selects the best source format for download.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, css/, http/).
package webfonts
