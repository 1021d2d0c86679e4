package css

import (
	"io"
	"net/url"
	"strings"

	webfonts "github.com/ibehnam/webpage-fonts-downloader"
	parse "github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// parseStructured walks the stylesheet with the structured CSS parser and
// returns the @font-face rules and @import targets in document order.
// Blocks are not skipped, so @font-face rules nested in @media (or any
// other at-rule) are found too. A non-EOF parser error returns EPARSE
// together with whatever was gathered before the error.
func parseStructured(cssText string, base *url.URL, classifier *webfonts.Classifier) ([]*webfonts.FontFace, []string, error) {
	input := parse.NewInput(strings.NewReader(cssText))
	parser := tdcss.NewParser(input, false)

	var faces []*webfonts.FontFace
	var imports []string

	for {
		gt, _, data := parser.Next()

		switch gt {
		case tdcss.ErrorGrammar:
			if err := parser.Err(); err != nil && err != io.EOF {
				return faces, imports, webfonts.Errorf(webfonts.EPARSE, "structured CSS parse: %v", err)
			}
			return faces, imports, nil

		case tdcss.BeginAtRuleGrammar:
			if strings.EqualFold(string(data), "@font-face") {
				family, src, weight, style := parseFontFaceBlock(parser)
				if face, ok := buildFace(family, src, weight, style, base, classifier); ok {
					faces = append(faces, face)
				}
			}

		case tdcss.AtRuleGrammar:
			if strings.EqualFold(string(data), "@import") {
				if target := importTarget(parser.Values()); target != "" {
					imports = append(imports, target)
				}
			}
		}
	}
}

// parseFontFaceBlock reads declarations until the end of a @font-face block.
func parseFontFaceBlock(parser *tdcss.Parser) (family, src, weight, style string) {
	for {
		gt, _, data := parser.Next()

		switch gt {
		case tdcss.ErrorGrammar, tdcss.EndAtRuleGrammar:
			return family, src, weight, style

		case tdcss.DeclarationGrammar:
			value := joinTokens(parser.Values())
			switch strings.ToLower(string(data)) {
			case "font-family":
				family = value
			case "src":
				src = value
			case "font-weight":
				weight = value
			case "font-style":
				style = value
			}
		}
	}
}

// importTarget extracts the URL from @import tokens.
// Handles: @import "url"; @import url("url"); @import url(url);
// For url("url") the url( function token is skipped and the inner string
// token is picked up on the next iteration.
func importTarget(tokens []tdcss.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case tdcss.StringToken:
			return unquote(string(t.Data))
		case tdcss.URLToken:
			s := string(t.Data)
			s = strings.TrimPrefix(s, "url(")
			s = strings.TrimSuffix(s, ")")
			return unquote(strings.TrimSpace(s))
		}
	}
	return ""
}

// joinTokens rebuilds a declaration value string from its tokens,
// collapsing whitespace runs to single spaces.
func joinTokens(tokens []tdcss.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType == tdcss.WhitespaceToken {
			continue
		}
		parts = append(parts, string(t.Data))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
