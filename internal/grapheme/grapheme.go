package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Clusters returns grapheme clusters for text in visual order.
func Clusters(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// Truncate returns the longest prefix of text not wider than cells.
func Truncate(text string, cells int) string {
	if cells <= 0 {
		return ""
	}
	w := 0
	g := uniseg.NewGraphemes(text)
	end := 0
	for g.Next() {
		w += g.Width()
		if w > cells {
			break
		}
		_, end = g.Positions()
	}
	return text[:end]
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
