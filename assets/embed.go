// Package assets embeds the default word lists shipped with the binary.
package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed words-used.txt words-extra.txt
var FS embed.FS

const (
	UsedFile  = "words-used.txt"
	ExtraFile = "words-extra.txt"
)

// ReadLines returns the trimmed, lowercased, non-blank lines of r.
// Lines starting with '#' are comments.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func readEmbedded(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// UsedList returns the embedded answer list.
func UsedList() ([]string, error) {
	return readEmbedded(UsedFile)
}

// ExtraList returns the embedded guess-only list.
func ExtraList() ([]string, error) {
	return readEmbedded(ExtraFile)
}
