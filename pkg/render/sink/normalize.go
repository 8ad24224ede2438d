package sink

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/matzehuels/stackdeck/pkg/deck"
	"github.com/matzehuels/stackdeck/pkg/errors"
)

// Epoch is the timestamp written into artifacts unless overridden.
var Epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

const contentTypes = "[Content_Types].xml"

var (
	createdPattern  = regexp.MustCompile(`(<dcterms:created[^>]*>)[^<]*(</dcterms:created>)`)
	modifiedPattern = regexp.MustCompile(`(<dcterms:modified[^>]*>)[^<]*(</dcterms:modified>)`)
	slideSizeCX     = regexp.MustCompile(`(<p:sldSz\b[^>]*\bcx=")\d+(")`)
	slideSizeCY     = regexp.MustCompile(`(<p:sldSz\b[^>]*\bcy=")\d+(")`)
	sortedElements  = []*regexp.Regexp{
		regexp.MustCompile(`<Default\b[^>]*/>`),
		regexp.MustCompile(`<Override\b[^>]*/>`),
		regexp.MustCompile(`<Relationship\b[^>]*/>`),
	}
)

// normalizePackage rewrites an OOXML package so that equal decks produce
// equal bytes: entries are stored in name order with a fixed modification
// time, document timestamps are pinned, unordered element lists are sorted
// and the slide size is set to page.
func normalizePackage(data []byte, page deck.PageSize, stamp time.Time) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "open package")
	}

	entries := make(map[string][]byte, len(zr.File))
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		b, err := readEntry(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "read %s", f.Name)
		}
		entries[f.Name] = b
		names = append(names, f.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == contentTypes || names[j] == contentTypes {
			return names[i] == contentTypes
		}
		return names[i] < names[j]
	})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: stamp})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "create %s", name)
		}
		if _, err := w.Write(canonicalEntry(name, entries[name], page, stamp)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "write %s", name)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "close package")
	}
	return buf.Bytes(), nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func canonicalEntry(name string, b []byte, page deck.PageSize, stamp time.Time) []byte {
	switch {
	case name == "docProps/core.xml":
		ts := []byte("${1}" + stamp.UTC().Format("2006-01-02T15:04:05Z") + "${2}")
		b = createdPattern.ReplaceAll(b, ts)
		b = modifiedPattern.ReplaceAll(b, ts)
	case name == "ppt/presentation.xml":
		b = slideSizeCX.ReplaceAll(b, []byte(fmt.Sprintf("${1}%d${2}", page.Width)))
		b = slideSizeCY.ReplaceAll(b, []byte(fmt.Sprintf("${1}%d${2}", page.Height)))
	case name == contentTypes || strings.HasSuffix(name, ".rels"):
		for _, re := range sortedElements {
			b = sortMatches(b, re)
		}
	}
	return b
}

// sortMatches reorders the matches of re in place, leaving the bytes
// between them untouched.
func sortMatches(src []byte, re *regexp.Regexp) []byte {
	locs := re.FindAllIndex(src, -1)
	if len(locs) < 2 {
		return src
	}
	items := make([]string, len(locs))
	for i, loc := range locs {
		items[i] = string(src[loc[0]:loc[1]])
	}
	sort.Strings(items)

	var out bytes.Buffer
	prev := 0
	for i, loc := range locs {
		out.Write(src[prev:loc[0]])
		out.WriteString(items[i])
		prev = loc[1]
	}
	out.Write(src[prev:])
	return out.Bytes()
}
