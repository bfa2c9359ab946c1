package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrArchiveRead indicates the archive could not be opened or one of its
// entries could not be decoded as text. Wrapped errors carry the cause.
var ErrArchiveRead = errors.New("cannot read chapter archive")

// ChapterSuffix is the entry suffix selecting plain-text chapters,
// matched case-insensitively.
const ChapterSuffix = ".txt"

// Chapter is one decoded plain-text entry from the source archive.
type Chapter struct {
	Name string
	Text string
}

// ExtractChapters opens a ZIP archive from raw bytes, decodes every
// plain-text entry and returns the chapters sorted by name using a
// numeric-aware, case-insensitive collation ("chapter2" before
// "chapter10"). The sort is stable, so entries with equal keys keep the
// archive enumeration order. Entry decoding runs concurrently; ordering
// is enforced by the sort, never by completion order.
func ExtractChapters(ctx context.Context, data []byte) ([]Chapter, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveRead, err)
	}

	var files []*zip.File
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(file.Name), ChapterSuffix) {
			continue
		}
		files = append(files, file)
	}

	chapters := make([]Chapter, len(files))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := decodeEntry(file)
			if err != nil {
				return err
			}
			chapters[i] = Chapter{Name: file.Name, Text: text}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	collator := collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
	sort.SliceStable(chapters, func(i, j int) bool {
		return collator.CompareString(chapters[i].Name, chapters[j].Name) < 0
	})

	return chapters, nil
}

// decodeEntry reads a single archive entry and validates it decodes as
// UTF-8 text.
func decodeEntry(file *zip.File) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open entry %s: %v", ErrArchiveRead, file.Name, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: read entry %s: %v", ErrArchiveRead, file.Name, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: entry %s is not valid text", ErrArchiveRead, file.Name)
	}

	return string(raw), nil
}
