package services

import (
	"context"
	"strings"

	"github.com/s4daharu/novel-apps-sub001/internal/archive"
	"github.com/s4daharu/novel-apps-sub001/internal/backup"
	"github.com/s4daharu/novel-apps-sub001/internal/blocks"
	"github.com/s4daharu/novel-apps-sub001/internal/utils"
)

// ConversionRequest carries the validated inputs from the caller: the
// archive bytes plus the project-level fields entered in the form.
type ConversionRequest struct {
	Archive        []byte
	Title          string
	Description    string
	UniqueCode     string
	ChapterPattern string
	StartNumber    int
	ExtraChapters  int
}

// ConversionResult is the finished payload handed back to the caller:
// the serialized backup, a suggested filename and summary counters.
type ConversionResult struct {
	Data         []byte
	Filename     string
	ChapterCount int
	WordCount    int
}

// ConversionService turns a ZIP archive of plain-text chapters into a
// structured backup document. The whole operation is one request/response
// unit: it either completes and yields one document or fails and yields
// nothing.
type ConversionService struct{}

// NewConversionService creates a new ConversionService.
func NewConversionService() *ConversionService {
	return &ConversionService{}
}

// ZipToBackup runs the full pipeline: extract chapters, build the empty
// envelope, assemble scenes and sections, aggregate the word count and
// serialize. Out-of-range numeric inputs are normalized at this boundary
// (start number below 1 becomes 1, negative extras become 0).
func (s *ConversionService) ZipToBackup(ctx context.Context, req ConversionRequest) (*ConversionResult, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, backup.ErrMissingTitle
	}
	if req.StartNumber < 1 {
		req.StartNumber = 1
	}
	if req.ExtraChapters < 0 {
		req.ExtraChapters = 0
	}

	chapters, err := archive.ExtractChapters(ctx, req.Archive)
	if err != nil {
		return nil, err
	}

	doc, err := backup.NewBackup(req.Title, req.Description, req.UniqueCode)
	if err != nil {
		return nil, err
	}

	scenes, sections, count, err := backup.AssembleChapters(chapters, backup.AssembleOptions{
		Pattern:       req.ChapterPattern,
		StartNumber:   req.StartNumber,
		ExtraChapters: req.ExtraChapters,
	})
	if err != nil {
		return nil, err
	}

	revision := &doc.Revisions[0]
	revision.Scenes = scenes
	revision.Sections = sections

	wordCount := blocks.CountWords(scenes)
	revision.BookProgresses[0].WordCount = wordCount

	data, err := backup.Marshal(doc)
	if err != nil {
		return nil, err
	}

	return &ConversionResult{
		Data:         data,
		Filename:     utils.BackupFilename(req.Title),
		ChapterCount: count,
		WordCount:    wordCount,
	}, nil
}
