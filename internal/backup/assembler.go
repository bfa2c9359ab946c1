package backup

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/s4daharu/novel-apps-sub001/internal/archive"
	"github.com/s4daharu/novel-apps-sub001/internal/blocks"
	"github.com/s4daharu/novel-apps-sub001/internal/entities"
)

// AssembleOptions controls rank assignment and title derivation.
type AssembleOptions struct {
	// Pattern prefixes chapter titles ("Chapter " yields "Chapter 1",
	// "Chapter 2", ...). When empty, real chapters fall back to their
	// entry name with the .txt suffix stripped and synthetic ones to a
	// literal "Chapter <rank>" label.
	Pattern string

	// StartNumber is the rank of the first chapter, minimum 1.
	StartNumber int

	// ExtraChapters is the number of synthetic empty chapters appended
	// after the extracted ones, contiguous in rank.
	ExtraChapters int
}

// AssembleChapters walks extracted chapters in order, then the requested
// synthetic extras, assigning a single monotonic index across both
// phases. Every chapter produces a scene and a paired section sharing
// the same rank; the section holds exactly one nested scene reference.
// Returns ErrNoChapters when the combined chapter count is zero.
func AssembleChapters(chapters []archive.Chapter, opts AssembleOptions) ([]entities.Scene, []entities.Section, int, error) {
	total := len(chapters) + opts.ExtraChapters
	if total == 0 {
		return nil, nil, 0, ErrNoChapters
	}

	scenes := make([]entities.Scene, 0, total)
	sections := make([]entities.Section, 0, total)

	for index, chapter := range chapters {
		rank := opts.StartNumber + index
		title := opts.Pattern + strconv.Itoa(rank)
		if opts.Pattern == "" {
			title = stripChapterSuffix(chapter.Name)
		}

		scene, section := buildChapter(rank, title, blocks.Container(chapter.Text))
		scenes = append(scenes, scene)
		sections = append(sections, section)
	}

	for extra := 0; extra < opts.ExtraChapters; extra++ {
		rank := opts.StartNumber + len(chapters) + extra
		title := opts.Pattern + strconv.Itoa(rank)
		if opts.Pattern == "" {
			title = "Chapter " + strconv.Itoa(rank)
		}

		scene, section := buildChapter(rank, title, blocks.EmptyContainer())
		scenes = append(scenes, scene)
		sections = append(sections, section)
	}

	return scenes, sections, total, nil
}

// buildChapter derives the paired scene/section records for one rank.
func buildChapter(rank int, title string, container entities.BlockContainer) (entities.Scene, entities.Section) {
	// Marshaling a plain block container cannot fail.
	text, _ := json.Marshal(container)

	scene := entities.Scene{
		Code:    "scene" + strconv.Itoa(rank),
		Title:   title,
		Text:    string(text),
		Ranking: rank,
		Status:  entities.SceneStatusDefault,
	}

	section := entities.Section{
		Code:     "section" + strconv.Itoa(rank),
		Title:    title,
		Synopsis: "",
		Ranking:  rank,
		SectionScenes: []entities.SectionScene{
			{Code: scene.Code, Ranking: 1},
		},
	}

	return scene, section
}

// stripChapterSuffix removes a trailing .txt (any case) from an entry name.
func stripChapterSuffix(name string) string {
	if strings.HasSuffix(strings.ToLower(name), archive.ChapterSuffix) {
		return name[:len(name)-len(archive.ChapterSuffix)]
	}
	return name
}
