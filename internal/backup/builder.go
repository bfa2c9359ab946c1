package backup

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/s4daharu/novel-apps-sub001/internal/entities"
)

const (
	// backupVersion is the envelope version the target application expects.
	backupVersion = 4

	// defaultStatusColor is the ARGB color of the built-in draft status.
	defaultStatusColor = -2697255
)

// NewBackup returns the canonical empty-project envelope: one revision
// with empty scene and section lists and a progress record with a zero
// word count. When code is blank an opaque identifier is generated.
// Document-level fields unrelated to chapters are fixed here.
func NewBackup(title, description, code string) (*entities.Backup, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	if code == "" {
		code = uuid.NewString()
	}

	now := time.Now()
	date := now.Format(time.RFC3339)

	return &entities.Backup{
		Version:     backupVersion,
		Code:        code,
		Title:       title,
		Description: description,
		CreateDate:  date,
		UpdateDate:  date,
		Revisions: []entities.Revision{
			{
				Number: 1,
				Date:   date,
				BookProgresses: []entities.BookProgress{
					{
						Year:      now.Year(),
						Month:     int(now.Month()),
						Day:       now.Day(),
						WordCount: 0,
					},
				},
				Statuses: []entities.Status{
					{
						Code:    entities.SceneStatusDefault,
						Title:   "Draft",
						Color:   defaultStatusColor,
						Ranking: 1,
					},
				},
				Scenes:   []entities.Scene{},
				Sections: []entities.Section{},
			},
		},
	}, nil
}
