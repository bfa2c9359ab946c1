package entities

// Block types and alignments understood by the target writing application.
const (
	BlockTypeText  = "text"
	BlockAlignLeft = "left"
)

// SceneStatusDefault is the status code assigned to every produced scene.
// "1" maps to the application's built-in draft/active status.
const SceneStatusDefault = "1"

// Block is the atomic unit of rendered scene content.
type Block struct {
	Type  string `json:"type"`
	Align string `json:"align"`
	Text  string `json:"text"`
}

// BlockContainer wraps an ordered block sequence. A scene's body is one
// container, flattened to a JSON string inside the Scene record.
type BlockContainer struct {
	Blocks []Block `json:"blocks"`
}

// Scene is a single chapter's content record in the backup document.
type Scene struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Text    string `json:"text"`
	Ranking int    `json:"ranking"`
	Status  string `json:"status"`
}

// SectionScene references a scene from within a section.
type SectionScene struct {
	Code    string `json:"code"`
	Ranking int    `json:"ranking"`
}

// Section is a navigational wrapper pairing exactly one scene at a rank.
type Section struct {
	Code          string         `json:"code"`
	Title         string         `json:"title"`
	Synopsis      string         `json:"synopsis"`
	Ranking       int            `json:"ranking"`
	SectionScenes []SectionScene `json:"section_scenes"`
}

// BookProgress records the aggregate word count for a revision.
type BookProgress struct {
	Year      int `json:"year"`
	Month     int `json:"month"`
	Day       int `json:"day"`
	WordCount int `json:"word_count"`
}

// Status is an entry in the revision's status catalog. Scenes reference
// statuses by code.
type Status struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Color   int64  `json:"color"`
	Ranking int    `json:"ranking"`
}

// Revision is a content snapshot. Exactly one revision is populated by
// the conversion pipeline.
type Revision struct {
	Number         int            `json:"number"`
	Date           string         `json:"date"`
	BookProgresses []BookProgress `json:"book_progresses"`
	Statuses       []Status       `json:"statuses"`
	Scenes         []Scene        `json:"scenes"`
	Sections       []Section      `json:"sections"`
}

// Backup is the top-level document envelope consumed by the writing
// application's restore flow.
type Backup struct {
	Version     int        `json:"version"`
	Code        string     `json:"code"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreateDate  string     `json:"create_date"`
	UpdateDate  string     `json:"update_date"`
	Revisions   []Revision `json:"revisions"`
}
