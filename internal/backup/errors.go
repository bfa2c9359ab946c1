package backup

import "errors"

// ErrNoChapters indicates the archive yielded no chapters and no extra
// empty chapters were requested.
var ErrNoChapters = errors.New("no chapters found: the archive contains no .txt entries and no extra chapters were requested")

// ErrMissingTitle indicates an empty project title.
var ErrMissingTitle = errors.New("project title is required")
