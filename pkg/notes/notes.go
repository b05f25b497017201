// Package notes defines the note domain type, the interfaces the outline
// core expects from its external collaborators (persistence and the text
// editor widget), and the navigator that connects an outline click to an
// editor jump. Persistence and the editor themselves live outside this
// module; only their contracts are defined here.
package notes

import (
	"context"
	"time"
)

// Note is one user note. Content is the full UTF-8 markdown text.
type Note struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is the persistence contract: note CRUD keyed by owner.
// Implementations live outside this module.
type Store interface {
	Create(ctx context.Context, note Note) (Note, error)
	Get(ctx context.Context, owner, id string) (Note, error)
	Update(ctx context.Context, note Note) (Note, error)
	Delete(ctx context.Context, owner, id string) error
	List(ctx context.Context, owner string) ([]Note, error)
}

// Editor is the text-editing widget's navigation contract. The editor
// validates the line against its own line count and no-ops when the
// requested line is out of range.
type Editor interface {
	ScrollToLine(line int)
}
