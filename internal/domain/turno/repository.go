package turno

import "context"

type Repository interface {
	Save(ctx context.Context, t *Turno) error
	Update(ctx context.Context, t *Turno) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Turno, error)
	GetByUserID(ctx context.Context, userID string) (*Turno, error)
	// List returns all records ordered by id descending (most recent first).
	List(ctx context.Context) ([]*Turno, error)
	Count(ctx context.Context) (int64, error)
}

// LabelAllocator mints the next ticket label. Implementations must produce
// unique, strictly increasing labels even under concurrent creation.
type LabelAllocator interface {
	NextLabel(ctx context.Context) (string, error)
}
