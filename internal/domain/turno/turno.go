package turno

import (
	"fmt"
	"time"
)

const (
	maxUserIDLength  = 64
	maxNameLength    = 200
	maxRequestLength = 5000
)

// Turno is a queueing record tying a user identity to a sequential ticket
// label and a free-text request. The label and creation time are assigned
// once and never change.
type Turno struct {
	id        uint
	userID    string
	name      string
	request   string
	label     string
	createdAt time.Time
	updatedAt time.Time
}

func NewTurno(userID, name, request string) (*Turno, error) {
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(userID) > maxUserIDLength {
		return nil, fmt.Errorf("user ID exceeds maximum length of %d characters", maxUserIDLength)
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	if len(request) == 0 {
		return nil, fmt.Errorf("request is required")
	}
	if len(request) > maxRequestLength {
		return nil, fmt.Errorf("request exceeds maximum length of %d characters", maxRequestLength)
	}

	now := time.Now()

	return &Turno{
		userID:    userID,
		name:      name,
		request:   request,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTurno(
	id uint,
	userID string,
	name string,
	request string,
	label string,
	createdAt, updatedAt time.Time,
) (*Turno, error) {
	if id == 0 {
		return nil, fmt.Errorf("turno ID cannot be zero")
	}
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(label) == 0 {
		return nil, fmt.Errorf("ticket label is required")
	}

	return &Turno{
		id:        id,
		userID:    userID,
		name:      name,
		request:   request,
		label:     label,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Turno) ID() uint {
	return t.id
}

func (t *Turno) UserID() string {
	return t.userID
}

func (t *Turno) Name() string {
	return t.name
}

func (t *Turno) Request() string {
	return t.request
}

func (t *Turno) Label() string {
	return t.label
}

func (t *Turno) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Turno) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Turno) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("turno ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("turno ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetLabel assigns the ticket label. A label is minted exactly once at
// creation; reassignment is an error.
func (t *Turno) SetLabel(label string) error {
	if len(t.label) > 0 {
		return fmt.Errorf("ticket label is already set")
	}
	if len(label) == 0 {
		return fmt.Errorf("ticket label cannot be empty")
	}
	t.label = label
	return nil
}

// UpdateDetails changes the mutable fields. The label and creation time are
// left untouched.
func (t *Turno) UpdateDetails(name, request string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	if len(request) == 0 {
		return fmt.Errorf("request is required")
	}
	if len(request) > maxRequestLength {
		return fmt.Errorf("request exceeds maximum length of %d characters", maxRequestLength)
	}

	t.name = name
	t.request = request
	t.updatedAt = time.Now()

	return nil
}
