package usecases

import (
	"context"
	"io"
	"time"

	"turnero/internal/domain/turno"
	"turnero/internal/shared/logger"
)

type mockTurnoRepository struct {
	SaveFunc        func(ctx context.Context, t *turno.Turno) error
	UpdateFunc      func(ctx context.Context, t *turno.Turno) error
	DeleteFunc      func(ctx context.Context, id uint) error
	GetByIDFunc     func(ctx context.Context, id uint) (*turno.Turno, error)
	GetByUserIDFunc func(ctx context.Context, userID string) (*turno.Turno, error)
	ListFunc        func(ctx context.Context) ([]*turno.Turno, error)
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *mockTurnoRepository) Save(ctx context.Context, t *turno.Turno) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTurnoRepository) Update(ctx context.Context, t *turno.Turno) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTurnoRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTurnoRepository) GetByID(ctx context.Context, id uint) (*turno.Turno, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTurnoRepository) GetByUserID(ctx context.Context, userID string) (*turno.Turno, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTurnoRepository) List(ctx context.Context) ([]*turno.Turno, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTurnoRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockLabelAllocator struct {
	NextLabelFunc func(ctx context.Context) (string, error)
}

func (m *mockLabelAllocator) NextLabel(ctx context.Context) (string, error) {
	if m.NextLabelFunc != nil {
		return m.NextLabelFunc(ctx)
	}
	return "T-0001", nil
}

// mockTxManager runs the function directly; unit tests do not exercise
// physical transactions.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockRenderer struct {
	RenderFunc func(t *turno.Turno, renderedAt time.Time, w io.Writer) error
}

func (m *mockRenderer) Render(t *turno.Turno, renderedAt time.Time, w io.Writer) error {
	if m.RenderFunc != nil {
		return m.RenderFunc(t, renderedAt, w)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// newStoredTurno builds a persisted-looking entity for mock returns.
func newStoredTurno(id uint, userID, name, request, label string, createdAt time.Time) *turno.Turno {
	t, err := turno.ReconstructTurno(id, userID, name, request, label, createdAt, createdAt)
	if err != nil {
		panic(err)
	}
	return t
}
