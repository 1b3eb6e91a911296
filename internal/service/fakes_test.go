package service

import (
	"context"
	"fmt"

	"ai-lifecoach-be/internal/entity"
)

// In-memory stand-ins for the remote store. Each fake records its writes and
// can be told to fail at a given call, which is enough to exercise the
// halt-without-rollback commit semantics.

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type fakeThemeRepo struct {
	themes     []*entity.Theme
	created    []*entity.Theme
	findAllErr error
	failByName map[string]error
	failById   map[string]error
	createErr  error
}

func (r *fakeThemeRepo) FindAll(ctx context.Context) ([]*entity.Theme, error) {
	if r.findAllErr != nil {
		return nil, r.findAllErr
	}
	return r.themes, nil
}

func (r *fakeThemeRepo) FindByName(ctx context.Context, name string) (*entity.Theme, error) {
	if err := r.failByName[name]; err != nil {
		return nil, err
	}
	for _, t := range r.themes {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeThemeRepo) FindById(ctx context.Context, id string) (*entity.Theme, error) {
	if err := r.failById[id]; err != nil {
		return nil, err
	}
	for _, t := range r.themes {
		if t.Id == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeThemeRepo) Create(ctx context.Context, theme *entity.Theme) error {
	if r.createErr != nil {
		return r.createErr
	}
	theme.Id = fmt.Sprintf("theme-%d", len(r.themes)+1)
	r.themes = append(r.themes, theme)
	r.created = append(r.created, theme)
	return nil
}

type fakeReflectionRepo struct {
	recent    []*entity.Reflection
	created   []*entity.Reflection
	recentErr error
	createErr error
}

func (r *fakeReflectionRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Reflection, error) {
	if r.recentErr != nil {
		return nil, r.recentErr
	}
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func (r *fakeReflectionRepo) Create(ctx context.Context, reflection *entity.Reflection) error {
	if r.createErr != nil {
		return r.createErr
	}
	reflection.Id = fmt.Sprintf("reflection-%d", len(r.created)+1)
	r.created = append(r.created, reflection)
	return nil
}

type fakeActionItemRepo struct {
	created []*entity.ActionItem
	failAt  int // 1-based call index that errors, 0 means never
	calls   int
}

func (r *fakeActionItemRepo) Create(ctx context.Context, item *entity.ActionItem) error {
	r.calls++
	if r.failAt != 0 && r.calls == r.failAt {
		return fmt.Errorf("remote rejected action item")
	}
	item.Id = fmt.Sprintf("item-%d", len(r.created)+1)
	r.created = append(r.created, item)
	return nil
}

type fakeReadingRepo struct {
	created []*entity.Reading
	failAt  int
	calls   int
}

func (r *fakeReadingRepo) Create(ctx context.Context, reading *entity.Reading) error {
	r.calls++
	if r.failAt != 0 && r.calls == r.failAt {
		return fmt.Errorf("remote rejected reading")
	}
	reading.Id = fmt.Sprintf("reading-%d", len(r.created)+1)
	r.created = append(r.created, reading)
	return nil
}
