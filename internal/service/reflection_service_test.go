package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-lifecoach-be/internal/dto"
	"ai-lifecoach-be/internal/entity"
	"ai-lifecoach-be/internal/repository/contract"
	"ai-lifecoach-be/internal/repository/memory"
	"ai-lifecoach-be/pkg/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reflectionFixture struct {
	svc            IReflectionService
	themeRepo      *fakeThemeRepo
	reflectionRepo *fakeReflectionRepo
	actionItemRepo *fakeActionItemRepo
	readingRepo    *fakeReadingRepo
	draftRepo      contract.DraftRepository
}

func newReflectionFixture() *reflectionFixture {
	f := &reflectionFixture{
		themeRepo:      &fakeThemeRepo{},
		reflectionRepo: &fakeReflectionRepo{},
		actionItemRepo: &fakeActionItemRepo{},
		readingRepo:    &fakeReadingRepo{},
		draftRepo:      memory.NewDraftRepository(),
	}
	themeSvc := NewThemeService(f.themeRepo, noopLogger{})
	f.svc = NewReflectionService(
		f.reflectionRepo,
		f.actionItemRepo,
		f.readingRepo,
		f.draftRepo,
		themeSvc,
		noopLogger{},
	)
	return f
}

func TestGetRecentResolvesThemeNames(t *testing.T) {
	f := newReflectionFixture()
	f.themeRepo.themes = []*entity.Theme{
		{Id: "theme-1", Name: "Work"},
		{Id: "theme-2", Name: "Health"},
	}
	f.reflectionRepo.recent = []*entity.Reflection{
		{Id: "r1", Title: "Morning", Date: "2025-03-01", ThemeIds: []string{"theme-1", "theme-2"}},
		{Id: "r2", Title: "", Date: "2025-02-28"},
	}

	res, err := f.svc.GetRecent(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Reflections, 2)
	assert.Equal(t, "Work, Health", res.Reflections[0].Themes)
	assert.Equal(t, "Untitled", res.Reflections[1].Title)
	assert.Empty(t, res.Warnings)
}

func TestGetRecentThemeFailureIsWarning(t *testing.T) {
	f := newReflectionFixture()
	f.themeRepo.failById = map[string]error{"theme-1": errors.New("boom")}
	f.reflectionRepo.recent = []*entity.Reflection{
		{Id: "r1", Title: "Morning", ThemeIds: []string{"theme-1"}},
	}

	res, err := f.svc.GetRecent(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Reflections, 1)
	assert.Empty(t, res.Reflections[0].Themes)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "theme-1")
}

func TestParsePartitionsThemes(t *testing.T) {
	f := newReflectionFixture()
	f.themeRepo.themes = []*entity.Theme{
		{Id: "theme-1", Name: "Work"},
		{Id: "theme-2", Name: "Health"},
	}

	res, err := f.svc.Parse(context.Background(), &dto.ParseReflectionRequest{
		RawText: "Session Title: Test\n\nTheme: Work, Gardening",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.DraftId)
	assert.Equal(t, "Test", res.Parsed.Title)
	assert.Equal(t, []string{"Work"}, res.KnownThemes)
	assert.Equal(t, []string{"Gardening"}, res.NewThemes)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	f := newReflectionFixture()

	_, err := f.svc.Parse(context.Background(), &dto.ParseReflectionRequest{
		RawText: `{"Session Title": "broken"`,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ingest.ErrInvalidJSON))
}

func TestCommitCreatesReflectionWithDependents(t *testing.T) {
	f := newReflectionFixture()
	f.themeRepo.themes = []*entity.Theme{{Id: "theme-1", Name: "Work"}}

	parsed, err := f.svc.Parse(context.Background(), &dto.ParseReflectionRequest{
		RawText: "Session Title: Busy week\n\n" +
			"Session Date: 2025-03-01\n\n" +
			"Theme: Work, Gardening\n\n" +
			"Journal Action Items:\n- Block focus time\n- Water the plants\n\n" +
			"Journal Readings:\n- Deep Work\n",
	})
	require.NoError(t, err)

	res, err := f.svc.Commit(context.Background(), &dto.CommitReflectionRequest{
		DraftId: parsed.DraftId,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Id)
	assert.Len(t, res.ActionItemIds, 2)
	assert.Len(t, res.ReadingIds, 1)

	// "Gardening" was new and gets created during commit.
	require.Len(t, f.themeRepo.created, 1)
	assert.Equal(t, "Gardening", f.themeRepo.created[0].Name)

	require.Len(t, f.reflectionRepo.created, 1)
	reflection := f.reflectionRepo.created[0]
	assert.Equal(t, "Busy week", reflection.Title)
	assert.Len(t, reflection.ThemeIds, 2)

	require.Len(t, f.actionItemRepo.created, 2)
	item := f.actionItemRepo.created[0]
	assert.Equal(t, "Block focus time", item.Name)
	assert.Equal(t, reflection.Id, item.ReflectionId)
	assert.Equal(t, reflection.ThemeIds, item.ThemeIds)

	dueDate, err := time.Parse("2006-01-02", item.DueDate)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), dueDate, 48*time.Hour)

	require.Len(t, f.readingRepo.created, 1)
	assert.Equal(t, "Deep Work", f.readingRepo.created[0].Name)
	assert.Equal(t, reflection.Id, f.readingRepo.created[0].ReflectionId)
}

func TestCommitConsumesDraft(t *testing.T) {
	f := newReflectionFixture()

	parsed, err := f.svc.Parse(context.Background(), &dto.ParseReflectionRequest{
		RawText: "Session Title: Once\n",
	})
	require.NoError(t, err)

	_, err = f.svc.Commit(context.Background(), &dto.CommitReflectionRequest{DraftId: parsed.DraftId})
	require.NoError(t, err)

	_, err = f.svc.Commit(context.Background(), &dto.CommitReflectionRequest{DraftId: parsed.DraftId})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestCommitUnknownDraft(t *testing.T) {
	f := newReflectionFixture()

	_, err := f.svc.Commit(context.Background(), &dto.CommitReflectionRequest{DraftId: "missing"})

	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestCommitHonorsEditedThemes(t *testing.T) {
	f := newReflectionFixture()

	parsed, err := f.svc.Parse(context.Background(), &dto.ParseReflectionRequest{
		RawText: "Session Title: Edited\n\nTheme: Work\n",
	})
	require.NoError(t, err)

	_, err = f.svc.Commit(context.Background(), &dto.CommitReflectionRequest{
		DraftId: parsed.DraftId,
		Themes:  []string{"Sleep"},
	})

	require.NoError(t, err)
	require.Len(t, f.themeRepo.created, 1)
	assert.Equal(t, "Sleep", f.themeRepo.created[0].Name)
}

func TestCommitHaltsWithoutRollback(t *testing.T) {
	f := newReflectionFixture()
	f.actionItemRepo.failAt = 2

	parsed, err := f.svc.Parse(context.Background(), &dto.ParseReflectionRequest{
		RawText: "Session Title: Partial\n\n" +
			"Journal Action Items:\n- First\n- Second\n\n" +
			"Journal Readings:\n- Never Created\n",
	})
	require.NoError(t, err)

	_, err = f.svc.Commit(context.Background(), &dto.CommitReflectionRequest{DraftId: parsed.DraftId})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `create action item "Second"`)

	// The reflection and the first action item stay; readings were never
	// attempted and the draft survives for a retry.
	assert.Len(t, f.reflectionRepo.created, 1)
	assert.Len(t, f.actionItemRepo.created, 1)
	assert.Empty(t, f.readingRepo.created)

	_, found := f.draftRepo.Get(parsed.DraftId)
	assert.True(t, found)
}

func TestCommitStopsBeforeReflectionOnThemeFailure(t *testing.T) {
	f := newReflectionFixture()
	f.themeRepo.createErr = errors.New("boom")

	parsed, err := f.svc.Parse(context.Background(), &dto.ParseReflectionRequest{
		RawText: "Session Title: Blocked\n\nTheme: Gardening\n",
	})
	require.NoError(t, err)

	_, err = f.svc.Commit(context.Background(), &dto.CommitReflectionRequest{DraftId: parsed.DraftId})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `create theme "Gardening"`)
	assert.Empty(t, f.reflectionRepo.created)
}
