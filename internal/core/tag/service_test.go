package tag_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduyan/tagdex/internal/core/tag"
	"github.com/phamduyan/tagdex/internal/platform/apperr"
)

// mockRepository is a test double for tag.Repository.
// Set only the method fields your test needs.
type mockRepository struct {
	listTags        func(ctx context.Context) ([]tag.Tag, error)
	getTagBySlug    func(ctx context.Context, slug string) (*tag.Tag, error)
	createTag       func(ctx context.Context, t *tag.Tag) error
	deleteTagBySlug func(ctx context.Context, slug string) error
}

func (m *mockRepository) ListTags(ctx context.Context) ([]tag.Tag, error) {
	return m.listTags(ctx)
}
func (m *mockRepository) GetTagBySlug(ctx context.Context, slug string) (*tag.Tag, error) {
	return m.getTagBySlug(ctx, slug)
}
func (m *mockRepository) CreateTag(ctx context.Context, t *tag.Tag) error {
	return m.createTag(ctx, t)
}
func (m *mockRepository) DeleteTagBySlug(ctx context.Context, slug string) error {
	return m.deleteTagBySlug(ctx, slug)
}

// compile-time check: mockRepository must satisfy tag.Repository.
var _ tag.Repository = (*mockRepository)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ---- ListTags --------------------------------------------------------------

func TestService_ListTags_Passthrough(t *testing.T) {
	stored := []tag.Tag{
		{ID: "1", Name: "alpha", Slug: "alpha", CreatedAt: time.Now()},
		{ID: "2", Name: "beta", Slug: "beta", CreatedAt: time.Now()},
	}
	repo := &mockRepository{
		listTags: func(context.Context) ([]tag.Tag, error) { return stored, nil },
	}
	service := tag.NewService(repo, testLogger())

	got, err := service.ListTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, got, "service must not reorder or filter the store result")
}

func TestService_ListTags_Error(t *testing.T) {
	repo := &mockRepository{
		listTags: func(context.Context) ([]tag.Tag, error) {
			return nil, apperr.Internal(errors.New("connection refused"))
		},
	}
	service := tag.NewService(repo, testLogger())

	got, err := service.ListTags(context.Background())

	assert.Nil(t, got)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INTERNAL_ERROR", ae.Code)
}

// ---- CreateTag -------------------------------------------------------------

func TestService_CreateTag(t *testing.T) {
	var saved *tag.Tag
	repo := &mockRepository{
		createTag: func(_ context.Context, created *tag.Tag) error {
			saved = created
			created.CreatedAt = time.Now()
			return nil
		},
	}
	service := tag.NewService(repo, testLogger())

	created, err := service.CreateTag(context.Background(), "Slice of Life")

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Slice of Life", created.Name)
	assert.Equal(t, "slice-of-life", created.Slug, "slug must be derived from the name")
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestService_CreateTag_Validation(t *testing.T) {
	repo := &mockRepository{
		createTag: func(context.Context, *tag.Tag) error {
			t.Fatal("repository must not be called on validation failure")
			return nil
		},
	}
	service := tag.NewService(repo, testLogger())

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too_long", strings.Repeat("a", 101)},
		{"no_alphanumerics", "!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateTag(context.Background(), tt.input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

// ---- GetTagBySlug / DeleteTag ----------------------------------------------

func TestService_GetTagBySlug_InvalidSlug(t *testing.T) {
	service := tag.NewService(&mockRepository{}, testLogger())

	_, err := service.GetTagBySlug(context.Background(), "Not A Slug")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestService_DeleteTag(t *testing.T) {
	var deleted string
	repo := &mockRepository{
		deleteTagBySlug: func(_ context.Context, slug string) error {
			deleted = slug
			return nil
		},
	}
	service := tag.NewService(repo, testLogger())

	require.NoError(t, service.DeleteTag(context.Background(), "action"))
	assert.Equal(t, "action", deleted)
}
