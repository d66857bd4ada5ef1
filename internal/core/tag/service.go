package tag

import (
	"context"
	"log/slog"

	"github.com/phamduyan/tagdex/internal/platform/constants"
	"github.com/phamduyan/tagdex/internal/platform/validate"
	"github.com/phamduyan/tagdex/pkg/slug"
	"github.com/phamduyan/tagdex/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListTags returns every tag, ordered ascending by name.
// The ordering is owned by the store; the service adds no re-sorting.
func (service *Service) ListTags(context context.Context) ([]Tag, error) {
	return service.repo.ListTags(context)
}

func (service *Service) GetTagBySlug(context context.Context, tagSlug string) (*Tag, error) {
	if err := (&validate.Validator{}).Slug("slug", tagSlug).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetTagBySlug(context, tagSlug)
}

// CreateTag creates a tag from a display name. The slug is derived from the
// name, so two names that normalize to the same slug conflict.
func (service *Service) CreateTag(context context.Context, name string) (*Tag, error) {
	if err := (&validate.Validator{}).
		Required("name", name).
		MaxLen("name", name, constants.MaxTagNameLength).
		Err(); err != nil {
		return nil, err
	}

	tagSlug := slug.From(name)
	if tagSlug == "" {
		return nil, validate.RequiredError("name", "Name must contain at least one letter or digit")
	}

	tag := &Tag{
		ID:   uuidv7.New(),
		Name: name,
		Slug: tagSlug,
	}

	if err := service.repo.CreateTag(context, tag); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "tag_created",
		slog.String("tag_id", tag.ID),
		slog.String("slug", tag.Slug),
	)

	return tag, nil
}

func (service *Service) DeleteTag(context context.Context, tagSlug string) error {
	if err := (&validate.Validator{}).Slug("slug", tagSlug).Err(); err != nil {
		return err
	}

	if err := service.repo.DeleteTagBySlug(context, tagSlug); err != nil {
		return err
	}

	service.logger.InfoContext(context, "tag_deleted", slog.String("slug", tagSlug))
	return nil
}
