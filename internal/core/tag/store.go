package tag

import "context"

type Repository interface {
	// ListTags returns all tags ordered ascending by name.
	// The ordering collation is whatever the store's default provides.
	ListTags(context context.Context) ([]Tag, error)
	GetTagBySlug(context context.Context, slug string) (*Tag, error)
	CreateTag(context context.Context, tag *Tag) error
	DeleteTagBySlug(context context.Context, slug string) error
}
