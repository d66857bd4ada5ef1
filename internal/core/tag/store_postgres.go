package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/phamduyan/tagdex/internal/platform/database/schema"
	"github.com/phamduyan/tagdex/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTags(context context.Context) ([]Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.CreatedAt,
		schema.RefTag.Table, schema.RefTag.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	// Non-nil so an empty table serializes as [] rather than null.
	tags := make([]Tag, 0)

	for rows.Next() {
		t := Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tags_rows")
	}

	return tags, nil
}

func (repository *PostgresRepository) GetTagBySlug(context context.Context, slug string) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.CreatedAt,
		schema.RefTag.Table, schema.RefTag.Slug)

	t := &Tag{}
	err := repository.db.QueryRow(context, query, slug).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_slug")
	}

	return t, nil
}

func (repository *PostgresRepository) CreateTag(context context.Context, tag *Tag) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.RefTag.Table,
		schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug,
		schema.RefTag.CreatedAt)

	err := repository.db.QueryRow(context, query, tag.ID, tag.Name, tag.Slug).Scan(&tag.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_tag")
	}

	return nil
}

func (repository *PostgresRepository) DeleteTagBySlug(context context.Context, slug string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefTag.Table, schema.RefTag.Slug)

	commandTag, err := repository.db.Exec(context, query, slug)
	if err != nil {
		return dberr.Wrap(err, "delete_tag_by_slug")
	}
	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
