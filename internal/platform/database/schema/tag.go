package schema

// TagTable represents the 'tag' table
type TagTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// RefTag is the schema definition for tag
var RefTag = TagTable{
	Table:     "tag",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

func (t TagTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.CreatedAt}
}
