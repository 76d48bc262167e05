package search

import (
	"strings"

	"bookfinder/internal/book"

	"github.com/go-playground/validator/v10"
)

// Query modes. Title mode uses the general search endpoint, author mode
// the author-filtered one.
const (
	ModeTitle  = "title"
	ModeAuthor = "author"
)

// Criteria is the tuple of user-supplied search parameters.
type Criteria struct {
	Text   string       `validate:"max=512"`
	Mode   string       `validate:"oneof=title author"`
	Genre  string       `validate:"max=128"`
	SortBy book.SortKey `validate:"oneof=relevance title-asc title-desc year-asc year-desc author-asc author-desc"`
}

var validate = validator.New()

// Validate checks the criteria after defaulting zero-valued mode and
// sort key, so partially built criteria are accepted.
func (c Criteria) Validate() error {
	return validate.Struct(c.normalized())
}

// Empty reports whether the criteria would trigger a degenerate
// search-everything query: whitespace-only text and no genre.
func (c Criteria) Empty() bool {
	return strings.TrimSpace(c.Text) == "" && c.Genre == ""
}

func (c Criteria) normalized() Criteria {
	if c.Mode == "" {
		c.Mode = ModeTitle
	}
	if c.SortBy == "" {
		c.SortBy = book.SortRelevance
	}
	return c
}
