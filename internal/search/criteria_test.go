package search

import (
	"testing"

	"bookfinder/internal/book"

	"github.com/stretchr/testify/assert"
)

func TestCriteriaEmpty(t *testing.T) {
	assert.True(t, Criteria{}.Empty())
	assert.True(t, Criteria{Text: "   \t"}.Empty())
	assert.False(t, Criteria{Text: "dune"}.Empty())
	assert.False(t, Criteria{Genre: "Fantasy"}.Empty())
	assert.False(t, Criteria{Text: " ", Genre: "Fantasy"}.Empty())
}

func TestCriteriaValidate(t *testing.T) {
	assert.NoError(t, Criteria{}.Validate(), "zero values default to title/relevance")
	assert.NoError(t, Criteria{Text: "dune", Mode: ModeAuthor, SortBy: book.SortYearDesc}.Validate())

	assert.Error(t, Criteria{Mode: "isbn"}.Validate())
	assert.Error(t, Criteria{SortBy: "rating-asc"}.Validate())
}
