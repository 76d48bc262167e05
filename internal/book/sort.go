package book

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the comparator applied to a result set.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortTitleAsc   SortKey = "title-asc"
	SortTitleDesc  SortKey = "title-desc"
	SortYearAsc    SortKey = "year-asc"
	SortYearDesc   SortKey = "year-desc"
	SortAuthorAsc  SortKey = "author-asc"
	SortAuthorDesc SortKey = "author-desc"
)

// Valid reports whether k is one of the supported sort keys.
func (k SortKey) Valid() bool {
	switch k {
	case SortRelevance, SortTitleAsc, SortTitleDesc, SortYearAsc, SortYearDesc, SortAuthorAsc, SortAuthorDesc:
		return true
	}
	return false
}

// SortBooks returns a sorted copy of books. Title and author comparisons
// are locale-aware; year comparison is numeric with a missing year
// sorting as 0 (oldest). SortRelevance and unknown keys preserve the
// input order. The sort is stable, and the input slice is not mutated.
func SortBooks(books []Book, key SortKey) []Book {
	sorted := make([]Book, len(books))
	copy(sorted, books)

	if key == SortRelevance || key == "" {
		return sorted
	}

	// Collators are not safe for concurrent use, so build one per call.
	col := collate.New(language.English)

	var less func(a, b Book) bool
	switch key {
	case SortTitleAsc:
		less = func(a, b Book) bool { return col.CompareString(a.Title, b.Title) < 0 }
	case SortTitleDesc:
		less = func(a, b Book) bool { return col.CompareString(a.Title, b.Title) > 0 }
	case SortAuthorAsc:
		less = func(a, b Book) bool { return col.CompareString(a.Author, b.Author) < 0 }
	case SortAuthorDesc:
		less = func(a, b Book) bool { return col.CompareString(a.Author, b.Author) > 0 }
	case SortYearAsc:
		less = func(a, b Book) bool { return a.FirstPublishYear < b.FirstPublishYear }
	case SortYearDesc:
		less = func(a, b Book) bool { return a.FirstPublishYear > b.FirstPublishYear }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
