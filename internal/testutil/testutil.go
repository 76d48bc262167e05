// Package testutil holds fixtures shared across package tests.
package testutil

import "bookfinder/internal/book"

// SampleBooks returns five books with known titles, authors and years,
// including one with a missing publish year, in a deliberately
// unsorted order.
func SampleBooks() []book.Book {
	return []book.Book{
		{
			ID:               "/works/OL27448W",
			Title:            "The Hobbit",
			Author:           "J. R. R. Tolkien",
			FirstPublishYear: 1937,
			Subjects:         []string{"Fantasy fiction", "Middle Earth"},
		},
		{
			ID:               "/works/OL893415W",
			Title:            "Dune",
			Author:           "Frank Herbert",
			FirstPublishYear: 1965,
			Subjects:         []string{"Science fiction", "Deserts"},
		},
		{
			ID:     "/works/OL16813953W",
			Title:  "Beowulf",
			Author: book.UnknownAuthor,
			// FirstPublishYear deliberately missing.
			Subjects: []string{"Epic poetry"},
		},
		{
			ID:               "/works/OL19923750W",
			Title:            "A Memory Called Empire",
			Author:           "Arkady Martine",
			FirstPublishYear: 2019,
			Subjects:         []string{"Science fiction", "Space opera"},
		},
		{
			ID:               "/works/OL20601328W",
			Title:            "Project Hail Mary",
			Author:           "Andy Weir",
			FirstPublishYear: 2021,
			Subjects:         []string{"Science fiction"},
		},
	}
}
