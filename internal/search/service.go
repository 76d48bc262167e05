// Package search translates user criteria into catalog queries and
// normalizes the heterogeneous response shapes into Book records.
package search

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"bookfinder/internal/book"
	"bookfinder/internal/platform/openlibrary"
)

// Catalog is the slice of the Open Library client the service depends on.
type Catalog interface {
	Search(ctx context.Context, query string, limit int) (*openlibrary.SearchResponse, error)
	SearchByAuthor(ctx context.Context, author string, limit int) (*openlibrary.SearchResponse, error)
	BrowseSubject(ctx context.Context, subject string, limit int) (*openlibrary.SubjectResponse, error)
	CoverURL(coverID int64, size string) string
}

// The two endpoint shapes return differently sized subject lists, so
// they are truncated to different display lengths.
const (
	searchSubjectsMax  = 5
	subjectSubjectsMax = 3
)

const defaultLimit = 20

// TrendingSubjects is the pool a trending request samples from.
var TrendingSubjects = []string{"fiction", "science", "history", "fantasy", "romance"}

// PopularSubjects returns the curated genre list offered as filters.
func PopularSubjects() []string {
	return []string{
		"Fiction", "Science", "History", "Fantasy", "Romance",
		"Mystery", "Thriller", "Biography", "Science Fiction", "Horror",
		"Poetry", "Self-Help", "Travel", "Art", "Philosophy",
	}
}

// Service resolves criteria into exactly one outbound catalog query and
// applies client-side filtering and sorting to the result.
type Service struct {
	catalog Catalog
	limit   int
}

func NewService(catalog Catalog, limit int) *Service {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Service{catalog: catalog, limit: limit}
}

// Query returns the normalized, sorted result set for c.
//
// Routing precedence:
//  1. genre set and text empty: subject browse endpoint;
//  2. else author mode: author search endpoint;
//  3. else: general search endpoint;
//  4. genre and text both set: keep only books whose subjects contain
//     genre case-insensitively as a substring;
//  5. non-relevance sort keys apply the comparator; relevance keeps the
//     catalog's ordering.
//
// Empty criteria short-circuit to an empty result without touching the
// network. Failures are returned to the caller, which maps them to the
// empty-list default.
func (s *Service) Query(ctx context.Context, c Criteria) ([]book.Book, error) {
	c = c.normalized()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid criteria: %w", err)
	}
	if c.Empty() {
		return nil, nil
	}

	var (
		books []book.Book
		err   error
	)
	text := strings.TrimSpace(c.Text)
	switch {
	case c.Genre != "" && text == "":
		books, err = s.browseSubject(ctx, c.Genre)
	case c.Mode == ModeAuthor:
		books, err = s.searchByAuthor(ctx, text)
	default:
		books, err = s.search(ctx, text)
	}
	if err != nil {
		return nil, err
	}

	if c.Genre != "" && text != "" {
		books = filterByGenre(books, c.Genre)
	}
	if c.SortBy != book.SortRelevance {
		books = book.SortBooks(books, c.SortBy)
	}
	return books, nil
}

// Trending browses a randomly chosen subject from TrendingSubjects as a
// proxy for popular books.
func (s *Service) Trending(ctx context.Context) ([]book.Book, error) {
	subject := TrendingSubjects[rand.Intn(len(TrendingSubjects))]
	return s.browseSubject(ctx, subject)
}

func (s *Service) search(ctx context.Context, text string) ([]book.Book, error) {
	res, err := s.catalog.Search(ctx, text, s.limit)
	if err != nil {
		return nil, err
	}
	books := make([]book.Book, 0, len(res.Docs))
	for _, d := range res.Docs {
		// General search results carry the edition passthrough fields.
		books = append(books, s.fromSearchDoc(d, true))
	}
	return books, nil
}

func (s *Service) searchByAuthor(ctx context.Context, author string) ([]book.Book, error) {
	res, err := s.catalog.SearchByAuthor(ctx, author, s.limit)
	if err != nil {
		return nil, err
	}
	books := make([]book.Book, 0, len(res.Docs))
	for _, d := range res.Docs {
		books = append(books, s.fromSearchDoc(d, false))
	}
	return books, nil
}

func (s *Service) browseSubject(ctx context.Context, subject string) ([]book.Book, error) {
	res, err := s.catalog.BrowseSubject(ctx, subject, s.limit)
	if err != nil {
		return nil, err
	}
	books := make([]book.Book, 0, len(res.Works))
	for _, w := range res.Works {
		books = append(books, s.fromSubjectWork(w))
	}
	return books, nil
}

func (s *Service) fromSearchDoc(d openlibrary.SearchDoc, passthrough bool) book.Book {
	b := book.Book{
		ID:               d.Key,
		Title:            d.Title,
		Author:           book.UnknownAuthor,
		CoverID:          d.CoverID,
		CoverURL:         s.catalog.CoverURL(d.CoverID, ""),
		FirstPublishYear: d.FirstPublishYear,
		Subjects:         truncateSubjects(d.Subjects, searchSubjectsMax),
	}
	if len(d.AuthorNames) > 0 {
		b.Author = d.AuthorNames[0]
	}
	if passthrough {
		if len(d.AuthorKeys) > 0 {
			b.AuthorKey = d.AuthorKeys[0]
		}
		if len(d.ISBN) > 0 {
			b.ISBN = d.ISBN[0]
		}
		if len(d.Publisher) > 0 {
			b.Publisher = d.Publisher[0]
		}
	}
	return b
}

func (s *Service) fromSubjectWork(w openlibrary.SubjectWork) book.Book {
	b := book.Book{
		ID:               w.Key,
		Title:            w.Title,
		Author:           book.UnknownAuthor,
		CoverID:          w.CoverID,
		CoverURL:         s.catalog.CoverURL(w.CoverID, ""),
		FirstPublishYear: w.FirstPublishYear,
		Subjects:         truncateSubjects(w.Subjects, subjectSubjectsMax),
	}
	if len(w.Authors) > 0 && w.Authors[0].Name != "" {
		b.Author = w.Authors[0].Name
	}
	return b
}

func filterByGenre(books []book.Book, genre string) []book.Book {
	needle := strings.ToLower(genre)
	filtered := make([]book.Book, 0, len(books))
	for _, b := range books {
		for _, subject := range b.Subjects {
			if strings.Contains(strings.ToLower(subject), needle) {
				filtered = append(filtered, b)
				break
			}
		}
	}
	return filtered
}

func truncateSubjects(subjects []string, max int) []string {
	if len(subjects) > max {
		subjects = subjects[:max]
	}
	return append([]string(nil), subjects...)
}
