package book

// UnknownAuthor is the sentinel used when the catalog omits author data.
const UnknownAuthor = "Unknown Author"

// Book is the normalized record produced by the catalog query service.
// ID is the opaque work key assigned by the catalog and is stable across
// calls for the same work. ISBN, Publisher and AuthorKey are passthrough
// fields carried only when the source provides them.
type Book struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Author           string   `json:"author"`
	CoverID          int64    `json:"cover_id,omitempty"`
	CoverURL         string   `json:"cover_url,omitempty"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
	ISBN             string   `json:"isbn,omitempty"`
	Publisher        string   `json:"publisher,omitempty"`
	AuthorKey        string   `json:"author_key,omitempty"`
	Subjects         []string `json:"subjects,omitempty"`
}
