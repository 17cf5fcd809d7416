package store

import "strings"

// DefaultPerPage is used when perPage is absent, not a number or below 1.
const DefaultPerPage = 5

// ListQuery narrows and paginates a list call.
type ListQuery struct {
	Search  string
	Page    int
	PerPage int
}

// Normalize floors Page at 1 and defaults PerPage.
func (q ListQuery) Normalize() ListQuery {
	q.Search = strings.TrimSpace(q.Search)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	return q
}

// Offset is the number of rows to skip. Call on a normalized query.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// Pages is ceil(total / PerPage). Call on a normalized query.
func (q ListQuery) Pages(total int) int {
	return (total + q.PerPage - 1) / q.PerPage
}

// LikeEscape is the escape character used by LikePattern.
const LikeEscape = `\`

// LikePattern turns a search term into a substring pattern for
// "LIKE ? ESCAPE '\'". Wildcards in the term match literally. An empty term
// matches everything.
func LikePattern(search string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(search)) + "%"
}
