package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/casais/internal/casais/store"
	"github.com/aussiebroadwan/casais/pkg/casaissdk"
)

// maxJSONBytes bounds every JSON request body.
const maxJSONBytes = 1 << 20

// decodeJSON strictly decodes a single JSON object into dst. Unknown fields
// and trailing data are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return casaissdk.ErrInvalidBody
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return casaissdk.ErrInvalidBody
	}
	return nil
}

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

func isForm(r *http.Request) bool {
	switch mediaType(r) {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return true
	}
	return false
}

// decodeBody accepts JSON or a url-encoded/multipart form. For forms, the
// named fields are copied with set.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, set func(form func(string) string)) error {
	if !isForm(r) {
		return decodeJSON(w, r, dst)
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := r.ParseMultipartForm(maxJSONBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return casaissdk.ErrInvalidBody
	}
	set(r.FormValue)
	return nil
}

// listQuery reads ?search, ?page and ?perPage. Values that do not start
// with a number fall back to the defaults.
func listQuery(r *http.Request) store.ListQuery {
	q := r.URL.Query()
	return store.ListQuery{
		Search:  q.Get("search"),
		Page:    leadingInt(q.Get("page")),
		PerPage: leadingInt(q.Get("perPage")),
	}.Normalize()
}

// leadingInt parses the integer prefix of s ("12abc" -> 12) and returns 0
// when there is none.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		digits++
		if n > 1<<20 {
			break
		}
	}
	if digits == 0 {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
