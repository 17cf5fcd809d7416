package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/casais/internal/casais/media"
	"github.com/aussiebroadwan/casais/internal/casais/service"
	"github.com/aussiebroadwan/casais/pkg/casaissdk"
	"github.com/aussiebroadwan/casais/pkg/slogx"
)

// errorSet names the wire errors one resource answers with.
type errorSet struct {
	notFound *casaissdk.APIError
	empty    *casaissdk.APIError
	internal *casaissdk.APIError
}

var (
	casalErrors = errorSet{
		notFound: casaissdk.ErrCasalNotFound,
		empty:    casaissdk.ErrNoCasais,
		internal: casaissdk.ErrServer,
	}
	eventoErrors = errorSet{
		notFound: casaissdk.ErrEventoNotFound,
		empty:    casaissdk.ErrNoEventos,
		internal: casaissdk.ErrEventos,
	}
)

// with returns a copy of s using internal as the 500 message.
func (s errorSet) with(internal *casaissdk.APIError) errorSet {
	s.internal = internal
	return s
}

// write maps err onto the wire. Anything unrecognised is logged and
// answered with the generic 500.
func (s errorSet) write(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *casaissdk.APIError
	switch {
	case errors.As(err, &apiErr):
		apiErr.WriteError(w)
	case errors.Is(err, media.ErrUnsupportedType):
		casaissdk.ErrInvalidImage.WriteError(w)
	case errors.Is(err, service.ErrInvalidInput):
		casaissdk.ErrInvalidBody.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		s.notFound.WriteError(w)
	case errors.Is(err, service.ErrNoRecords):
		s.empty.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		s.internal.WriteError(w)
	}
}
