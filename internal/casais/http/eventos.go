package http

import (
	"net/http"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/service"
	"github.com/aussiebroadwan/casais/pkg/casaissdk"
	"github.com/aussiebroadwan/casais/pkg/httpx"
)

// EventosHandler serves the shared calendar. Writes are mounted behind the
// leader role in the router.
type EventosHandler struct {
	EventoService *service.EventoService
}

// HandleList godoc
//
//	@Summary	List eventos
//	@Tags		Eventos
//	@Produce	json
//	@Param		search	query		string	false	"substring of titulo"
//	@Param		page	query		int		false	"page number, default 1"
//	@Param		perPage	query		int		false	"page size, default 5"
//	@Success	200		{object}	casaissdk.EventoListResponse
//	@Failure	401		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody	"Empty page"
//	@Security	BearerAuth
//	@Router		/eventos [get].
func (h *EventosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.EventoService.List(r.Context(), listQuery(r))
	if err != nil {
		eventoErrors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, casaissdk.EventoListResponse{
		Status:     true,
		Eventos:    mapAll(page.Items, toEvento),
		Pagination: pagination(page),
	})
}

// HandleGet godoc
//
//	@Summary	Get evento
//	@Tags		Eventos
//	@Produce	json
//	@Param		id	path		string	true	"evento id"
//	@Success	200	{object}	casaissdk.EventoResponse
//	@Failure	404	{object}	httpx.ErrorBody
//	@Security	BearerAuth
//	@Router		/eventos/{id} [get].
func (h *EventosHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.EventoService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		eventoErrors.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, casaissdk.EventoResponse{Status: true, Evento: toEvento(e)})
}

// HandleCreate godoc
//
//	@Summary	Create evento
//	@Tags		Eventos
//	@Accept		json
//	@Produce	json
//	@Param		request	body		casaissdk.EventoRequest	true	"titulo, descricao and data (YYYY-MM-DD)"
//	@Success	201		{object}	casaissdk.EventoResponse
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	403		{object}	httpx.ErrorBody	"Caller is not a leader"
//	@Security	BearerAuth
//	@Router		/eventos [post].
func (h *EventosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := readEvento(w, r)
	if err == nil {
		err = req.ValidateCreate()
	}
	if err != nil {
		eventoErrors.write(w, r, err)
		return
	}

	e, err := h.EventoService.Create(ctx, httpx.SubjectFromContext(ctx), req.patch())
	if err != nil {
		eventoErrors.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, casaissdk.EventoResponse{Status: true, Evento: toEvento(e)})
}

// HandleUpdate godoc
//
//	@Summary	Update evento
//	@Tags		Eventos
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"evento id"
//	@Param		request	body		casaissdk.EventoRequest	true	"fields to change"
//	@Success	200		{object}	casaissdk.EventoResponse
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	403		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody
//	@Security	BearerAuth
//	@Router		/eventos/{id} [put].
func (h *EventosHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	req, err := readEvento(w, r)
	if err == nil {
		err = req.ValidateUpdate()
	}
	if err != nil {
		eventoErrors.write(w, r, err)
		return
	}

	e, err := h.EventoService.Update(r.Context(), r.PathValue("id"), req.patch())
	if err != nil {
		eventoErrors.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, casaissdk.EventoResponse{Status: true, Evento: toEvento(e)})
}

// HandleDelete godoc
//
//	@Summary	Delete evento
//	@Tags		Eventos
//	@Produce	json
//	@Param		id	path		string	true	"evento id"
//	@Success	200	{object}	casaissdk.StatusResponse
//	@Failure	403	{object}	httpx.ErrorBody
//	@Failure	404	{object}	httpx.ErrorBody
//	@Security	BearerAuth
//	@Router		/eventos/{id} [delete].
func (h *EventosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.EventoService.Delete(r.Context(), r.PathValue("id")); err != nil {
		eventoErrors.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, casaissdk.StatusResponse{Status: true, Title: "Evento deletado."})
}

type eventoRequest struct {
	casaissdk.EventoRequest
}

func (r eventoRequest) patch() domain.EventoPatch {
	return domain.EventoPatch{Titulo: r.Titulo, Descricao: r.Descricao, Data: r.Data}
}

func readEvento(w http.ResponseWriter, r *http.Request) (eventoRequest, error) {
	var req eventoRequest
	err := decodeBody(w, r, &req.EventoRequest, func(form func(string) string) {
		req.Titulo = form("titulo")
		req.Descricao = form("descricao")
		req.Data = form("data")
	})
	return req, err
}
