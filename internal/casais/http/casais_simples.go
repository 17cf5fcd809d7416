package http

import (
	"net/http"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/service"
	"github.com/aussiebroadwan/casais/pkg/casaissdk"
	"github.com/aussiebroadwan/casais/pkg/httpx"
)

// CasaisSimplesHandler serves the name-and-age casal list. It shares the
// casal wire errors.
type CasaisSimplesHandler struct {
	CasalSimpleService *service.CasalSimpleService
}

// HandleList godoc
//
//	@Summary	List casais simples
//	@Tags		Casais Simples
//	@Produce	json
//	@Param		search	query		string	false	"substring of name"
//	@Param		page	query		int		false	"page number, default 1"
//	@Param		perPage	query		int		false	"page size, default 5"
//	@Success	200		{object}	casaissdk.CasalSimpleListResponse
//	@Failure	401		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody	"Empty page"
//	@Security	BearerAuth
//	@Router		/get-casal-simple [get].
func (h *CasaisSimplesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.CasalSimpleService.List(ctx, httpx.SubjectFromContext(ctx), listQuery(r))
	if err != nil {
		casalErrors.with(casaissdk.ErrListCasais).write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, casaissdk.CasalSimpleListResponse{
		Status:     true,
		Casais:     mapAll(page.Items, toCasalSimple),
		Pagination: pagination(page),
	})
}

// HandleAdd godoc
//
//	@Summary	Add casal simples
//	@Tags		Casais Simples
//	@Accept		json
//	@Produce	json
//	@Param		request	body		casaissdk.CasalSimpleRequest	true	"name and age"
//	@Success	201		{object}	casaissdk.CasalSimpleResponse
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	401		{object}	httpx.ErrorBody
//	@Security	BearerAuth
//	@Router		/add-casal-simple [post].
func (h *CasaisSimplesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	errs := casalErrors.with(casaissdk.ErrAddCasal)

	req, err := readCasalSimple(w, r)
	if err == nil {
		err = req.ValidateCreate()
	}
	if err != nil {
		errs.write(w, r, err)
		return
	}

	c, err := h.CasalSimpleService.Add(ctx, httpx.SubjectFromContext(ctx), domain.CasalSimplePatch{Name: req.Name, Age: req.Age})
	if err != nil {
		errs.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, casaissdk.CasalSimpleResponse{Status: true, Casal: toCasalSimple(c)})
}

// HandleUpdate godoc
//
//	@Summary	Update casal simples
//	@Tags		Casais Simples
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"casal id"
//	@Param		request	body		casaissdk.CasalSimpleRequest	true	"fields to change"
//	@Success	200		{object}	casaissdk.CasalSimpleResponse
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody
//	@Security	BearerAuth
//	@Router		/update-casal-simple/{id} [put].
func (h *CasaisSimplesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	errs := casalErrors.with(casaissdk.ErrUpdateCasal)

	req, err := readCasalSimple(w, r)
	if err == nil {
		err = req.ValidateUpdate()
	}
	if err != nil {
		errs.write(w, r, err)
		return
	}

	c, err := h.CasalSimpleService.Update(ctx, httpx.SubjectFromContext(ctx), r.PathValue("id"),
		domain.CasalSimplePatch{Name: req.Name, Age: req.Age})
	if err != nil {
		errs.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, casaissdk.CasalSimpleResponse{Status: true, Casal: toCasalSimple(c)})
}

// HandleDelete godoc
//
//	@Summary	Delete casal simples
//	@Tags		Casais Simples
//	@Produce	json
//	@Param		id	path		string	true	"casal id"
//	@Success	200	{object}	casaissdk.StatusResponse
//	@Failure	404	{object}	httpx.ErrorBody
//	@Security	BearerAuth
//	@Router		/delete-casal-simple/{id} [delete].
func (h *CasaisSimplesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.CasalSimpleService.Delete(ctx, httpx.SubjectFromContext(ctx), r.PathValue("id")); err != nil {
		casalErrors.with(casaissdk.ErrDeleteCasal).write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, casaissdk.StatusResponse{Status: true, Title: "Casal deletado."})
}

func readCasalSimple(w http.ResponseWriter, r *http.Request) (casaissdk.CasalSimpleRequest, error) {
	var req casaissdk.CasalSimpleRequest
	err := decodeBody(w, r, &req, func(form func(string) string) {
		req.Name = form("name")
		req.Age = leadingInt(form("age"))
	})
	return req, err
}
