package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/casais/internal/casais/domain"
	"github.com/aussiebroadwan/casais/internal/casais/service"
	"github.com/aussiebroadwan/casais/pkg/casaissdk"
	"github.com/aussiebroadwan/casais/pkg/httpx"
)

// imageFields are the multipart fields an upload may arrive under.
var imageFields = []string{"image", "file"}

type CasaisHandler struct {
	CasalService   *service.CasalService
	MaxUploadBytes int64
}

// casalBody is the JSON form of add/update casal. Multipart requests carry
// the same names as form fields.
type casalBody struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	NiverH string `json:"niverH"`
	NiverM string `json:"niverM"`
	Tel    string `json:"tel"`
}

func (b casalBody) fields() casaissdk.CasalFields {
	return casaissdk.CasalFields{Name: b.Name, Desc: b.Desc, NiverH: b.NiverH, NiverM: b.NiverM, Tel: b.Tel}
}

func (b casalBody) patch() domain.CasalPatch {
	return domain.CasalPatch{Name: b.Name, Desc: b.Desc, NiverH: b.NiverH, NiverM: b.NiverM, Tel: b.Tel}
}

// HandleList lists the caller's casais.
//
//	@Summary		List casais
//	@Description	Returns the caller's non-deleted casais, optionally filtered by a case-insensitive name search.
//	@Tags			Casais
//	@Produce		json
//	@Param			search	query		string	false	"substring of name"
//	@Param			page	query		int		false	"page number, default 1"
//	@Param			perPage	query		int		false	"page size, default 5"
//	@Success		200		{object}	casaissdk.CasalListResponse
//	@Failure		401		{object}	httpx.ErrorBody
//	@Failure		404		{object}	httpx.ErrorBody	"Empty page"
//	@Failure		500		{object}	httpx.ErrorBody
//	@Security		BearerAuth
//	@Router			/get-casal [get].
func (h *CasaisHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.CasalService.List(ctx, httpx.SubjectFromContext(ctx), listQuery(r))
	if err != nil {
		casalErrors.with(casaissdk.ErrListCasais).write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, casaissdk.CasalListResponse{
		Status:     true,
		Title:      "Casais recuperados.",
		Casais:     mapAll(page.Items, toCasal),
		Pagination: pagination(page),
	})
}

// HandleAdd creates a casal, forwarding an optional image to the media host.
//
//	@Summary		Add casal
//	@Tags			Casais
//	@Accept			mpfd
//	@Produce		json
//	@Param			name	formData	string	true	"name"
//	@Param			desc	formData	string	false	"description"
//	@Param			niverH	formData	string	false	"his birthday"
//	@Param			niverM	formData	string	false	"her birthday"
//	@Param			tel		formData	string	false	"phone"
//	@Param			image	formData	file	false	"jpg, jpeg or png"
//	@Success		201		{object}	casaissdk.CasalResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		401		{object}	httpx.ErrorBody
//	@Failure		500		{object}	httpx.ErrorBody
//	@Security		BearerAuth
//	@Router			/add-casal [post].
func (h *CasaisHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	errs := casalErrors.with(casaissdk.ErrAddCasal)

	body, img, err := h.read(w, r)
	if err != nil {
		errs.write(w, r, err)
		return
	}
	if err := body.fields().Validate(); err != nil {
		errs.write(w, r, err)
		return
	}

	c, err := h.CasalService.Add(ctx, httpx.SubjectFromContext(ctx), body.patch(), img)
	if err != nil {
		errs.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, casaissdk.CasalResponse{
		Status: true,
		Title:  "Casal adicionado com sucesso.",
		Casal:  toCasal(c),
	})
}

// HandleUpdate merges the supplied fields into a casal. The id comes from
// the path, or from the body on the legacy POST /update-casal.
//
//	@Summary		Update casal
//	@Description	Partial update: empty fields leave the stored value untouched. A new image replaces the old one.
//	@Tags			Casais
//	@Accept			mpfd
//	@Produce		json
//	@Param			id		path		string	true	"casal id"
//	@Param			name	formData	string	false	"name"
//	@Param			desc	formData	string	false	"description"
//	@Param			niverH	formData	string	false	"his birthday"
//	@Param			niverM	formData	string	false	"her birthday"
//	@Param			tel		formData	string	false	"phone"
//	@Param			image	formData	file	false	"jpg, jpeg or png"
//	@Success		200		{object}	casaissdk.CasalResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		401		{object}	httpx.ErrorBody
//	@Failure		404		{object}	httpx.ErrorBody
//	@Failure		500		{object}	httpx.ErrorBody
//	@Security		BearerAuth
//	@Router			/update-casal/{id} [put].
func (h *CasaisHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	errs := casalErrors.with(casaissdk.ErrUpdateCasal)

	body, img, err := h.read(w, r)
	if err != nil {
		errs.write(w, r, err)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		id = strings.TrimSpace(body.ID)
	}
	if id == "" {
		errs.write(w, r, casaissdk.ErrMissingID)
		return
	}

	c, err := h.CasalService.Update(ctx, httpx.SubjectFromContext(ctx), id, body.patch(), img)
	if err != nil {
		errs.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, casaissdk.CasalResponse{
		Status: true,
		Title:  "Casal atualizado com sucesso.",
		Casal:  toCasal(c),
	})
}

// HandleDelete soft-deletes a casal.
//
//	@Summary		Delete casal
//	@Tags			Casais
//	@Produce		json
//	@Param			id	path		string	true	"casal id"
//	@Success		200	{object}	casaissdk.StatusResponse
//	@Failure		401	{object}	httpx.ErrorBody
//	@Failure		404	{object}	httpx.ErrorBody
//	@Failure		500	{object}	httpx.ErrorBody
//	@Security		BearerAuth
//	@Router			/delete-casal/{id} [delete].
func (h *CasaisHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, r.PathValue("id"))
}

// HandleDeleteLegacy is POST /delete-casal with {"id": ...} in the body.
func (h *CasaisHandler) HandleDeleteLegacy(w http.ResponseWriter, r *http.Request) {
	var req casaissdk.DeleteCasalRequest
	err := decodeBody(w, r, &req, func(form func(string) string) {
		req.ID = form("id")
	})
	if err != nil {
		casalErrors.with(casaissdk.ErrDeleteCasal).write(w, r, err)
		return
	}
	h.delete(w, r, strings.TrimSpace(req.ID))
}

func (h *CasaisHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()
	errs := casalErrors.with(casaissdk.ErrDeleteCasal)

	if id == "" {
		errs.write(w, r, casaissdk.ErrMissingID)
		return
	}

	if err := h.CasalService.Delete(ctx, httpx.SubjectFromContext(ctx), id); err != nil {
		errs.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, casaissdk.StatusResponse{Status: true, Title: "Casal deletado."})
}

// read accepts multipart (with an optional image), url-encoded or JSON
// bodies.
func (h *CasaisHandler) read(w http.ResponseWriter, r *http.Request) (casalBody, *service.Image, error) {
	var body casalBody

	if !isForm(r) {
		err := decodeJSON(w, r, &body)
		return body, nil, err
	}

	limit := h.MaxUploadBytes
	if limit <= 0 {
		limit = DefaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(limit); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		if tooLarge(err) {
			return body, nil, casaissdk.ErrImageTooLarge
		}
		return body, nil, casaissdk.ErrInvalidBody
	}

	body = casalBody{
		ID:     r.FormValue("id"),
		Name:   r.FormValue("name"),
		Desc:   r.FormValue("desc"),
		NiverH: r.FormValue("niverH"),
		NiverM: r.FormValue("niverM"),
		Tel:    r.FormValue("tel"),
	}

	img, err := formImage(r)
	return body, img, err
}

func formImage(r *http.Request) (*service.Image, error) {
	for _, field := range imageFields {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			continue
		}
		if err != nil {
			return nil, casaissdk.ErrInvalidBody
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, casaissdk.ErrInvalidBody
		}
		return &service.Image{Filename: header.Filename, Data: data}, nil
	}
	return nil, nil
}

func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || errors.Is(err, multipart.ErrMessageTooLarge) ||
		strings.Contains(err.Error(), "request body too large")
}
