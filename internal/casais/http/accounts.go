package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/casais/internal/casais/service"
	"github.com/aussiebroadwan/casais/pkg/casaissdk"
	"github.com/aussiebroadwan/casais/pkg/httpx"
	"github.com/aussiebroadwan/casais/pkg/slogx"
)

func readCredentials(w http.ResponseWriter, r *http.Request) (casaissdk.Credentials, error) {
	var creds casaissdk.Credentials
	err := decodeBody(w, r, &creds, func(form func(string) string) {
		creds.Username = form("username")
		creds.Password = form("password")
	})
	if err != nil {
		return creds, err
	}
	return creds, creds.Validate()
}

type RegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles account registration.
//
//	@Summary		Register an account
//	@Description	Creates a standard account. Accepts JSON or form fields.
//	@Tags			Accounts
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		casaissdk.Credentials		true	"username and password"
//	@Success		201		{object}	casaissdk.StatusResponse
//	@Failure		400		{object}	httpx.ErrorBody	"Missing fields or username taken"
//	@Failure		429		{object}	httpx.ErrorBody
//	@Failure		500		{object}	httpx.ErrorBody
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	creds, err := readCredentials(w, r)
	if err != nil {
		casalErrors.with(casaissdk.ErrRegister).write(w, r, err)
		return
	}

	_, err = h.AccountService.Register(ctx, creds.Username, creds.Password)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		casaissdk.NewUsernameTaken(creds.Username).WriteError(w)
		return
	case errors.Is(err, service.ErrInvalidInput):
		casaissdk.ErrMissingCredentials.WriteError(w)
		return
	case err != nil:
		casalErrors.with(casaissdk.ErrRegister).write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, casaissdk.StatusResponse{
		Status: true,
		Title:  "Usuário registrado com sucesso.",
	})
}

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP handles login.
//
//	@Summary		Log in
//	@Description	Verifies the password and returns a signed session token valid for 24h.
//	@Tags			Accounts
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		casaissdk.Credentials	true	"username and password"
//	@Success		200		{object}	casaissdk.LoginResponse
//	@Failure		400		{object}	httpx.ErrorBody	"Missing fields or wrong username/password"
//	@Failure		429		{object}	httpx.ErrorBody
//	@Failure		500		{object}	httpx.ErrorBody
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	creds, err := readCredentials(w, r)
	if err != nil {
		casalErrors.with(casaissdk.ErrLogin).write(w, r, err)
		return
	}

	res, err := h.AccountService.Login(ctx, creds.Username, creds.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Info("login rejected", slog.String("username", creds.Username))
		casaissdk.ErrBadCredentials.WriteError(w)
		return
	case errors.Is(err, service.ErrInvalidInput):
		casaissdk.ErrMissingCredentials.WriteError(w)
		return
	case err != nil:
		casalErrors.with(casaissdk.ErrLogin).write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, casaissdk.LoginResponse{
		Status:  true,
		Message: "Usuario logado com sucesso.",
		Token:   res.Token,
		ID:      res.Account.ID,
	})
}

type HistoryHandler struct {
	AccountService *service.AccountService
}

// HandleGet returns the caller's name history.
//
//	@Summary		Name history
//	@Tags			History
//	@Produce		json
//	@Success		200	{object}	casaissdk.HistoryResponse
//	@Failure		401	{object}	httpx.ErrorBody
//	@Security		BearerAuth
//	@Router			/history [get].
func (h *HistoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	history, err := h.AccountService.History(r.Context(), httpx.SubjectFromContext(r.Context()))
	h.respond(w, r, history, err)
}

// HandleAppend adds a name to the caller's history unless already present.
//
//	@Summary		Append to name history
//	@Tags			History
//	@Accept			json
//	@Produce		json
//	@Param			request	body		casaissdk.HistoryRequest	true	"name"
//	@Success		200		{object}	casaissdk.HistoryResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		401		{object}	httpx.ErrorBody
//	@Security		BearerAuth
//	@Router			/history [post].
func (h *HistoryHandler) HandleAppend(w http.ResponseWriter, r *http.Request) {
	req, err := h.read(w, r)
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	history, err := h.AccountService.AppendHistory(r.Context(), httpx.SubjectFromContext(r.Context()), req.Name)
	h.respond(w, r, history, err)
}

// HandleRemove drops a name from the caller's history.
//
//	@Summary		Remove from name history
//	@Tags			History
//	@Accept			json
//	@Produce		json
//	@Param			request	body		casaissdk.HistoryRequest	true	"name"
//	@Success		200		{object}	casaissdk.HistoryResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		401		{object}	httpx.ErrorBody
//	@Security		BearerAuth
//	@Router			/history [delete].
func (h *HistoryHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	req, err := h.read(w, r)
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	history, err := h.AccountService.RemoveHistory(r.Context(), httpx.SubjectFromContext(r.Context()), req.Name)
	h.respond(w, r, history, err)
}

func (h *HistoryHandler) read(w http.ResponseWriter, r *http.Request) (casaissdk.HistoryRequest, error) {
	var req casaissdk.HistoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return req, err
	}
	return req, req.Validate()
}

func (h *HistoryHandler) respond(w http.ResponseWriter, r *http.Request, history []string, err error) {
	if err != nil {
		casalErrors.with(casaissdk.ErrHistory).write(w, r, err)
		return
	}
	if history == nil {
		history = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, casaissdk.HistoryResponse{Status: true, History: history})
}
