package casaissdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/casais/pkg/httpx"
)

// APIError is a failed response: {status:false, errorMessage}. The server
// writes it with WriteError and the client returns it from failed calls.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"errorMessage"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("casais: %d %s", e.StatusCode, e.Message)
}

// WriteError writes e to w.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Message)
}

// NewBadRequest returns a 400 with the given message.
func NewBadRequest(msg string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: msg}
}

// NewUsernameTaken is the 400 written when registering an existing username.
func NewUsernameTaken(username string) *APIError {
	return NewBadRequest(fmt.Sprintf("Usuario %s já existe!", username))
}

var (
	ErrMissingCredentials = NewBadRequest("Adicione username e password")
	ErrBadCredentials     = NewBadRequest("Nome de usuário ou senha está incorreta!")
	ErrInvalidBody        = NewBadRequest("Corpo da requisição inválido.")
	ErrMissingID          = NewBadRequest("Id é obrigatório")
	ErrInvalidImage       = NewBadRequest("Imagem deve ser jpg, jpeg ou png.")
	ErrImageTooLarge      = NewBadRequest("Imagem excede o tamanho máximo permitido.")

	ErrCasalNotFound   = &APIError{StatusCode: http.StatusNotFound, Message: "Casal não encontrado"}
	ErrNoCasais        = &APIError{StatusCode: http.StatusNotFound, Message: "Não há Casais cadastrados!"}
	ErrEventoNotFound  = &APIError{StatusCode: http.StatusNotFound, Message: "Evento não encontrado"}
	ErrNoEventos       = &APIError{StatusCode: http.StatusNotFound, Message: "Não há Eventos cadastrados!"}
	ErrAccountNotFound = &APIError{StatusCode: http.StatusNotFound, Message: "Usuário não encontrado"}

	ErrRegister    = &APIError{StatusCode: http.StatusInternalServerError, Message: "Erro ao registrar usuário."}
	ErrLogin       = &APIError{StatusCode: http.StatusInternalServerError, Message: "Erro no login."}
	ErrAddCasal    = &APIError{StatusCode: http.StatusInternalServerError, Message: "Erro ao adicionar casal."}
	ErrUpdateCasal = &APIError{StatusCode: http.StatusInternalServerError, Message: "Erro ao atualizar casal."}
	ErrDeleteCasal = &APIError{StatusCode: http.StatusInternalServerError, Message: "Erro ao deletar casal."}
	ErrListCasais  = &APIError{StatusCode: http.StatusInternalServerError, Message: "Erro ao recuperar casais."}
	ErrHistory     = &APIError{StatusCode: http.StatusInternalServerError, Message: "Erro ao atualizar histórico."}
	ErrEventos     = &APIError{StatusCode: http.StatusInternalServerError, Message: "Erro ao processar eventos."}
	ErrServer      = &APIError{StatusCode: http.StatusInternalServerError, Message: "Erro interno do servidor."}
)

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env httpx.ErrorBody
	if err := json.Unmarshal(body, &env); err == nil && env.ErrorMessage != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: env.ErrorMessage}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
