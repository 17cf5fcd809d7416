package casaissdk

import (
	"regexp"
	"strings"
)

var dateLike = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Validate checks the fields required by both /register and /login.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Validate checks the fields required to create a casal.
func (f CasalFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return NewBadRequest("Nome é obrigatório.")
	}
	return nil
}

// ValidateCreate checks the fields required to create a casal-simple.
func (r CasalSimpleRequest) ValidateCreate() error {
	if strings.TrimSpace(r.Name) == "" || r.Age == 0 {
		return NewBadRequest("Nome e idade são obrigatórios.")
	}
	return r.ValidateUpdate()
}

// ValidateUpdate rejects a negative age. Zero means "leave unchanged".
func (r CasalSimpleRequest) ValidateUpdate() error {
	if r.Age < 0 {
		return NewBadRequest("Idade deve ser maior que zero.")
	}
	return nil
}

// Validate checks that a history name was supplied.
func (r HistoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewBadRequest("Nome é obrigatório.")
	}
	return nil
}

// ValidateCreate checks the fields required to create an evento.
func (r EventoRequest) ValidateCreate() error {
	if strings.TrimSpace(r.Titulo) == "" || strings.TrimSpace(r.Data) == "" {
		return NewBadRequest("Título e data são obrigatórios.")
	}
	return r.ValidateUpdate()
}

// ValidateUpdate checks that a supplied date looks like a calendar date.
func (r EventoRequest) ValidateUpdate() error {
	if r.Data != "" && !dateLike.MatchString(r.Data) {
		return NewBadRequest("Data inválida, use AAAA-MM-DD.")
	}
	return nil
}
