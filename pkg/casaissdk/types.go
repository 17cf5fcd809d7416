package casaissdk

import "time"

// StatusResponse is the minimal success envelope.
type StatusResponse struct {
	Status bool   `json:"status"`
	Title  string `json:"title,omitempty"`
}

// Credentials is the body of POST /register and POST /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
	ID      string `json:"id"`
}

// ListQuery holds the search and pagination parameters shared by list
// endpoints. Zero values are omitted from the query string.
type ListQuery struct {
	Search  string
	Page    int
	PerPage int
}

// Pagination is embedded in every list response.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	Total       int `json:"total"`
	Pages       int `json:"pages"`
}

// Casal is the wire form of a couple record.
type Casal struct {
	ID       string    `json:"_id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Desc     string    `json:"desc"`
	NiverH   string    `json:"niverH"`
	NiverM   string    `json:"niverM"`
	Tel      string    `json:"tel"`
	Image    string    `json:"image"`
	PublicID string    `json:"public_id"`
	IsDelete bool      `json:"is_delete"`
	Date     time.Time `json:"date"`
}

// CasalFields are the multipart text fields of add/update casal. On update
// empty fields leave the stored value untouched.
type CasalFields struct {
	Name   string
	Desc   string
	NiverH string
	NiverM string
	Tel    string
}

// CasalResponse is returned by add and update casal.
type CasalResponse struct {
	Status bool   `json:"status"`
	Title  string `json:"title,omitempty"`
	Casal  Casal  `json:"casal"`
}

// CasalListResponse is returned by GET /get-casal.
type CasalListResponse struct {
	Status bool    `json:"status"`
	Title  string  `json:"title,omitempty"`
	Casais []Casal `json:"casais"`
	Pagination
}

// DeleteCasalRequest is the body of the legacy POST /delete-casal.
type DeleteCasalRequest struct {
	ID string `json:"id"`
}

// CasalSimple is the wire form of a simplified couple record.
type CasalSimple struct {
	ID       string    `json:"_id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Age      int       `json:"age"`
	IsDelete bool      `json:"is_delete"`
	Date     time.Time `json:"date"`
}

// CasalSimpleRequest is the body of add and update casal-simple.
type CasalSimpleRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// CasalSimpleResponse is returned by add and update casal-simple.
type CasalSimpleResponse struct {
	Status bool        `json:"status"`
	Casal  CasalSimple `json:"casal"`
}

// CasalSimpleListResponse is returned by GET /get-casal-simple.
type CasalSimpleListResponse struct {
	Status bool          `json:"status"`
	Casais []CasalSimple `json:"casais"`
	Pagination
}

// HistoryRequest is the body of the /history write endpoints.
type HistoryRequest struct {
	Name string `json:"name"`
}

// HistoryResponse carries an account's name history, oldest first.
type HistoryResponse struct {
	Status  bool     `json:"status"`
	History []string `json:"history"`
}

// Evento is the wire form of a shared calendar event.
type Evento struct {
	ID        string    `json:"_id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	Data      string    `json:"data"`
	CriadoPor string    `json:"criadoPor"`
	IsDelete  bool      `json:"is_delete"`
	CreatedAt time.Time `json:"createdAt"`
}

// EventoRequest is the body of create and update evento.
type EventoRequest struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Data      string `json:"data"`
}

// EventoResponse is returned by single-evento endpoints.
type EventoResponse struct {
	Status bool   `json:"status"`
	Evento Evento `json:"evento"`
}

// EventoListResponse is returned by GET /eventos.
type EventoListResponse struct {
	Status  bool     `json:"status"`
	Eventos []Evento `json:"eventos"`
	Pagination
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Uptime  string            `json:"uptime"`
	Checks  map[string]string `json:"checks,omitempty"`
}
