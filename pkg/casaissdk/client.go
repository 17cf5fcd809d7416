package casaissdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to a casais API. The zero token makes anonymous calls; use
// WithToken to get an authenticated copy.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient returns a client with a 10s timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of c that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Image is an optional file attached to add/update casal.
type Image struct {
	Filename string
	Body     io.Reader
}

func (c *Client) Register(ctx context.Context, creds Credentials) error {
	var out StatusResponse
	return c.doJSON(ctx, http.MethodPost, "/register", creds, &out, http.StatusCreated)
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", creds, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCasais(ctx context.Context, q ListQuery) (*CasalListResponse, error) {
	var out CasalListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/get-casal"+q.encode(), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddCasal(ctx context.Context, f CasalFields, img *Image) (*CasalResponse, error) {
	var out CasalResponse
	if err := c.doMultipart(ctx, http.MethodPost, "/add-casal", f.values(), img, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCasal(ctx context.Context, id string, f CasalFields, img *Image) (*CasalResponse, error) {
	var out CasalResponse
	path := "/update-casal/" + url.PathEscape(id)
	if err := c.doMultipart(ctx, http.MethodPut, path, f.values(), img, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCasal(ctx context.Context, id string) error {
	var out StatusResponse
	return c.doJSON(ctx, http.MethodDelete, "/delete-casal/"+url.PathEscape(id), nil, &out, http.StatusOK)
}

func (c *Client) ListCasaisSimples(ctx context.Context, q ListQuery) (*CasalSimpleListResponse, error) {
	var out CasalSimpleListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/get-casal-simple"+q.encode(), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddCasalSimple(ctx context.Context, req CasalSimpleRequest) (*CasalSimpleResponse, error) {
	var out CasalSimpleResponse
	if err := c.doJSON(ctx, http.MethodPost, "/add-casal-simple", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCasalSimple(ctx context.Context, id string, req CasalSimpleRequest) (*CasalSimpleResponse, error) {
	var out CasalSimpleResponse
	path := "/update-casal-simple/" + url.PathEscape(id)
	if err := c.doJSON(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCasalSimple(ctx context.Context, id string) error {
	var out StatusResponse
	return c.doJSON(ctx, http.MethodDelete, "/delete-casal-simple/"+url.PathEscape(id), nil, &out, http.StatusOK)
}

func (c *Client) History(ctx context.Context) ([]string, error) {
	return c.history(ctx, http.MethodGet, nil)
}

func (c *Client) AppendHistory(ctx context.Context, name string) ([]string, error) {
	return c.history(ctx, http.MethodPost, HistoryRequest{Name: name})
}

// RemoveHistory drops name from the caller's history and returns what is left.
func (c *Client) RemoveHistory(ctx context.Context, name string) ([]string, error) {
	return c.history(ctx, http.MethodDelete, HistoryRequest{Name: name})
}

func (c *Client) history(ctx context.Context, method string, body any) ([]string, error) {
	var out HistoryResponse
	if err := c.doJSON(ctx, method, "/history", body, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.History, nil
}

func (c *Client) ListEventos(ctx context.Context, q ListQuery) (*EventoListResponse, error) {
	var out EventoListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/eventos"+q.encode(), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetEvento(ctx context.Context, id string) (*Evento, error) {
	var out EventoResponse
	if err := c.doJSON(ctx, http.MethodGet, "/eventos/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Evento, nil
}

// CreateEvento requires a leader token.
func (c *Client) CreateEvento(ctx context.Context, req EventoRequest) (*Evento, error) {
	var out EventoResponse
	if err := c.doJSON(ctx, http.MethodPost, "/eventos", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Evento, nil
}

// UpdateEvento requires a leader token.
func (c *Client) UpdateEvento(ctx context.Context, id string, req EventoRequest) (*Evento, error) {
	var out EventoResponse
	if err := c.doJSON(ctx, http.MethodPut, "/eventos/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Evento, nil
}

// DeleteEvento requires a leader token.
func (c *Client) DeleteEvento(ctx context.Context, id string) error {
	var out StatusResponse
	return c.doJSON(ctx, http.MethodDelete, "/eventos/"+url.PathEscape(id), nil, &out, http.StatusOK)
}

func (q ListQuery) encode() string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("perPage", strconv.Itoa(q.PerPage))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (f CasalFields) values() map[string]string {
	return map[string]string{
		"name":   f.Name,
		"desc":   f.Desc,
		"niverH": f.NiverH,
		"niverM": f.NiverM,
		"tel":    f.Tel,
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, expected int) error {
	var r io.Reader
	headers := map[string]string{}
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		r = bytes.NewReader(buf)
		headers["Content-Type"] = "application/json"
	}

	resp, err := c.do(ctx, method, path, r, headers)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, expected)
}

func (c *Client) doMultipart(
	ctx context.Context,
	method, path string,
	fields map[string]string,
	img *Image,
	out any,
	expected int,
) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write field %s: %w", k, err)
		}
	}
	if img != nil {
		part, err := mw.CreateFormFile("image", img.Filename)
		if err != nil {
			return fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := io.Copy(part, img.Body); err != nil {
			return fmt.Errorf("failed to copy image: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	resp, err := c.do(ctx, method, path, &buf, map[string]string{"Content-Type": mw.FormDataContentType()})
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, expected)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON reads the body once, returning an *APIError for any status
// other than expected.
func decodeJSON(resp *http.Response, target any, expected int) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expected {
		return parseErrorResponse(resp, body)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
