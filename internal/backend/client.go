package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patomosley/barbar-shop/internal/metrics"
)

// Client é o cliente tipado da API REST do salão. Ele não guarda estado de
// listas: só transporte, credencial de sessão e normalização de erros.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cookie     string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithCookie devolve uma cópia do cliente vinculada à sessão do backend.
// Todas as chamadas autenticadas passam por uma cópia dessas.
func (c *Client) WithCookie(cookie string) *Client {
	cp := *c
	cp.cookie = cookie
	return &cp
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	_, err := c.roundTrip(ctx, op, http.MethodGet, path, query, nil, out)
	return err
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	_, err := c.roundTrip(ctx, op, http.MethodPost, path, nil, body, out)
	return err
}

func (c *Client) put(ctx context.Context, op, path string, body, out any) error {
	_, err := c.roundTrip(ctx, op, http.MethodPut, path, nil, body, out)
	return err
}

func (c *Client) delete(ctx context.Context, op, path string) error {
	_, err := c.roundTrip(ctx, op, http.MethodDelete, path, nil, nil, nil)
	return err
}

// roundTrip executa a chamada, normaliza erros e decodifica a resposta em
// out (quando não nil). Retorna a resposta para quem precisa dos cookies.
func (c *Client) roundTrip(
	ctx context.Context,
	op string,
	method string,
	path string,
	query url.Values,
	body any,
	out any,
) (*http.Response, error) {

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	resp, err := c.httpClient.Do(req)
	metrics.IncBackend(op, err)
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", op, err)
	}

	if resp.StatusCode >= 300 {
		return resp, &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(data),
		}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp, fmt.Errorf("backend %s: decode response: %w", op, err)
		}
	}
	return resp, nil
}

// errorMessage extrai o campo de erro do envelope; sem ele, texto genérico.
func errorMessage(data []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return GenericErrorMessage
}
