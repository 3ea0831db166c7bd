package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa los puertos del backend.
var (
	_ ports.AuthGateway     = (*Client)(nil)
	_ ports.ShipmentGateway = (*Client)(nil)
	_ ports.CatalogGateway  = (*Client)(nil)
	_ ports.UserGateway     = (*Client)(nil)
)

// maxBodyBytes límite de lectura de respuestas del backend.
const maxBodyBytes = 4 << 20

// Options parámetros del cliente. Valores <= 0 desactivan el límite correspondiente.
type Options struct {
	Timeout time.Duration
	RPS     float64
	Burst   int
}

// Client adaptador REST del backend de almacenes sobre net/http.
// Todas las llamadas autenticadas envían "Authorization: Bearer <token>".
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient construye el cliente. baseURL sin barra final, p. ej. "http://localhost:8080".
func NewClient(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}
	return c
}

// ── Errores ───────────────────────────────────────────────────────────────────

// APIError respuesta no-2xx del backend.
type APIError struct {
	Status  int
	Message string
	Path    string
}

// errorBody cuerpo de error estándar del backend.
type errorBody struct {
	Timestamp        string            `json:"timestamp"`
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	Path             string            `json:"path"`
	ValidationErrors map[string]string `json:"validationErrors"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend HTTP %d", e.Status)
	}
	return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
}

// UserMessage implementa domain.UserMessenger.
func (e *APIError) UserMessage() string { return e.Message }

// Is relaciona el estado HTTP con los errores de dominio.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.Status == http.StatusForbidden
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	case domain.ErrInvalidInput:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	case domain.ErrBackendUnavailable:
		return e.Status >= 500
	}
	return false
}

func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = body.Message
		apiErr.Path = body.Path
		if apiErr.Message == "" && len(body.ValidationErrors) > 0 {
			fields := make([]string, 0, len(body.ValidationErrors))
			for field := range body.ValidationErrors {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			parts := make([]string, 0, len(fields))
			for _, field := range fields {
				parts = append(parts, field+": "+body.ValidationErrors[field])
			}
			apiErr.Message = strings.Join(parts, "; ")
		}
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
	}
	return apiErr
}

// ── Transporte ────────────────────────────────────────────────────────────────

// do ejecuta la petición y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("backend: esperar cupo: %w", err)
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("backend: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("backend: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: parsear respuesta de %s: %w", path, err)
	}
	return nil
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	return q
}

func setIf(q url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		q.Set(key, value)
	}
}

func escapeID(id string) string { return url.PathEscape(strings.TrimSpace(id)) }
