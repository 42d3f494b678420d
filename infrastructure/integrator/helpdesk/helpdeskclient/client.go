package helpdeskclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	helpdeskdomain "github.com/vfg2006/school-portal-api/infrastructure/integrator/helpdesk/helpdeskdomain"
	"github.com/vfg2006/school-portal-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetTicket(ctx context.Context, id int64) (*helpdeskdomain.Ticket, error)
	ListTickets(ctx context.Context, params ListTicketsParams) ([]helpdeskdomain.Ticket, error)
	CreateTicket(ctx context.Context, payload helpdeskdomain.CreateTicketPayload) (*helpdeskdomain.Ticket, error)
	AddComment(ctx context.Context, id int64, payload helpdeskdomain.CommentPayload) error
}

// ListTicketsParams são combinados com AND pelo helpdesk
type ListTicketsParams struct {
	Tags           []string
	Protocol       string
	RequesterEmail string
	Query          string
}

// HTTPError é devolvido quando o helpdesk responde com status diferente de 2xx
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("helpdesk respondeu com status %d: %s", e.StatusCode, e.Message)
}

type Option func(*HelpdeskClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HelpdeskClient) {
		c.httpClient = hc
	}
}

func WithBaseURL(u string) Option {
	return func(c *HelpdeskClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

type HelpdeskClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(cfg *config.Config, opts ...Option) Client {
	timeout := cfg.Helpdesk.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	c := &HelpdeskClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(cfg.Helpdesk.URL, "/"),
		token:   cfg.Helpdesk.Token,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetTicket devolve nil, nil quando o ticket não existe
func (c *HelpdeskClient) GetTicket(ctx context.Context, id int64) (*helpdeskdomain.Ticket, error) {
	var envelope helpdeskdomain.TicketEnvelope

	err := c.do(ctx, http.MethodGet, "/tickets/"+strconv.FormatInt(id, 10), nil, &envelope)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &envelope.Ticket, nil
}

func (c *HelpdeskClient) ListTickets(ctx context.Context, params ListTicketsParams) ([]helpdeskdomain.Ticket, error) {
	query := url.Values{}
	if len(params.Tags) > 0 {
		query.Set("tags", strings.Join(params.Tags, ","))
	}
	if params.Protocol != "" {
		query.Set("protocol", params.Protocol)
	}
	if params.RequesterEmail != "" {
		query.Set("requester_email", params.RequesterEmail)
	}
	if params.Query != "" {
		query.Set("q", params.Query)
	}

	path := "/tickets"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list helpdeskdomain.TicketList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}

	return list.Tickets, nil
}

func (c *HelpdeskClient) CreateTicket(ctx context.Context, payload helpdeskdomain.CreateTicketPayload) (*helpdeskdomain.Ticket, error) {
	var envelope helpdeskdomain.TicketEnvelope
	if err := c.do(ctx, http.MethodPost, "/tickets", payload, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Ticket, nil
}

func (c *HelpdeskClient) AddComment(ctx context.Context, id int64, payload helpdeskdomain.CommentPayload) error {
	return c.do(ctx, http.MethodPost, "/tickets/"+strconv.FormatInt(id, 10)+"/comments", payload, nil)
}

func (c *HelpdeskClient) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o payload")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp helpdeskdomain.ErrorResponse
		message := strings.TrimSpace(string(respBody))
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			message = errResp.Error
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}
