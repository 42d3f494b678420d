package helpdeskclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helpdeskdomain "github.com/vfg2006/school-portal-api/infrastructure/integrator/helpdesk/helpdeskdomain"
	"github.com/vfg2006/school-portal-api/internal/config"
)

func newTestClient(srvURL string) Client {
	cfg := &config.Config{}
	cfg.Helpdesk.URL = srvURL + "/"
	cfg.Helpdesk.Token = "secret-token"
	return NewClient(cfg)
}

func TestGetTicket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/tickets/42":
			_, _ = io.WriteString(w, `{"ticket": {"id": 42, "protocol": "20250310-0001", "subject": "Boleto", "status": "open", "tags": ["escola_sch1"]}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error": "RecordNotFound"}`)
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	ticket, err := client.GetTicket(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Equal(t, int64(42), ticket.ID)
	assert.Equal(t, []string{"escola_sch1"}, ticket.Tags)

	missing, err := client.GetTicket(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListTickets_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/tickets", r.URL.Path)
		assert.Equal(t, "escola_sch1,ref_abc", q.Get("tags"))
		assert.Equal(t, "ana@escola.com", q.Get("requester_email"))
		assert.Empty(t, q.Get("protocol"))
		assert.Empty(t, q.Get("q"))

		_, _ = io.WriteString(w, `{"tickets": [{"id": 1}, {"id": 2}], "count": 2}`)
	}))
	defer srv.Close()

	tickets, err := newTestClient(srv.URL).ListTickets(context.Background(), ListTicketsParams{
		Tags:           []string{"escola_sch1", "ref_abc"},
		RequesterEmail: "ana@escola.com",
	})
	require.NoError(t, err)
	assert.Len(t, tickets, 2)
}

func TestCreateTicket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"subject":"Boleto","description":"Não recebi","requester_email":"ana@escola.com","tags":["escola_sch1"]}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"ticket": {"id": 99, "protocol": "P-99", "subject": "Boleto", "status": "new"}}`)
	}))
	defer srv.Close()

	ticket, err := newTestClient(srv.URL).CreateTicket(context.Background(), helpdeskdomain.CreateTicketPayload{
		Subject:        "Boleto",
		Description:    "Não recebi",
		RequesterEmail: "ana@escola.com",
		Tags:           []string{"escola_sch1"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), ticket.ID)
	assert.Equal(t, "P-99", ticket.Protocol)
}

func TestAddComment_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tickets/5/comments", r.URL.Path)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"error": "ticket fechado"}`)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).AddComment(context.Background(), 5, helpdeskdomain.CommentPayload{Body: "oi"})

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Equal(t, "ticket fechado", httpErr.Message)
}
