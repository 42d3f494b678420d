package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/school-portal-api/internal/api/handler"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/internal/usecases/support"
	"github.com/vfg2006/school-portal-api/internal/usecases/support/mocks"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
)

func TestCreateTicket_DefaultsRequesterToCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupportService(ctrl)

	service.EXPECT().
		CreateTicket(gomock.Any(), "SCH1", domain.CreateTicketRequest{
			Subject:        "Boleto",
			Description:    "Não recebi",
			RequesterEmail: userClaims.UserEmail,
		}).
		Return(&domain.Ticket{ID: "10", SchoolID: "SCH1", Reference: "Ab12"}, nil)

	rec := serve(t, handler.Support(service), userClaims, http.MethodPost, "/v1/schools/SCH1/tickets",
		`{"subject":"Boleto","description":"Não recebi"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Ab12", decodeBody(t, rec)["reference"])
}

func TestListTickets_OtherSchoolForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupportService(ctrl)

	rec := serve(t, handler.Support(service), userClaims, http.MethodGet, "/v1/schools/SCH2/tickets", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetTicket(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		requesterEmail string
		err            error
		expectedCode   int
	}{
		{
			name:         "por protocolo",
			path:         "/v1/schools/SCH1/tickets/P-10",
			expectedCode: http.StatusOK,
		},
		{
			name:           "com solicitante",
			path:           "/v1/schools/SCH1/tickets/Ab12?requester_email=ana@escola.com",
			requesterEmail: "ana@escola.com",
			expectedCode:   http.StatusOK,
		},
		{
			name:         "não encontrado",
			path:         "/v1/schools/SCH1/tickets/P-10",
			err:          support.NewSupportError(support.ErrTicketNotFound, apiErrors.ErrNotFound, ""),
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "helpdesk fora do ar",
			path:         "/v1/schools/SCH1/tickets/P-10",
			err:          support.NewSupportError(support.ErrHelpdeskUnavailable, apiErrors.ErrExternalService, ""),
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSupportService(ctrl)

			var ticket *domain.Ticket
			if tt.err == nil {
				ticket = &domain.Ticket{ID: "10", SchoolID: "SCH1"}
			}

			service.EXPECT().
				GetTicket(gomock.Any(), "SCH1", gomock.Any(), tt.requesterEmail).
				Return(ticket, tt.err)

			rec := serve(t, handler.Support(service), managerClaims, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestAddTicketComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupportService(ctrl)

	service.EXPECT().
		AddComment(gomock.Any(), "SCH1", "Ab12", domain.AddCommentRequest{
			AuthorEmail: managerClaims.UserEmail,
			Body:        "Alguma novidade?",
		}).
		Return(&domain.Ticket{ID: "10"}, nil)

	rec := serve(t, handler.Support(service), managerClaims, http.MethodPost, "/v1/schools/SCH1/tickets/Ab12/comments",
		`{"body":"Alguma novidade?"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
