package helpdesk

import (
	"context"
	"strconv"
	"strings"

	"github.com/vfg2006/school-portal-api/infrastructure/integrator/helpdesk/helpdeskclient"
	helpdeskdomain "github.com/vfg2006/school-portal-api/infrastructure/integrator/helpdesk/helpdeskdomain"
	"github.com/vfg2006/school-portal-api/internal/domain"
)

const (
	schoolTagPrefix    = "escola_"
	referenceTagPrefix = "ref_"
)

// TicketFilter é traduzido para tags e parâmetros de busca do helpdesk
type TicketFilter struct {
	SchoolID       string
	Protocol       string
	Reference      string
	RequesterEmail string
	Query          string
}

type HelpdeskIntegrator interface {
	CreateTicket(ctx context.Context, schoolID string, reference string, request domain.CreateTicketRequest) (*domain.Ticket, error)
	GetTicket(ctx context.Context, id int64) (*domain.Ticket, error)
	SearchTickets(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	AddComment(ctx context.Context, id int64, request domain.AddCommentRequest) error
}

type HelpdeskService struct {
	Client helpdeskclient.Client
}

func New(client helpdeskclient.Client) HelpdeskIntegrator {
	return &HelpdeskService{
		Client: client,
	}
}

func SchoolTag(schoolID string) string {
	return schoolTagPrefix + schoolID
}

func ReferenceTag(reference string) string {
	return referenceTagPrefix + reference
}

func (s *HelpdeskService) CreateTicket(ctx context.Context, schoolID string, reference string, request domain.CreateTicketRequest) (*domain.Ticket, error) {
	tags := []string{SchoolTag(schoolID)}
	if reference != "" {
		tags = append(tags, ReferenceTag(reference))
	}

	ticket, err := s.Client.CreateTicket(ctx, helpdeskdomain.CreateTicketPayload{
		Subject:        request.Subject,
		Description:    request.Description,
		RequesterEmail: request.RequesterEmail,
		Category:       request.Category,
		Tags:           tags,
	})
	if err != nil {
		return nil, err
	}

	result := toDomainTicket(*ticket)
	if result.SchoolID == "" {
		result.SchoolID = schoolID
	}
	if result.Reference == "" {
		result.Reference = reference
	}
	return &result, nil
}

func (s *HelpdeskService) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.Client.GetTicket(ctx, id)
	if err != nil || ticket == nil {
		return nil, err
	}

	result := toDomainTicket(*ticket)
	return &result, nil
}

func (s *HelpdeskService) SearchTickets(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	params := helpdeskclient.ListTicketsParams{
		Protocol:       filter.Protocol,
		RequesterEmail: filter.RequesterEmail,
		Query:          filter.Query,
	}
	if filter.SchoolID != "" {
		params.Tags = append(params.Tags, SchoolTag(filter.SchoolID))
	}
	if filter.Reference != "" {
		params.Tags = append(params.Tags, ReferenceTag(filter.Reference))
	}

	tickets, err := s.Client.ListTickets(ctx, params)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		result = append(result, toDomainTicket(ticket))
	}

	return result, nil
}

func (s *HelpdeskService) AddComment(ctx context.Context, id int64, request domain.AddCommentRequest) error {
	return s.Client.AddComment(ctx, id, helpdeskdomain.CommentPayload{
		AuthorEmail: request.AuthorEmail,
		Body:        request.Body,
	})
}

func toDomainTicket(ticket helpdeskdomain.Ticket) domain.Ticket {
	result := domain.Ticket{
		ID:             strconv.FormatInt(ticket.ID, 10),
		Protocol:       ticket.Protocol,
		Subject:        ticket.Subject,
		Description:    ticket.Description,
		Status:         toDomainStatus(ticket.Status),
		Category:       ticket.Category,
		RequesterEmail: ticket.RequesterEmail,
		CreatedAt:      ticket.CreatedAt,
		UpdatedAt:      ticket.UpdatedAt,
	}

	for _, tag := range ticket.Tags {
		switch {
		case strings.HasPrefix(tag, schoolTagPrefix):
			result.SchoolID = strings.TrimPrefix(tag, schoolTagPrefix)
		case strings.HasPrefix(tag, referenceTagPrefix):
			result.Reference = strings.TrimPrefix(tag, referenceTagPrefix)
		}
	}

	for _, comment := range ticket.Comments {
		result.Comments = append(result.Comments, domain.TicketComment{
			AuthorEmail: comment.AuthorEmail,
			Body:        comment.Body,
			CreatedAt:   comment.CreatedAt,
		})
	}

	return result
}

func toDomainStatus(status string) domain.TicketStatus {
	switch strings.ToLower(status) {
	case helpdeskdomain.StatusPending, helpdeskdomain.StatusHold:
		return domain.TicketStatusPending
	case helpdeskdomain.StatusSolved:
		return domain.TicketStatusResolved
	case helpdeskdomain.StatusClosed:
		return domain.TicketStatusClosed
	default:
		return domain.TicketStatusOpen
	}
}
