package support

import (
	"context"
	"strconv"
	"strings"

	"github.com/vfg2006/school-portal-api/infrastructure/integrator/helpdesk"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
	"github.com/vfg2006/school-portal-api/pkg/log"
	"github.com/vfg2006/school-portal-api/pkg/utils"
)

type SupportService interface {
	CreateTicket(ctx context.Context, schoolID string, request domain.CreateTicketRequest) (*domain.Ticket, error)
	ListTickets(ctx context.Context, schoolID string) ([]domain.Ticket, error)
	GetTicket(ctx context.Context, schoolID, reference, requesterEmail string) (*domain.Ticket, error)
	AddComment(ctx context.Context, schoolID, reference string, request domain.AddCommentRequest) (*domain.Ticket, error)
}

type Service struct {
	helpdeskService helpdesk.HelpdeskIntegrator
	generateID      func() (string, error)
}

func NewService(helpdeskService helpdesk.HelpdeskIntegrator) SupportService {
	return &Service{
		helpdeskService: helpdeskService,
		generateID:      utils.GenerateID,
	}
}

func (s *Service) CreateTicket(ctx context.Context, schoolID string, request domain.CreateTicketRequest) (*domain.Ticket, error) {
	request.Subject = strings.TrimSpace(request.Subject)
	request.Description = strings.TrimSpace(request.Description)
	request.RequesterEmail = strings.TrimSpace(request.RequesterEmail)

	if request.Subject == "" || request.Description == "" || request.RequesterEmail == "" {
		return nil, NewSupportError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Assunto, descrição e e-mail são obrigatórios")
	}

	reference, err := s.generateID()
	if err != nil {
		return nil, NewSupportError(ErrGenerateReference, apiErrors.ErrInternalServer, err.Error())
	}

	ticket, err := s.helpdeskService.CreateTicket(ctx, schoolID, reference, request)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("school_id", schoolID).Error("Erro ao criar ticket no helpdesk")
		return nil, NewSupportError(ErrHelpdeskUnavailable, apiErrors.ErrExternalService, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"school_id": schoolID,
		"ticket_id": ticket.ID,
		"reference": reference,
	}).Info("Ticket criado")

	return ticket, nil
}

func (s *Service) ListTickets(ctx context.Context, schoolID string) ([]domain.Ticket, error) {
	tickets, err := s.helpdeskService.SearchTickets(ctx, helpdesk.TicketFilter{SchoolID: schoolID})
	if err != nil {
		return nil, NewSupportError(ErrHelpdeskUnavailable, apiErrors.ErrExternalService, err.Error())
	}

	// o helpdesk filtra pela tag, mas a escola é conferida de novo
	result := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if belongsToSchool(ticket, schoolID) {
			result = append(result, ticket)
		}
	}

	return result, nil
}

func (s *Service) GetTicket(ctx context.Context, schoolID, reference, requesterEmail string) (*domain.Ticket, error) {
	return s.findTicket(ctx, schoolID, reference, requesterEmail)
}

func (s *Service) AddComment(ctx context.Context, schoolID, reference string, request domain.AddCommentRequest) (*domain.Ticket, error) {
	if strings.TrimSpace(request.Body) == "" || strings.TrimSpace(request.AuthorEmail) == "" {
		return nil, NewSupportError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Comentário e e-mail são obrigatórios")
	}

	ticket, err := s.findTicket(ctx, schoolID, reference, request.AuthorEmail)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(ticket.ID, 10, 64)
	if err != nil {
		return nil, NewSupportError(ErrTicketNotFound, apiErrors.ErrNotFound, ticket.ID)
	}

	if err := s.helpdeskService.AddComment(ctx, id, request); err != nil {
		return nil, NewSupportError(ErrHelpdeskUnavailable, apiErrors.ErrExternalService, err.Error())
	}

	return ticket, nil
}
