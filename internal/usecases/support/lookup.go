package support

import (
	"context"
	"strconv"
	"strings"

	"github.com/vfg2006/school-portal-api/infrastructure/integrator/helpdesk"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
	"github.com/vfg2006/school-portal-api/pkg/log"
)

// Estratégias de busca, na ordem em que são tentadas
const (
	StrategyNumericID        = "numeric_id"
	StrategyProtocol         = "protocol"
	StrategyReferenceTag     = "reference_tag"
	StrategyRequesterSubject = "requester_subject"
	StrategySubjectSearch    = "subject_search"
)

type lookupStrategy struct {
	name  string
	find  func(ctx context.Context) ([]domain.Ticket, error)
	match func(ticket domain.Ticket) bool
}

func (s *Service) lookupStrategies(schoolID, reference, requesterEmail string) []lookupStrategy {
	strategies := make([]lookupStrategy, 0, 5)

	if id, err := strconv.ParseInt(reference, 10, 64); err == nil && id > 0 {
		strategies = append(strategies, lookupStrategy{
			name: StrategyNumericID,
			find: func(ctx context.Context) ([]domain.Ticket, error) {
				ticket, err := s.helpdeskService.GetTicket(ctx, id)
				if err != nil || ticket == nil {
					return nil, err
				}
				return []domain.Ticket{*ticket}, nil
			},
			match: func(domain.Ticket) bool { return true },
		})
	}

	strategies = append(strategies,
		lookupStrategy{
			name: StrategyProtocol,
			find: func(ctx context.Context) ([]domain.Ticket, error) {
				return s.helpdeskService.SearchTickets(ctx, helpdesk.TicketFilter{Protocol: reference})
			},
			match: func(ticket domain.Ticket) bool { return strings.EqualFold(ticket.Protocol, reference) },
		},
		lookupStrategy{
			name: StrategyReferenceTag,
			find: func(ctx context.Context) ([]domain.Ticket, error) {
				return s.helpdeskService.SearchTickets(ctx, helpdesk.TicketFilter{SchoolID: schoolID, Reference: reference})
			},
			match: func(ticket domain.Ticket) bool { return strings.EqualFold(ticket.Reference, reference) },
		},
	)

	if requesterEmail != "" {
		strategies = append(strategies, lookupStrategy{
			name: StrategyRequesterSubject,
			find: func(ctx context.Context) ([]domain.Ticket, error) {
				return s.helpdeskService.SearchTickets(ctx, helpdesk.TicketFilter{SchoolID: schoolID, RequesterEmail: requesterEmail})
			},
			match: func(ticket domain.Ticket) bool {
				return strings.EqualFold(ticket.RequesterEmail, requesterEmail) && subjectContains(ticket, reference)
			},
		})
	}

	strategies = append(strategies, lookupStrategy{
		name: StrategySubjectSearch,
		find: func(ctx context.Context) ([]domain.Ticket, error) {
			return s.helpdeskService.SearchTickets(ctx, helpdesk.TicketFilter{SchoolID: schoolID, Query: reference})
		},
		match: func(ticket domain.Ticket) bool { return subjectContains(ticket, reference) },
	})

	return strategies
}

// findTicket tenta cada estratégia na ordem e devolve o primeiro ticket da escola encontrado.
// Falha em uma estratégia apenas passa para a próxima.
func (s *Service) findTicket(ctx context.Context, schoolID, reference, requesterEmail string) (*domain.Ticket, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, NewSupportError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Informe o número, protocolo ou referência do ticket")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"school_id": schoolID,
		"reference": reference,
	})

	strategies := s.lookupStrategies(schoolID, reference, requesterEmail)
	failures := 0

	for _, strategy := range strategies {
		tickets, err := strategy.find(ctx)
		if err != nil {
			failures++
			logger.WithError(err).WithField("strategy", strategy.name).Warn("Estratégia de busca de ticket falhou")
			continue
		}

		for i := range tickets {
			if !belongsToSchool(tickets[i], schoolID) || !strategy.match(tickets[i]) {
				continue
			}

			logger.WithField("strategy", strategy.name).Debug("Ticket encontrado")
			return &tickets[i], nil
		}
	}

	if failures == len(strategies) {
		return nil, NewSupportError(ErrHelpdeskUnavailable, apiErrors.ErrExternalService, "Nenhuma estratégia de busca conseguiu consultar o helpdesk")
	}

	return nil, NewSupportError(ErrTicketNotFound, apiErrors.ErrNotFound, reference)
}

func belongsToSchool(ticket domain.Ticket, schoolID string) bool {
	return ticket.SchoolID != "" && strings.EqualFold(ticket.SchoolID, schoolID)
}

func subjectContains(ticket domain.Ticket, reference string) bool {
	return strings.Contains(strings.ToLower(ticket.Subject), strings.ToLower(reference))
}
