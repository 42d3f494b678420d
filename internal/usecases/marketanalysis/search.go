package marketanalysis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/log"
)

// Limites da busca paginada
const (
	MaxCompetitorResults  = 60
	MaxPageFetches        = 6
	DefaultPageTokenDelay = 2 * time.Second
)

type SearchState int

const (
	StateFetching SearchState = iota
	StateWaitingForNextPage
	StateDone
	StateFailed
)

func (s SearchState) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateWaitingForNextPage:
		return "waiting_for_next_page"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Paginator busca uma página da nearby search
type Paginator interface {
	NearbySearch(ctx context.Context, request googlemaps.NearbySearchRequest) (*googlemaps.NearbyPage, error)
}

// Waiter bloqueia pelo tempo informado ou até o contexto ser cancelado
type Waiter func(ctx context.Context, d time.Duration) error

// SleepWaiter é o Waiter padrão
func SleepWaiter(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type SearchResult struct {
	Competitors  []domain.Competitor
	PagesFetched int
	// Degraded indica que uma página depois da primeira falhou
	Degraded bool
	// States registra as transições percorridas, na ordem
	States []SearchState
}

type CompetitorSearch struct {
	paginator  Paginator
	wait       Waiter
	pageDelay  time.Duration
	maxResults int
	maxPages   int
}

func NewCompetitorSearch(paginator Paginator, wait Waiter, pageDelay time.Duration) *CompetitorSearch {
	if wait == nil {
		wait = SleepWaiter
	}
	if pageDelay <= 0 {
		pageDelay = DefaultPageTokenDelay
	}

	return &CompetitorSearch{
		paginator:  paginator,
		wait:       wait,
		pageDelay:  pageDelay,
		maxResults: MaxCompetitorResults,
		maxPages:   MaxPageFetches,
	}
}

// Run percorre Fetching -> WaitingForNextPage -> ... -> Done | Failed.
// Falha na primeira página é fatal; falha nas seguintes encerra com resultado parcial e Degraded.
// Cancelamento do contexto é sempre fatal.
func (s *CompetitorSearch) Run(ctx context.Context, center domain.Coordinate, radius int) (*SearchResult, error) {
	logger := log.ForContext(ctx)

	result := &SearchResult{
		Competitors: make([]domain.Competitor, 0),
	}

	var (
		state     = StateFetching
		pageToken string
		failure   error
	)

	for {
		result.States = append(result.States, state)

		switch state {
		case StateFetching:
			page, err := s.paginator.NearbySearch(ctx, googlemaps.NearbySearchRequest{
				Center:    center,
				Radius:    radius,
				PageToken: pageToken,
			})
			result.PagesFetched++

			if err != nil {
				if result.PagesFetched == 1 || ctx.Err() != nil {
					failure = err
					state = StateFailed
					continue
				}

				logger.WithError(err).WithFields(log.Fields{
					"page":        result.PagesFetched,
					"accumulated": len(result.Competitors),
				}).Warn("Falha em página intermediária da busca, retornando resultado parcial")

				result.Degraded = true
				state = StateDone
				continue
			}

			result.Competitors = append(result.Competitors, page.Competitors...)
			if len(result.Competitors) >= s.maxResults {
				result.Competitors = result.Competitors[:s.maxResults]
				state = StateDone
				continue
			}

			if page.NextPageToken == "" || result.PagesFetched >= s.maxPages {
				state = StateDone
				continue
			}

			pageToken = page.NextPageToken
			state = StateWaitingForNextPage

		case StateWaitingForNextPage:
			if err := s.wait(ctx, s.pageDelay); err != nil {
				failure = errors.Wrap(err, "busca cancelada aguardando próxima página")
				state = StateFailed
				continue
			}
			state = StateFetching

		case StateDone:
			logger.WithFields(log.Fields{
				"pages":       result.PagesFetched,
				"competitors": len(result.Competitors),
				"degraded":    result.Degraded,
			}).Debug("Busca de concorrentes finalizada")
			return result, nil

		case StateFailed:
			return result, failure
		}
	}
}
