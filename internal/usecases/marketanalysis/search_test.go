package marketanalysis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps"
	"github.com/vfg2006/school-portal-api/internal/domain"
)

// scriptedPaginator devolve as páginas na ordem; depois da última repete a última
type scriptedPaginator struct {
	pages []scriptedPage
	calls []googlemaps.NearbySearchRequest
}

type scriptedPage struct {
	competitors int
	token       string
	err         error
}

func (p *scriptedPaginator) NearbySearch(_ context.Context, request googlemaps.NearbySearchRequest) (*googlemaps.NearbyPage, error) {
	p.calls = append(p.calls, request)

	idx := len(p.calls) - 1
	if idx >= len(p.pages) {
		idx = len(p.pages) - 1
	}
	page := p.pages[idx]
	if page.err != nil {
		return nil, page.err
	}

	competitors := make([]domain.Competitor, page.competitors)
	for i := range competitors {
		competitors[i] = domain.Competitor{PlaceID: fmt.Sprintf("p%d-%d", len(p.calls), i), Name: "Colégio"}
	}

	return &googlemaps.NearbyPage{Competitors: competitors, NextPageToken: page.token}, nil
}

type recordingWaiter struct {
	waits []time.Duration
	err   error
}

func (w *recordingWaiter) wait(_ context.Context, d time.Duration) error {
	w.waits = append(w.waits, d)
	return w.err
}

var center = domain.Coordinate{Lat: -23.55, Lng: -46.63}

func TestCompetitorSearch_SinglePage(t *testing.T) {
	paginator := &scriptedPaginator{pages: []scriptedPage{{competitors: 3}}}
	waiter := &recordingWaiter{}

	result, err := NewCompetitorSearch(paginator, waiter.wait, 0).Run(context.Background(), center, 10000)
	require.NoError(t, err)

	assert.Len(t, result.Competitors, 3)
	assert.Equal(t, 1, result.PagesFetched)
	assert.False(t, result.Degraded)
	assert.Empty(t, waiter.waits)
	assert.Equal(t, []SearchState{StateFetching, StateDone}, result.States)
	assert.Equal(t, googlemaps.NearbySearchRequest{Center: center, Radius: 10000}, paginator.calls[0])
}

func TestCompetitorSearch_FollowsTokensWithDelay(t *testing.T) {
	paginator := &scriptedPaginator{pages: []scriptedPage{
		{competitors: 20, token: "t2"},
		{competitors: 20, token: "t3"},
		{competitors: 5},
	}}
	waiter := &recordingWaiter{}

	result, err := NewCompetitorSearch(paginator, waiter.wait, 3*time.Second).Run(context.Background(), center, 5000)
	require.NoError(t, err)

	assert.Len(t, result.Competitors, 45)
	assert.Equal(t, 3, result.PagesFetched)
	assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second}, waiter.waits)
	assert.Equal(t, "t2", paginator.calls[1].PageToken)
	assert.Equal(t, "t3", paginator.calls[2].PageToken)
	assert.Equal(t, []SearchState{
		StateFetching, StateWaitingForNextPage,
		StateFetching, StateWaitingForNextPage,
		StateFetching, StateDone,
	}, result.States)
}

func TestCompetitorSearch_DefaultDelay(t *testing.T) {
	paginator := &scriptedPaginator{pages: []scriptedPage{{competitors: 1, token: "t2"}, {competitors: 1}}}
	waiter := &recordingWaiter{}

	_, err := NewCompetitorSearch(paginator, waiter.wait, 0).Run(context.Background(), center, 5000)
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{DefaultPageTokenDelay}, waiter.waits)
}

func TestCompetitorSearch_NeverExceedsMaxResults(t *testing.T) {
	paginator := &scriptedPaginator{pages: []scriptedPage{{competitors: 25, token: "next"}}}
	waiter := &recordingWaiter{}

	result, err := NewCompetitorSearch(paginator, waiter.wait, time.Millisecond).Run(context.Background(), center, 5000)
	require.NoError(t, err)

	assert.Len(t, result.Competitors, MaxCompetitorResults)
	assert.Equal(t, 3, result.PagesFetched)
	assert.False(t, result.Degraded)
}

func TestCompetitorSearch_NeverExceedsMaxPageFetches(t *testing.T) {
	// upstream sempre afirma que há mais páginas, com páginas vazias
	paginator := &scriptedPaginator{pages: []scriptedPage{{competitors: 0, token: "forever"}}}
	waiter := &recordingWaiter{}

	result, err := NewCompetitorSearch(paginator, waiter.wait, time.Millisecond).Run(context.Background(), center, 5000)
	require.NoError(t, err)

	assert.Len(t, paginator.calls, MaxPageFetches)
	assert.Equal(t, MaxPageFetches, result.PagesFetched)
	assert.Len(t, waiter.waits, MaxPageFetches-1)
	assert.Empty(t, result.Competitors)
	assert.False(t, result.Degraded)
}

func TestCompetitorSearch_FirstPageFailureIsFatal(t *testing.T) {
	upstream := &googlemaps.StatusError{Operation: googlemaps.OperationNearbySearch, Status: "REQUEST_DENIED"}
	paginator := &scriptedPaginator{pages: []scriptedPage{{err: upstream}}}
	waiter := &recordingWaiter{}

	result, err := NewCompetitorSearch(paginator, waiter.wait, time.Millisecond).Run(context.Background(), center, 5000)

	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, []SearchState{StateFetching, StateFailed}, result.States)
	assert.Len(t, paginator.calls, 1)
}

func TestCompetitorSearch_LaterPageFailureIsDegraded(t *testing.T) {
	paginator := &scriptedPaginator{pages: []scriptedPage{
		{competitors: 20, token: "t2"},
		{err: &googlemaps.StatusError{Status: "INVALID_REQUEST"}},
	}}
	waiter := &recordingWaiter{}

	result, err := NewCompetitorSearch(paginator, waiter.wait, time.Millisecond).Run(context.Background(), center, 5000)
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Len(t, result.Competitors, 20)
	assert.Equal(t, 2, result.PagesFetched)
	assert.Equal(t, StateDone, result.States[len(result.States)-1])
}

func TestCompetitorSearch_CancelledWhileWaiting(t *testing.T) {
	paginator := &scriptedPaginator{pages: []scriptedPage{{competitors: 20, token: "t2"}}}
	waiter := &recordingWaiter{err: context.DeadlineExceeded}

	result, err := NewCompetitorSearch(paginator, waiter.wait, time.Millisecond).Run(context.Background(), center, 5000)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, paginator.calls, 1)
	assert.Equal(t, StateFailed, result.States[len(result.States)-1])
}

func TestCompetitorSearch_CancelledContextOnLaterPageIsFatal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	paginator := paginatorFunc(func(context.Context, googlemaps.NearbySearchRequest) (*googlemaps.NearbyPage, error) {
		calls++
		if calls == 1 {
			return &googlemaps.NearbyPage{Competitors: competitorsNamed("A"), NextPageToken: "t2"}, nil
		}
		cancel()
		return nil, errors.New("request canceled")
	})

	_, err := NewCompetitorSearch(paginator, func(context.Context, time.Duration) error { return nil }, time.Millisecond).
		Run(ctx, center, 5000)

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestSleepWaiter(t *testing.T) {
	assert.NoError(t, SleepWaiter(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, SleepWaiter(ctx, time.Hour), context.Canceled)
}

func TestSearchState_String(t *testing.T) {
	assert.Equal(t, "fetching", StateFetching.String())
	assert.Equal(t, "waiting_for_next_page", StateWaitingForNextPage.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "failed", StateFailed.String())
}

type paginatorFunc func(ctx context.Context, request googlemaps.NearbySearchRequest) (*googlemaps.NearbyPage, error)

func (f paginatorFunc) NearbySearch(ctx context.Context, request googlemaps.NearbySearchRequest) (*googlemaps.NearbyPage, error) {
	return f(ctx, request)
}
