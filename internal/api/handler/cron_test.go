package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/school-portal-api/internal/api/handler"
)

type fakeCronJob struct {
	started bool
	calls   int
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.calls++
	return f.started
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"running": !f.started}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		started      bool
		expectedCode int
		expectedRuns int
	}{
		{"dispara análise de mercado", "/v1/cron/run/market-analysis", true, http.StatusAccepted, 1},
		{"já em andamento", "/v1/cron/run/market-analysis", false, http.StatusConflict, 1},
		{"todas", "/v1/cron/run/all", true, http.StatusAccepted, 1},
		{"tipo desconhecido", "/v1/cron/run/meta", true, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{started: tt.started}
			services := handler.CronJobServices{handler.CronJobTypeMarketAnalysis: job}

			rec := serve(t, handler.CronJobs(services), adminClaims, http.MethodPost, tt.path, "")

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedRuns, job.calls)
		})
	}
}

func TestCronRoutes_AdminOnly(t *testing.T) {
	services := handler.CronJobServices{handler.CronJobTypeMarketAnalysis: &fakeCronJob{}}

	rec := serve(t, handler.CronJobs(services), managerClaims, http.MethodGet, "/v1/cron/status", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetCronStatus(t *testing.T) {
	services := handler.CronJobServices{handler.CronJobTypeMarketAnalysis: &fakeCronJob{}}

	rec := serve(t, handler.CronJobs(services), adminClaims, http.MethodGet, "/v1/cron/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec), handler.CronJobTypeMarketAnalysis)
}
