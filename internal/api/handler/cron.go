package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
	"github.com/vfg2006/school-portal-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMarketAnalysis = "market-analysis"
	CronJobTypeAll            = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron indexados pelo tipo
type CronJobServices map[string]CronJob

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		if cronType == CronJobTypeAll {
			results := make(map[string]bool, len(services))
			for name, job := range services {
				if job != nil {
					results[name] = job.TriggerManualSync()
				}
			}

			log.ForContext(r.Context()).WithField("jobs", results).Info("Execução manual de todas as cron jobs solicitada")
			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"message": "Cron jobs disparadas",
				"started": results,
			})
			return
		}

		job, exists := services[cronType]
		if !exists || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"accepted": []string{CronJobTypeMarketAnalysis, CronJobTypeAll},
			})
			return
		}

		started := job.TriggerManualSync()
		log.ForContext(r.Context()).WithFields(log.Fields{
			"type":    cronType,
			"started": started,
		}).Info("Execução manual de cron job solicitada")

		message := "Cron job iniciada com sucesso"
		status := http.StatusAccepted
		if !started {
			message = "Cron job já em andamento"
			status = http.StatusConflict
		}

		writeJSON(w, r, status, map[string]any{
			"message": message,
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			if job != nil {
				status[name] = job.GetStatus()
			}
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
