package handler

import (
	"net/http"

	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/internal/usecases/marketanalysis"
)

// AnalyzeAddress executa a análise para um endereço avulso, sem persistir
func AnalyzeAddress(service marketanalysis.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MarketAnalysisRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		snapshot, err := service.Analyze(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	}
}

// AnalyzeSchool aceita corpo vazio: usa o endereço cadastrado da escola
func AnalyzeSchool(service marketanalysis.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, _, ok := schoolFromPath(w, r)
		if !ok {
			return
		}

		var req domain.SchoolMarketAnalysisRequest
		if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
			return
		}

		response, err := service.AnalyzeSchool(r.Context(), schoolID, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func GetSchoolAnalysis(service marketanalysis.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, _, ok := schoolFromPath(w, r)
		if !ok {
			return
		}

		response, err := service.GetSchoolAnalysis(r.Context(), schoolID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func ClearSchoolAnalysis(service marketanalysis.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, _, ok := schoolFromPath(w, r)
		if !ok {
			return
		}

		if err := service.ClearSchoolAnalysis(r.Context(), schoolID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
