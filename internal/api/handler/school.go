package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/internal/usecases/school"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
)

func CreateSchool(service school.SchoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateSchoolRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		created, err := service.Create(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

// ListSchools aceita ?active=true|false
func ListSchools(service school.SchoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filters domain.SchoolFilters

		if value := r.URL.Query().Get("active"); value != "" {
			active, err := strconv.ParseBool(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro active inválido", nil)
				return
			}
			filters.Active = &active
		}

		schools, err := service.List(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, schools)
	}
}

func GetSchool(service school.SchoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, _, ok := schoolFromPath(w, r)
		if !ok {
			return
		}

		found, err := service.Get(r.Context(), schoolID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, found)
	}
}

func UpdateSchool(service school.SchoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, claims, ok := schoolFromPath(w, r)
		if !ok {
			return
		}

		var req domain.UpdateSchoolRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = schoolID

		updated, err := service.Update(r.Context(), claims, &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

func DeactivateSchool(service school.SchoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, _, ok := schoolFromPath(w, r)
		if !ok {
			return
		}

		if err := service.Deactivate(r.Context(), schoolID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
