package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/internal/usecases/banner"
)

func CreateBanner(service banner.BannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.BannerRequest
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

func UpdateBanner(service banner.BannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.BannerRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		bannerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		updated, err := service.Update(r.Context(), bannerID, &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteBanner(service banner.BannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bannerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), bannerID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListBanners(service banner.BannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, banners)
	}
}

// ListActiveBanners devolve os banners do dashboard do usuário logado
func ListActiveBanners(service banner.BannerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		banners, err := service.ListActive(r.Context(), claims.UserRoleID, claims.UserSchoolID, time.Now())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, banners)
	}
}
