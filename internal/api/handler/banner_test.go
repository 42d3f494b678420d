package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/school-portal-api/internal/api/handler"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/internal/usecases/banner"
	"github.com/vfg2006/school-portal-api/internal/usecases/banner/mocks"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
)

func TestCreateBanner_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockBannerService(ctrl)

	service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, banner.NewBannerError(banner.ErrInvalidWindow, apiErrors.ErrInvalidRequest, ""))

	rec := serve(t, handler.Banners(service), adminClaims, http.MethodPost, "/v1/banners", `{"title":"Matrículas"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeBody(t, rec)["code"])
}

func TestBannerCRUD_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockBannerService(ctrl)

	rec := serve(t, handler.Banners(service), managerClaims, http.MethodPost, "/v1/banners", `{"title":"x"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(t, handler.Banners(service), managerClaims, http.MethodDelete, "/v1/banners/B1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateAndDeleteBanner(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockBannerService(ctrl)

	service.EXPECT().
		Update(gomock.Any(), "B1", &domain.BannerRequest{Title: ptr("Férias")}).
		Return(&domain.Banner{ID: "B1", Title: "Férias"}, nil)
	service.EXPECT().Delete(gomock.Any(), "B1").Return(nil)

	rec := serve(t, handler.Banners(service), adminClaims, http.MethodPut, "/v1/banners/B1", `{"title":"Férias"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, handler.Banners(service), adminClaims, http.MethodDelete, "/v1/banners/B1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListActiveBanners_UsesCallerRoleAndSchool(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockBannerService(ctrl)

	before := time.Now()
	service.EXPECT().
		ListActive(gomock.Any(), domain.RoleUser, userClaims.UserSchoolID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ *string, now time.Time) ([]*domain.Banner, error) {
			assert.False(t, now.Before(before))
			return []*domain.Banner{{ID: "B1", Title: "Reunião de pais"}}, nil
		})

	rec := serve(t, handler.Banners(service), userClaims, http.MethodGet, "/v1/me/banners", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reunião de pais")
}
