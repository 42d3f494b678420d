package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/school-portal-api/internal/api/handler"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/internal/usecases/authenticating"
	"github.com/vfg2006/school-portal-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		err          error
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "sucesso",
			token:        "jwt-token",
			expectedCode: http.StatusOK,
		},
		{
			name:         "usuário inexistente vira credencial inválida",
			err:          authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, ""),
			expectedCode: http.StatusUnauthorized,
			expectedErr:  apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "usuário desativado também",
			err:          authenticating.NewAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, ""),
			expectedCode: http.StatusUnauthorized,
			expectedErr:  apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)

			service.EXPECT().LoginUser(gomock.Any(), "ana@escola.com", "segredo123").Return(tt.token, tt.err)

			rec := serve(t, handler.Authentication(service), nil, http.MethodPost, "/v1/login",
				`{"email":"ana@escola.com","password":"segredo123"}`)

			require.Equal(t, tt.expectedCode, rec.Code)
			body := decodeBody(t, rec)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, body["code"])
				return
			}
			assert.Equal(t, tt.token, body["token"])
		})
	}
}

func TestChangePassword_OnlySelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)

	service.EXPECT().ChangePassword(gomock.Any(), userClaims.UserID, "antiga", "NovaSenha#1").Return(nil)

	body := `{"current_password":"antiga","new_password":"NovaSenha#1"}`

	rec := serve(t, handler.Authentication(service), userClaims, http.MethodPost, "/v1/users/3/change-password", body)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, handler.Authentication(service), userClaims, http.MethodPost, "/v1/users/1/change-password", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGeneratePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)

	service.EXPECT().ResetPassword(gomock.Any(), 3).Return("Gerada#12345", nil)

	rec := serve(t, handler.Authentication(service), adminClaims, http.MethodPost, "/v1/users/3/generate-password", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Gerada#12345", decodeBody(t, rec)["password"])

	rec = serve(t, handler.Authentication(service), adminClaims, http.MethodPost, "/v1/users/abc/generate-password", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUser_SelfOrAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)

	service.EXPECT().GetUserProfile(gomock.Any(), 3).Return(&domain.User{ID: 3, Email: "aluno@escola.com"}, nil).Times(2)

	rec := serve(t, handler.User(service), userClaims, http.MethodGet, "/v1/users/3", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, handler.User(service), adminClaims, http.MethodGet, "/v1/users/3", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, handler.User(service), managerClaims, http.MethodGet, "/v1/users/3", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateUser_PassesPlainPasswordToService(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)

	service.EXPECT().
		CreateUser(gomock.Any(), &domain.User{
			Name:         "Bia",
			Email:        "bia@escola.com",
			PasswordHash: "SenhaForte#1",
			RoleID:       domain.RoleSchoolManager,
			SchoolID:     ptr("SCH1"),
		}).
		Return(&domain.User{ID: 7, Name: "Bia", RoleID: domain.RoleSchoolManager, SchoolID: ptr("SCH1")}, nil)

	rec := serve(t, handler.User(service), adminClaims, http.MethodPost, "/v1/users",
		`{"name":"Bia","email":"bia@escola.com","password":"SenhaForte#1","role_id":2,"school_id":"SCH1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListUsers_SchoolFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)

	service.EXPECT().ListUsers(gomock.Any(), ptr("SCH1")).Return([]*domain.User{}, nil)

	rec := serve(t, handler.User(service), adminClaims, http.MethodGet, "/v1/users?school_id=SCH1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
