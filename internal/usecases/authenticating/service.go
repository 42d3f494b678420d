package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/school-portal-api/infrastructure/repository"
	"github.com/vfg2006/school-portal-api/internal/config"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
	"github.com/vfg2006/school-portal-api/pkg/log"
)

const defaultTokenDuration = 24 * time.Hour

type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	ListUsers(ctx context.Context, schoolID *string) ([]*domain.User, error)
	UpdateUser(ctx context.Context, request *domain.UpdateUserRequest) error
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
	ResetPassword(ctx context.Context, userID int) (string, error)
}

type Service struct {
	userRepo      repository.UserRepository
	secretKey     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	tokenDuration := cfg.Auth.TokenDuration
	if tokenDuration <= 0 {
		tokenDuration = defaultTokenDuration
	}

	return &Service{
		userRepo:      userRepo,
		secretKey:     []byte(cfg.Auth.SecretKey),
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao consultar usuário")
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("Login realizado")
	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserID:       user.ID,
		UserName:     user.Name,
		UserLastname: user.Lastname,
		UserEmail:    user.Email,
		UserRoleID:   user.RoleID,
		UserSchoolID: user.SchoolID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.Lastname == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome, sobrenome e senha são obrigatórios")
	}

	if user.RoleID == 0 {
		user.RoleID = domain.RoleUser
	}

	if err := validateRole(user.RoleID, user.SchoolID); err != nil {
		return nil, err
	}

	if err := ValidatePasswordStrength(user.PasswordHash); err != nil {
		return nil, err
	}

	user.Email = handleEmail(user.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	user.PasswordHash = string(hashedPassword)
	user.Active = true

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
		}
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	created.PasswordHash = ""
	return created, nil
}

func (s *Service) ListUsers(ctx context.Context, schoolID *string) ([]*domain.User, error) {
	users, err := s.userRepo.ListUser(ctx, schoolID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar usuários")
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários")
	}

	return users, nil
}

func (s *Service) UpdateUser(ctx context.Context, request *domain.UpdateUserRequest) error {
	if request.ID == 0 {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	current, err := s.getUser(ctx, request.ID)
	if err != nil {
		return err
	}

	roleID := current.RoleID
	if request.RoleID != nil {
		roleID = *request.RoleID
	}
	schoolID := current.SchoolID
	if request.SchoolID != nil {
		schoolID = request.SchoolID
		if *request.SchoolID == "" {
			schoolID = nil
		}
	}

	if err := validateRole(roleID, schoolID); err != nil {
		return err
	}

	if request.Email != nil {
		email := handleEmail(*request.Email)
		request.Email = &email
	}

	return s.updateUser(ctx, request, "")
}

// ChangePassword altera a senha do próprio usuário, conferindo a senha atual
func (s *Service) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrWrongPassword, apiErrors.ErrInvalidCredentials, userID, "")
	}

	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, apiErrors.ErrInvalidRequest, userID, "")
	}

	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewUserAuthError(err, apiErrors.ErrInternalServer, userID, "Erro ao gerar hash da senha")
	}

	return s.updateUser(ctx, &domain.UpdateUserRequest{ID: userID}, string(hashedPassword))
}

// ResetPassword gera uma senha forte para o usuário e a devolve uma única vez
func (s *Service) ResetPassword(ctx context.Context, userID int) (string, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return "", err
	}

	newPassword, err := generateStrongPassword(generatedPasswordLength)
	if err != nil {
		return "", NewUserAuthError(ErrPasswordGeneration, apiErrors.ErrInternalServer, userID, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", NewUserAuthError(ErrPasswordGeneration, apiErrors.ErrInternalServer, userID, err.Error())
	}

	if err := s.updateUser(ctx, &domain.UpdateUserRequest{ID: userID}, string(hashedPassword)); err != nil {
		return "", err
	}

	log.ForContext(ctx).WithField("user_id", userID).Info("Senha redefinida")
	return newPassword, nil
}

func (s *Service) getUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("Erro ao buscar usuário")
		return nil, NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "")
	}

	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	return user, nil
}

func (s *Service) updateUser(ctx context.Context, request *domain.UpdateUserRequest, passwordHash string) error {
	err := s.userRepo.UpdateUser(ctx, request, passwordHash)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, request.ID, "")
	case errors.Is(err, repository.ErrAlreadyExists):
		return NewUserAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, request.ID, "Email já cadastrado")
	}

	log.ForContext(ctx).WithError(err).WithField("user_id", request.ID).Error("Erro ao atualizar usuário")
	return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "")
}

// validateRole garante que gestores e usuários finais estejam vinculados a uma escola
func validateRole(roleID int, schoolID *string) error {
	switch roleID {
	case domain.RoleAdmin:
		return nil
	case domain.RoleSchoolManager, domain.RoleUser:
		if schoolID == nil || *schoolID == "" {
			return NewAuthError(ErrSchoolRequired, apiErrors.ErrMissingRequiredData, "")
		}
		return nil
	}

	return NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidFormat, fmt.Sprintf("role_id %d", roleID))
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
