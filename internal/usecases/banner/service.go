package banner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/school-portal-api/infrastructure/repository"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
	"github.com/vfg2006/school-portal-api/pkg/log"
	"github.com/vfg2006/school-portal-api/pkg/utils"
)

type BannerService interface {
	Create(ctx context.Context, request *domain.BannerRequest) (*domain.Banner, error)
	Update(ctx context.Context, bannerID string, request *domain.BannerRequest) (*domain.Banner, error)
	Delete(ctx context.Context, bannerID string) error
	List(ctx context.Context) ([]*domain.Banner, error)
	ListActive(ctx context.Context, roleID int, schoolID *string, now time.Time) ([]*domain.Banner, error)
}

type Service struct {
	bannerRepository repository.BannerRepository
	generateID       func() (string, error)
	now              func() time.Time
}

func NewService(bannerRepository repository.BannerRepository) BannerService {
	return &Service{
		bannerRepository: bannerRepository,
		generateID:       utils.GenerateID,
		now:              time.Now,
	}
}

func (s *Service) Create(ctx context.Context, request *domain.BannerRequest) (*domain.Banner, error) {
	if request.Title == nil || strings.TrimSpace(*request.Title) == "" {
		return nil, NewBannerError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Título é obrigatório")
	}

	banner := &domain.Banner{
		Title:    strings.TrimSpace(*request.Title),
		ImageURL: request.ImageURL,
		LinkURL:  request.LinkURL,
		Audience: domain.BannerAudienceAll,
		Active:   true,
		StartsAt: s.now().UTC(),
		EndsAt:   request.EndsAt,
	}

	if request.Message != nil {
		banner.Message = *request.Message
	}
	if request.Audience != nil {
		banner.Audience = *request.Audience
	}
	if request.SchoolID != nil && *request.SchoolID != "" {
		banner.SchoolID = request.SchoolID
	}
	if request.Active != nil {
		banner.Active = *request.Active
	}
	if request.StartsAt != nil {
		banner.StartsAt = *request.StartsAt
	}

	if err := validate(banner); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewBannerError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	banner.ID = id

	if err := s.bannerRepository.Create(ctx, banner); err != nil {
		// chave estrangeira violada: school_id inexistente
		if errors.Is(err, repository.ErrNotFound) && banner.SchoolID != nil {
			return nil, NewBannerError(ErrSchoolNotFound, apiErrors.ErrNotFound, *banner.SchoolID)
		}
		return nil, s.writeError(ctx, err, banner.ID)
	}

	return banner, nil
}

func (s *Service) Update(ctx context.Context, bannerID string, request *domain.BannerRequest) (*domain.Banner, error) {
	current, err := s.get(ctx, bannerID)
	if err != nil {
		return nil, err
	}

	// valida o estado resultante, não apenas os campos enviados
	merged := *current
	if request.Title != nil {
		merged.Title = strings.TrimSpace(*request.Title)
		request.Title = &merged.Title
	}
	if request.Audience != nil {
		merged.Audience = *request.Audience
	}
	if request.StartsAt != nil {
		merged.StartsAt = *request.StartsAt
	}
	if request.EndsAt != nil {
		merged.EndsAt = request.EndsAt
	}

	if err := validate(&merged); err != nil {
		return nil, err
	}

	if err := s.bannerRepository.Update(ctx, bannerID, request); err != nil {
		return nil, s.writeError(ctx, err, bannerID)
	}

	return s.get(ctx, bannerID)
}

func (s *Service) Delete(ctx context.Context, bannerID string) error {
	if err := s.bannerRepository.Delete(ctx, bannerID); err != nil {
		return s.writeError(ctx, err, bannerID)
	}

	log.ForContext(ctx).WithField("banner_id", bannerID).Info("Banner removido")
	return nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Banner, error) {
	banners, err := s.bannerRepository.List(ctx)
	if err != nil {
		return nil, s.writeError(ctx, err, "")
	}

	return banners, nil
}

// ListActive devolve os banners visíveis para o role e a escola no instante informado
func (s *Service) ListActive(ctx context.Context, roleID int, schoolID *string, now time.Time) ([]*domain.Banner, error) {
	if now.IsZero() {
		now = s.now()
	}

	banners, err := s.bannerRepository.ListActive(ctx, domain.ActiveBannerFilters{
		Audience: domain.AudienceForRole(roleID),
		SchoolID: schoolID,
		At:       now.UTC(),
	})
	if err != nil {
		return nil, s.writeError(ctx, err, "")
	}

	return banners, nil
}

func (s *Service) get(ctx context.Context, bannerID string) (*domain.Banner, error) {
	banner, err := s.bannerRepository.GetByID(ctx, bannerID)
	if err != nil {
		return nil, s.writeError(ctx, err, bannerID)
	}

	if banner == nil {
		return nil, NewBannerError(ErrBannerNotFound, apiErrors.ErrNotFound, bannerID)
	}

	return banner, nil
}

func validate(banner *domain.Banner) error {
	if banner.Title == "" {
		return NewBannerError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Título é obrigatório")
	}

	if !banner.Audience.IsValid() {
		return NewBannerError(ErrInvalidAudience, apiErrors.ErrInvalidFormat, string(banner.Audience))
	}

	if banner.EndsAt != nil && !banner.EndsAt.After(banner.StartsAt) {
		return NewBannerError(ErrInvalidWindow, apiErrors.ErrInvalidRequest, "")
	}

	return nil
}

func (s *Service) writeError(ctx context.Context, err error, bannerID string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewBannerError(ErrBannerNotFound, apiErrors.ErrNotFound, bannerID)
	}

	log.ForContext(ctx).WithError(err).WithField("banner_id", bannerID).Error("Erro no repositório de banners")
	return NewBannerError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
}
