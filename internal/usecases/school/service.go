package school

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/school-portal-api/infrastructure/repository"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
	"github.com/vfg2006/school-portal-api/pkg/log"
	"github.com/vfg2006/school-portal-api/pkg/utils"
)

type SchoolService interface {
	Create(ctx context.Context, request *domain.CreateSchoolRequest) (*domain.School, error)
	Get(ctx context.Context, schoolID string) (*domain.School, error)
	List(ctx context.Context, filters domain.SchoolFilters) ([]*domain.School, error)
	Update(ctx context.Context, claims *domain.Claims, request *domain.UpdateSchoolRequest) (*domain.School, error)
	Deactivate(ctx context.Context, schoolID string) error
}

type Service struct {
	schoolRepository repository.SchoolRepository
	generateID       func() (string, error)
}

func NewService(schoolRepository repository.SchoolRepository) SchoolService {
	return &Service{
		schoolRepository: schoolRepository,
		generateID:       utils.GenerateID,
	}
}

func (s *Service) Create(ctx context.Context, request *domain.CreateSchoolRequest) (*domain.School, error) {
	request.Name = strings.TrimSpace(request.Name)
	if request.Name == "" {
		return nil, NewSchoolError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome da escola é obrigatório")
	}

	school := &domain.School{
		Name:           request.Name,
		Slug:           utils.Slugify(request.Slug),
		CNPJ:           request.CNPJ,
		Address:        request.Address,
		ContactEmail:   request.ContactEmail,
		LogoURL:        request.LogoURL,
		PrimaryColor:   request.PrimaryColor,
		SecondaryColor: request.SecondaryColor,
		WebsiteURL:     request.WebsiteURL,
		ERPURL:         request.ERPURL,
		LMSURL:         request.LMSURL,
		HelpdeskURL:    request.HelpdeskURL,
		Active:         true,
	}

	if school.FullAddress() == "" || strings.TrimSpace(school.Address.City) == "" {
		return nil, NewSchoolError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Endereço com cidade é obrigatório")
	}

	if school.Slug == "" {
		school.Slug = utils.Slugify(school.Name)
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewSchoolError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	school.ID = id

	// nomes sem letras ou dígitos não geram slug
	if school.Slug == "" {
		school.Slug = utils.Slugify(id)
	}

	if err := s.schoolRepository.Create(ctx, school); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, NewSchoolError(ErrSchoolAlreadyExists, apiErrors.ErrConflict, "Slug já cadastrado")
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao criar escola")
		return nil, NewSchoolError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar escola")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"school_id": school.ID,
		"slug":      school.Slug,
	}).Info("Escola criada")

	return school, nil
}

func (s *Service) Get(ctx context.Context, schoolID string) (*domain.School, error) {
	school, err := s.schoolRepository.GetByID(ctx, schoolID)
	if err != nil {
		return nil, NewSchoolErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, schoolID, "Falha ao buscar escola")
	}

	if school == nil {
		return nil, NewSchoolErrorWithID(ErrSchoolNotFound, apiErrors.ErrNotFound, schoolID, schoolID)
	}

	return school, nil
}

func (s *Service) List(ctx context.Context, filters domain.SchoolFilters) ([]*domain.School, error) {
	schools, err := s.schoolRepository.List(ctx, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar escolas")
		return nil, NewSchoolError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar escolas")
	}

	return schools, nil
}

// Update aplica uma atualização parcial. Gestores não podem alterar o status da escola.
func (s *Service) Update(ctx context.Context, claims *domain.Claims, request *domain.UpdateSchoolRequest) (*domain.School, error) {
	if request.ID == "" {
		return nil, NewSchoolError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID da escola é obrigatório")
	}

	if request.IsEmpty() {
		return nil, NewSchoolErrorWithID(ErrNothingToUpdate, apiErrors.ErrInvalidRequest, request.ID, "")
	}

	if request.Active != nil && !claims.IsAdmin() {
		return nil, NewSchoolErrorWithID(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, request.ID, "")
	}

	if request.Name != nil && strings.TrimSpace(*request.Name) == "" {
		return nil, NewSchoolErrorWithID(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, request.ID, "Nome da escola não pode ser vazio")
	}

	if err := s.schoolRepository.Update(ctx, request); err != nil {
		return nil, s.writeError(ctx, err, request.ID)
	}

	return s.Get(ctx, request.ID)
}

// Deactivate desativa a escola; registros de escola nunca são apagados
func (s *Service) Deactivate(ctx context.Context, schoolID string) error {
	active := false

	if err := s.schoolRepository.Update(ctx, &domain.UpdateSchoolRequest{ID: schoolID, Active: &active}); err != nil {
		return s.writeError(ctx, err, schoolID)
	}

	log.ForContext(ctx).WithField("school_id", schoolID).Info("Escola desativada")
	return nil
}

func (s *Service) writeError(ctx context.Context, err error, schoolID string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewSchoolErrorWithID(ErrSchoolNotFound, apiErrors.ErrNotFound, schoolID, schoolID)
	case errors.Is(err, repository.ErrAlreadyExists):
		return NewSchoolErrorWithID(ErrSchoolAlreadyExists, apiErrors.ErrConflict, schoolID, "Escola já cadastrada")
	}

	log.ForContext(ctx).WithError(err).WithField("school_id", schoolID).Error("Erro ao atualizar escola")
	return NewSchoolErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, schoolID, "Falha ao atualizar escola")
}
