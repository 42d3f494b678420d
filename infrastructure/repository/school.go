package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/school-portal-api/infrastructure/database/postgres"
	"github.com/vfg2006/school-portal-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound indica que nenhuma linha foi afetada/encontrada
var ErrNotFound = errors.New("registro não encontrado")

// ErrAlreadyExists indica violação de unicidade (ex.: slug repetido)
var ErrAlreadyExists = errors.New("registro já existe")

const (
	schoolsTable = "schools"
)

var schoolColumns = []string{
	"id", "name", "slug", "cnpj",
	"street", "number", "neighborhood", "city", "state", "zip_code",
	"contact_email", "logo_url", "primary_color", "secondary_color",
	"website_url", "erp_url", "lms_url", "helpdesk_url",
	"active", "market_analysis", "market_analysis_computed_at",
	"created_at", "updated_at",
}

type SchoolRepository interface {
	Create(ctx context.Context, school *domain.School) error
	GetByID(ctx context.Context, schoolID string) (*domain.School, error)
	List(ctx context.Context, filters domain.SchoolFilters) ([]*domain.School, error)
	Update(ctx context.Context, request *domain.UpdateSchoolRequest) error
	SaveMarketAnalysis(ctx context.Context, schoolID string, snapshot *domain.MarketAnalysisSnapshot) error
	ClearMarketAnalysis(ctx context.Context, schoolID string) error
	ListWithStaleMarketAnalysis(ctx context.Context, computedBefore time.Time) ([]*domain.School, error)
}

type schoolRepository struct {
	conn postgres.Queryer
}

func NewSchoolRepository(conn postgres.Queryer) SchoolRepository {
	return &schoolRepository{
		conn: conn,
	}
}

func (r *schoolRepository) Create(ctx context.Context, school *domain.School) error {
	query, args, err := squirrel.
		Insert(schoolsTable).
		Columns(
			"id", "name", "slug", "cnpj",
			"street", "number", "neighborhood", "city", "state", "zip_code",
			"contact_email", "logo_url", "primary_color", "secondary_color",
			"website_url", "erp_url", "lms_url", "helpdesk_url", "active",
		).
		Values(
			school.ID, school.Name, school.Slug, school.CNPJ,
			school.Address.Street, school.Address.Number, school.Address.Neighborhood,
			school.Address.City, school.Address.State, school.Address.ZipCode,
			school.ContactEmail, school.LogoURL, school.PrimaryColor, school.SecondaryColor,
			school.WebsiteURL, school.ERPURL, school.LMSURL, school.HelpdeskURL, school.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(ctx, query, args...).Scan(&school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("erro ao inserir escola: %w", err)
	}

	return nil
}

func (r *schoolRepository) GetByID(ctx context.Context, schoolID string) (*domain.School, error) {
	query, args, err := squirrel.
		Select(schoolColumns...).
		From(schoolsTable).
		Where(squirrel.Eq{"id": schoolID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	school, err := scanSchool(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar escola: %w", err)
	}

	return school, nil
}

func (r *schoolRepository) List(ctx context.Context, filters domain.SchoolFilters) ([]*domain.School, error) {
	queryBuilder := squirrel.
		Select(schoolColumns...).
		From(schoolsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Active != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"active": *filters.Active})
	}

	return r.list(ctx, queryBuilder)
}

func (r *schoolRepository) ListWithStaleMarketAnalysis(ctx context.Context, computedBefore time.Time) ([]*domain.School, error) {
	queryBuilder := squirrel.
		Select(schoolColumns...).
		From(schoolsTable).
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Or{
			squirrel.Eq{"market_analysis_computed_at": nil},
			squirrel.Lt{"market_analysis_computed_at": computedBefore},
		}).
		OrderBy("market_analysis_computed_at ASC NULLS FIRST").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, queryBuilder)
}

func (r *schoolRepository) list(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.School, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	schools := make([]*domain.School, 0)
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar escola: %w", err)
		}
		schools = append(schools, school)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return schools, nil
}

func (r *schoolRepository) Update(ctx context.Context, request *domain.UpdateSchoolRequest) error {
	if request.ID == "" {
		return errors.New("ID is required")
	}

	query, args, err := buildUpdateSchoolQuery(request)
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return checkAffected(result)
}

func buildUpdateSchoolQuery(request *domain.UpdateSchoolRequest) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Update(schoolsTable).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": request.ID}).
		PlaceholderFormat(squirrel.Dollar)

	optional := []struct {
		column string
		value  *string
	}{
		{"name", request.Name},
		{"cnpj", request.CNPJ},
		{"contact_email", request.ContactEmail},
		{"logo_url", request.LogoURL},
		{"primary_color", request.PrimaryColor},
		{"secondary_color", request.SecondaryColor},
		{"website_url", request.WebsiteURL},
		{"erp_url", request.ERPURL},
		{"lms_url", request.LMSURL},
		{"helpdesk_url", request.HelpdeskURL},
	}
	for _, field := range optional {
		if field.value != nil {
			queryBuilder = queryBuilder.Set(field.column, *field.value)
		}
	}

	if request.Address != nil {
		queryBuilder = queryBuilder.
			Set("street", request.Address.Street).
			Set("number", request.Address.Number).
			Set("neighborhood", request.Address.Neighborhood).
			Set("city", request.Address.City).
			Set("state", request.Address.State).
			Set("zip_code", request.Address.ZipCode)
	}

	if request.Active != nil {
		queryBuilder = queryBuilder.Set("active", *request.Active)
	}

	return queryBuilder.ToSql()
}

// SaveMarketAnalysis sobrescreve o snapshot da escola (last write wins)
func (r *schoolRepository) SaveMarketAnalysis(ctx context.Context, schoolID string, snapshot *domain.MarketAnalysisSnapshot) error {
	if snapshot == nil {
		return errors.New("snapshot is required")
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao serializar análise de mercado: %w", err)
	}

	query, args, err := squirrel.
		Update(schoolsTable).
		Set("market_analysis", string(payload)).
		Set("market_analysis_computed_at", snapshot.ComputedAt).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": schoolID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar análise de mercado: %w", err)
	}

	return checkAffected(result)
}

func (r *schoolRepository) ClearMarketAnalysis(ctx context.Context, schoolID string) error {
	query, args, err := squirrel.
		Update(schoolsTable).
		Set("market_analysis", nil).
		Set("market_analysis_computed_at", nil).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": schoolID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao limpar análise de mercado: %w", err)
	}

	return checkAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchool(row rowScanner) (*domain.School, error) {
	school := &domain.School{}
	var analysis []byte

	if err := row.Scan(
		&school.ID,
		&school.Name,
		&school.Slug,
		&school.CNPJ,
		&school.Address.Street,
		&school.Address.Number,
		&school.Address.Neighborhood,
		&school.Address.City,
		&school.Address.State,
		&school.Address.ZipCode,
		&school.ContactEmail,
		&school.LogoURL,
		&school.PrimaryColor,
		&school.SecondaryColor,
		&school.WebsiteURL,
		&school.ERPURL,
		&school.LMSURL,
		&school.HelpdeskURL,
		&school.Active,
		&analysis,
		&school.MarketAnalysisComputedAt,
		&school.CreatedAt,
		&school.UpdatedAt,
	); err != nil {
		return nil, err
	}

	snapshot, err := decodeSnapshot(analysis)
	if err != nil {
		return nil, err
	}
	school.MarketAnalysis = snapshot

	return school, nil
}

// decodeSnapshot trata NULL, '{}' e 'null' como ausência de análise
func decodeSnapshot(raw []byte) (*domain.MarketAnalysisSnapshot, error) {
	if len(raw) == 0 || string(raw) == "null" || string(raw) == "{}" {
		return nil, nil
	}

	snapshot := &domain.MarketAnalysisSnapshot{}
	if err := json.Unmarshal(raw, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao deserializar análise de mercado: %w", err)
	}

	return snapshot, nil
}

func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
