package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/school-portal-api/infrastructure/database/postgres"
	"github.com/vfg2006/school-portal-api/internal/domain"
)

const (
	bannersTable = "banners"
)

var bannerColumns = []string{
	"id", "title", "message", "image_url", "link_url", "audience", "school_id",
	"active", "starts_at", "ends_at", "created_at", "updated_at",
}

type BannerRepository interface {
	Create(ctx context.Context, banner *domain.Banner) error
	GetByID(ctx context.Context, bannerID string) (*domain.Banner, error)
	List(ctx context.Context) ([]*domain.Banner, error)
	ListActive(ctx context.Context, filters domain.ActiveBannerFilters) ([]*domain.Banner, error)
	Update(ctx context.Context, bannerID string, request *domain.BannerRequest) error
	Delete(ctx context.Context, bannerID string) error
}

type bannerRepository struct {
	conn postgres.Queryer
}

func NewBannerRepository(conn postgres.Queryer) BannerRepository {
	return &bannerRepository{
		conn: conn,
	}
}

func (r *bannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	query, args, err := squirrel.
		Insert(bannersTable).
		Columns("id", "title", "message", "image_url", "link_url", "audience", "school_id", "active", "starts_at", "ends_at").
		Values(banner.ID, banner.Title, banner.Message, banner.ImageURL, banner.LinkURL,
			string(banner.Audience), banner.SchoolID, banner.Active, banner.StartsAt, banner.EndsAt).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err = r.conn.QueryRow(ctx, query, args...).Scan(&banner.CreatedAt, &banner.UpdatedAt); err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("erro ao inserir banner: %w", err)
	}

	return nil
}

func (r *bannerRepository) GetByID(ctx context.Context, bannerID string) (*domain.Banner, error) {
	query, args, err := squirrel.
		Select(bannerColumns...).
		From(bannersTable).
		Where(squirrel.Eq{"id": bannerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	banner, err := scanBanner(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar banner: %w", err)
	}

	return banner, nil
}

func (r *bannerRepository) List(ctx context.Context) ([]*domain.Banner, error) {
	return r.list(ctx, squirrel.
		Select(bannerColumns...).
		From(bannersTable).
		OrderBy("starts_at DESC").
		PlaceholderFormat(squirrel.Dollar))
}

// ListActive devolve os banners visíveis para o público e a escola no instante informado
func (r *bannerRepository) ListActive(ctx context.Context, filters domain.ActiveBannerFilters) ([]*domain.Banner, error) {
	return r.list(ctx, buildActiveBannersQuery(filters))
}

func buildActiveBannersQuery(filters domain.ActiveBannerFilters) squirrel.SelectBuilder {
	schoolScope := squirrel.Or{squirrel.Eq{"school_id": nil}}
	if filters.SchoolID != nil {
		schoolScope = append(schoolScope, squirrel.Eq{"school_id": *filters.SchoolID})
	}

	return squirrel.
		Select(bannerColumns...).
		From(bannersTable).
		Where(squirrel.Eq{"active": true}).
		Where(squirrel.Eq{"audience": []string{string(domain.BannerAudienceAll), string(filters.Audience)}}).
		Where(schoolScope).
		Where(squirrel.LtOrEq{"starts_at": filters.At}).
		Where(squirrel.Or{
			squirrel.Eq{"ends_at": nil},
			squirrel.Gt{"ends_at": filters.At},
		}).
		OrderBy("starts_at DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *bannerRepository) list(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.Banner, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	banners := make([]*domain.Banner, 0)
	for rows.Next() {
		banner, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler banner: %w", err)
		}
		banners = append(banners, banner)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return banners, nil
}

func (r *bannerRepository) Update(ctx context.Context, bannerID string, request *domain.BannerRequest) error {
	queryBuilder := squirrel.
		Update(bannersTable).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": bannerID}).
		PlaceholderFormat(squirrel.Dollar)

	if request.Title != nil {
		queryBuilder = queryBuilder.Set("title", *request.Title)
	}
	if request.Message != nil {
		queryBuilder = queryBuilder.Set("message", *request.Message)
	}
	if request.ImageURL != nil {
		queryBuilder = queryBuilder.Set("image_url", *request.ImageURL)
	}
	if request.LinkURL != nil {
		queryBuilder = queryBuilder.Set("link_url", *request.LinkURL)
	}
	if request.Audience != nil {
		queryBuilder = queryBuilder.Set("audience", string(*request.Audience))
	}
	if request.SchoolID != nil {
		if *request.SchoolID == "" {
			queryBuilder = queryBuilder.Set("school_id", nil)
		} else {
			queryBuilder = queryBuilder.Set("school_id", *request.SchoolID)
		}
	}
	if request.Active != nil {
		queryBuilder = queryBuilder.Set("active", *request.Active)
	}
	if request.StartsAt != nil {
		queryBuilder = queryBuilder.Set("starts_at", *request.StartsAt)
	}
	if request.EndsAt != nil {
		queryBuilder = queryBuilder.Set("ends_at", *request.EndsAt)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar banner: %w", err)
	}

	return checkAffected(result)
}

func (r *bannerRepository) Delete(ctx context.Context, bannerID string) error {
	query, args, err := squirrel.
		Delete(bannersTable).
		Where(squirrel.Eq{"id": bannerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover banner: %w", err)
	}

	return checkAffected(result)
}

func scanBanner(row rowScanner) (*domain.Banner, error) {
	var banner domain.Banner
	var audience string

	err := row.Scan(
		&banner.ID,
		&banner.Title,
		&banner.Message,
		&banner.ImageURL,
		&banner.LinkURL,
		&audience,
		&banner.SchoolID,
		&banner.Active,
		&banner.StartsAt,
		&banner.EndsAt,
		&banner.CreatedAt,
		&banner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	banner.Audience = domain.BannerAudience(audience)

	return &banner, nil
}
