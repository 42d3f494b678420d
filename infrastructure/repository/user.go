package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/school-portal-api/infrastructure/database/postgres"
	"github.com/vfg2006/school-portal-api/internal/domain"
)

const (
	usersTable = "users"
)

var userColumns = []string{
	"id", "name", "lastname", "email", "password_hash", "active",
	"role_id", "school_id", "avatar_url", "created_at", "updated_at",
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, request *domain.UpdateUserRequest, passwordHash string) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	ListUser(ctx context.Context, schoolID *string) ([]*domain.User, error)
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	usersSQL, usersArgs, err := squirrel.
		Insert(usersTable).
		Columns("name", "lastname", "email", "password_hash", "active", "role_id", "school_id").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.RoleID, user.SchoolID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(ctx, usersSQL, usersArgs...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// UpdateUser aplica apenas os campos informados; passwordHash vazio mantém a senha atual
func (r *userRepository) UpdateUser(ctx context.Context, request *domain.UpdateUserRequest, passwordHash string) error {
	usersSQL, usersArgs, err := buildUpdateUserQuery(request, passwordHash)
	if err != nil {
		return err
	}

	result, err := r.conn.Exec(ctx, usersSQL, usersArgs...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	return checkAffected(result)
}

func buildUpdateUserQuery(request *domain.UpdateUserRequest, passwordHash string) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": request.ID, "deleted": false})

	if request.Name != nil {
		queryBuilder = queryBuilder.Set("name", *request.Name)
	}

	if request.Lastname != nil {
		queryBuilder = queryBuilder.Set("lastname", *request.Lastname)
	}

	if request.Email != nil {
		queryBuilder = queryBuilder.Set("email", *request.Email)
	}

	if passwordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", passwordHash)
	}

	if request.Active != nil {
		queryBuilder = queryBuilder.Set("active", *request.Active)
	}

	if request.RoleID != nil {
		queryBuilder = queryBuilder.Set("role_id", *request.RoleID)
	}

	if request.SchoolID != nil {
		if *request.SchoolID == "" {
			queryBuilder = queryBuilder.Set("school_id", nil)
		} else {
			queryBuilder = queryBuilder.Set("school_id", *request.SchoolID)
		}
	}

	if request.AvatarURL != nil && *request.AvatarURL != "" {
		queryBuilder = queryBuilder.Set("avatar_url", *request.AvatarURL)
	}

	if request.Deleted != nil && *request.Deleted {
		queryBuilder = queryBuilder.
			Set("deleted", true).
			Set("deleted_at", squirrel.Expr("CURRENT_TIMESTAMP"))
	}

	return queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email, "deleted": false})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID, "deleted": false})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	usersSQL, usersArgs, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRow(ctx, usersSQL, usersArgs...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUser lista os usuários ativos; schoolID restringe ao tenant informado
func (r *userRepository) ListUser(ctx context.Context, schoolID *string) ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if schoolID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"school_id": *schoolID})
	}

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, usersSQL, usersArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}
		// nunca devolve o hash na listagem
		user.PasswordHash = ""
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.SchoolID,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
