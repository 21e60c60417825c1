package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"challenge-admin/internal/auth"
	repo "challenge-admin/internal/auth/repository"
	"challenge-admin/internal/model"
)

const userColumns = `id, username, email, password_hash, role, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (auth.User, error) {
	var (
		u                    auth.User
		role                 string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &createdAt, &updatedAt); err != nil {
		return auth.User{}, err
	}
	u.Role = model.Role(role)
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return u, nil
}

// CreateUser inserts a new User row and returns the created entity.
// Returns repository.ErrDuplicate when the email is taken.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (auth.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING ` + userColumns

	now := toMillis(r.now())
	role := opt.Role
	if role == "" {
		role = model.RoleUser
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.Username, opt.Email, opt.PasswordHash, string(role), now, now))
	if err != nil {
		if isUniqueViolation(err) {
			return auth.User{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return auth.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == 0) when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (auth.User, error) {
	var (
		conditions []string
		args       []any
	)
	if opt.ID != 0 {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Email != "" {
		conditions = append(conditions, "email = ?")
		args = append(args, opt.Email)
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s LIMIT 1`, userColumns, where)
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return auth.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return auth.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// ListUsers returns a page of Users ordered by id and the total count.
func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]auth.User, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListUsers"), err)
		return nil, 0, repo.ErrFailedToList
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY id LIMIT ? OFFSET ?`, userColumns)
	rows, err := r.db.QueryContext(ctx, query, limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListUsers"), err)
			return nil, 0, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListUsers"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return users, total, nil
}
