package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/materials/internal/entity"
)

const selectUser = `SELECT u.id, u.name, u.email, u.password, r.name, u.created_at, u.updated_at
	FROM users u
	JOIN roles r ON r.id = u.role_id`

func scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return entity.User{}, mapErr(err)
	}

	return u, nil
}

func (r *Repository) CreateUser(ctx context.Context, user entity.User) (entity.User, error) {
	sqlQuery := `INSERT INTO users (name, email, password, role_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.conn(ctx).QueryRow(ctx, sqlQuery,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role.ID(),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return entity.User{}, mapErr(err)
	}

	return user, nil
}

func (r *Repository) UserByID(ctx context.Context, id int64) (entity.User, error) {
	return scanUser(r.conn(ctx).QueryRow(ctx, selectUser+` WHERE u.id = $1`, id))
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	return scanUser(r.conn(ctx).QueryRow(ctx, selectUser+` WHERE lower(u.email) = lower($1)`, email))
}

// UsersList returns non-admin users, newest first.
func (r *Repository) UsersList(ctx context.Context, page entity.Page) ([]entity.User, int, error) {
	notAdmin := sq.NotEq{"u.role_id": entity.RoleIDAdmin}

	total, err := count(ctx, r.conn(ctx), psql().Select("count(*)").From("users u").Where(notAdmin))
	if err != nil {
		return nil, 0, err
	}

	stmt := psql().
		Select("u.id", "u.name", "u.email", "u.password", "r.name", "u.created_at", "u.updated_at").
		From("users u").
		Join("roles r ON r.id = u.role_id").
		Where(notAdmin).
		OrderBy("u.id DESC").
		Limit(page.Limit).
		Offset(page.Offset())

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entity.User, 0, page.Limit)

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateUser writes the non-nil fields of upd. Password must already be hashed.
func (r *Repository) UpdateUser(ctx context.Context, id int64, upd entity.UserUpdate) (entity.User, error) {
	stmt := psql().Update("users").Set("updated_at", time.Now()).Where(sq.Eq{"id": id})

	if upd.Name != nil {
		stmt = stmt.Set("name", *upd.Name)
	}

	if upd.Email != nil {
		stmt = stmt.Set("email", *upd.Email)
	}

	if upd.Password != nil {
		stmt = stmt.Set("password", *upd.Password)
	}

	if upd.Role != nil {
		stmt = stmt.Set("role_id", upd.Role.ID())
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return entity.User{}, err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlQuery, args...)
	if err != nil {
		return entity.User{}, mapErr(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.User{}, entity.ErrNotFound
	}

	return r.UserByID(ctx, id)
}

func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
