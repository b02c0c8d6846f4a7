package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/materials/internal/entity"
)

var employeeColumns = []string{
	"e.id", "e.matricule", "e.user_id", "u.name", "u.email", "r.name",
	"e.department", "e.position", "e.created_at", "e.updated_at",
}

func selectEmployees() sq.SelectBuilder {
	return psql().
		Select(employeeColumns...).
		From("employees e").
		Join("users u ON u.id = e.user_id").
		Join("roles r ON r.id = u.role_id")
}

func scanEmployee(row pgx.Row) (entity.Employee, error) {
	var e entity.Employee

	err := row.Scan(
		&e.ID,
		&e.Matricule,
		&e.UserID,
		&e.Name,
		&e.Email,
		&e.Role,
		&e.Department,
		&e.Position,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return entity.Employee{}, mapErr(err)
	}

	return e, nil
}

// CreateEmployee inserts the employee row for an existing user. The role is
// the user's. An empty matricule is generated as EMP<yyyymm><seq>.
func (r *Repository) CreateEmployee(ctx context.Context, emp entity.Employee) (entity.Employee, error) {
	sqlQuery := `INSERT INTO employees (matricule, user_id, department, position)
		VALUES (
			COALESCE(NULLIF($1, ''), 'EMP' || to_char(now(), 'YYYYMM') || lpad(nextval('employee_matricule_seq')::text, 4, '0')),
			$2, $3, $4
		)
		RETURNING id`

	var id int64

	err := r.conn(ctx).QueryRow(ctx, sqlQuery,
		emp.Matricule,
		emp.UserID,
		emp.Department,
		emp.Position,
	).Scan(&id)
	if err != nil {
		return entity.Employee{}, mapErr(err)
	}

	return r.EmployeeByID(ctx, id)
}

func (r *Repository) EmployeeByID(ctx context.Context, id int64) (entity.Employee, error) {
	sqlQuery, args, err := selectEmployees().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return entity.Employee{}, err
	}

	return scanEmployee(r.conn(ctx).QueryRow(ctx, sqlQuery, args...))
}

// EmployeesList returns non-admin employees, newest first.
func (r *Repository) EmployeesList(ctx context.Context, page entity.Page) ([]entity.Employee, int, error) {
	notAdmin := sq.NotEq{"u.role_id": entity.RoleIDAdmin}

	total, err := count(ctx, r.conn(ctx), psql().
		Select("count(*)").
		From("employees e").
		Join("users u ON u.id = e.user_id").
		Where(notAdmin))
	if err != nil {
		return nil, 0, err
	}

	sqlQuery, args, err := selectEmployees().
		Where(notAdmin).
		OrderBy("e.created_at DESC", "e.id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := make([]entity.Employee, 0, page.Limit)

	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}

		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// UpdateEmployee writes the employee-owned fields of upd. User fields,
// the role included, are written separately with UpdateUser.
func (r *Repository) UpdateEmployee(ctx context.Context, id int64, upd entity.EmployeeUpdate) error {
	stmt := psql().Update("employees").Set("updated_at", time.Now()).Where(sq.Eq{"id": id})

	if upd.Matricule != nil {
		stmt = stmt.Set("matricule", *upd.Matricule)
	}

	if upd.Department != nil {
		stmt = stmt.Set("department", *upd.Department)
	}

	if upd.Position != nil {
		stmt = stmt.Set("position", *upd.Position)
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlQuery, args...)
	if err != nil {
		return mapErr(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteEmployee(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
