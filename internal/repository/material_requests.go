package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/materials/internal/entity"
)

var materialRequestColumns = []string{
	"m.id", "m.material_name", "m.quantity", "m.justification", "m.user_id", "u.name",
	"m.status", "m.delivery_date", "m.rejection_reason", "m.created_at", "m.updated_at",
}

func selectMaterialRequests() sq.SelectBuilder {
	return psql().
		Select(materialRequestColumns...).
		From("material_requests m").
		Join("users u ON u.id = m.user_id")
}

func scanMaterialRequest(row pgx.Row) (entity.MaterialRequest, error) {
	var m entity.MaterialRequest

	err := row.Scan(
		&m.ID,
		&m.MaterialName,
		&m.Quantity,
		&m.Justification,
		&m.UserID,
		&m.RequesterName,
		&m.Status,
		&m.DeliveryDate,
		&m.RejectionReason,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return entity.MaterialRequest{}, mapErr(err)
	}

	return m, nil
}

func (r *Repository) CreateMaterialRequest(ctx context.Context, req entity.MaterialRequest) (entity.MaterialRequest, error) {
	sqlQuery := `INSERT INTO material_requests (material_name, quantity, justification, user_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64

	err := r.conn(ctx).QueryRow(ctx, sqlQuery,
		req.MaterialName,
		req.Quantity,
		req.Justification,
		req.UserID,
		req.Status,
	).Scan(&id)
	if err != nil {
		return entity.MaterialRequest{}, mapErr(err)
	}

	return r.MaterialRequestByID(ctx, id)
}

func (r *Repository) MaterialRequestByID(ctx context.Context, id int64) (entity.MaterialRequest, error) {
	sqlQuery, args, err := selectMaterialRequests().Where(sq.Eq{"m.id": id}).ToSql()
	if err != nil {
		return entity.MaterialRequest{}, err
	}

	return scanMaterialRequest(r.conn(ctx).QueryRow(ctx, sqlQuery, args...))
}

func (r *Repository) MaterialRequestsList(
	ctx context.Context,
	filter entity.MaterialRequestsFilter,
) ([]entity.MaterialRequest, int, error) {
	where := sq.And{}

	if filter.Status != nil {
		where = append(where, sq.Eq{"m.status": *filter.Status})
	}

	if filter.UserID != nil {
		where = append(where, sq.Eq{"m.user_id": *filter.UserID})
	}

	total, err := count(ctx, r.conn(ctx), psql().Select("count(*)").From("material_requests m").Where(where))
	if err != nil {
		return nil, 0, err
	}

	sqlQuery, args, err := selectMaterialRequests().
		Where(where).
		OrderBy("m.created_at "+sortDirection(filter.OrderBy), "m.id "+sortDirection(filter.OrderBy)).
		Limit(filter.Limit).
		Offset(filter.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	requests := make([]entity.MaterialRequest, 0, filter.Limit)

	for rows.Next() {
		m, err := scanMaterialRequest(rows)
		if err != nil {
			return nil, 0, err
		}

		requests = append(requests, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// UpdateMaterialRequestStatus persists status, delivery_date and
// rejection_reason of req as they are.
func (r *Repository) UpdateMaterialRequestStatus(
	ctx context.Context,
	req entity.MaterialRequest,
) (entity.MaterialRequest, error) {
	sqlQuery := `UPDATE material_requests
		SET status = $1, delivery_date = $2, rejection_reason = $3, updated_at = now()
		WHERE id = $4`

	tag, err := r.conn(ctx).Exec(ctx, sqlQuery,
		req.Status,
		req.DeliveryDate,
		req.RejectionReason,
		req.ID,
	)
	if err != nil {
		return entity.MaterialRequest{}, mapErr(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.MaterialRequest{}, entity.ErrNotFound
	}

	return r.MaterialRequestByID(ctx, req.ID)
}

func (r *Repository) DeleteMaterialRequest(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM material_requests WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func sortDirection(o entity.OrderBy) string {
	if o == entity.ASC {
		return "ASC"
	}

	return "DESC"
}
