package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/samandr77/materials/internal/entity"
)

const selectStock = `SELECT id, name, quantity, description, created_at, updated_at FROM stocks`

func scanStock(row pgx.Row) (entity.Stock, error) {
	var s entity.Stock

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Quantity,
		&s.Description,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return entity.Stock{}, mapErr(err)
	}

	return s, nil
}

func (r *Repository) CreateStock(ctx context.Context, stock entity.Stock) (entity.Stock, error) {
	sqlQuery := `INSERT INTO stocks (name, quantity, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, quantity, description, created_at, updated_at`

	return scanStock(r.conn(ctx).QueryRow(ctx, sqlQuery, stock.Name, stock.Quantity, stock.Description))
}

func (r *Repository) StockByID(ctx context.Context, id int64) (entity.Stock, error) {
	return scanStock(r.conn(ctx).QueryRow(ctx, selectStock+` WHERE id = $1`, id))
}

func (r *Repository) StocksList(ctx context.Context) ([]entity.Stock, error) {
	rows, err := r.conn(ctx).Query(ctx, selectStock+` ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stocks := make([]entity.Stock, 0)

	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, err
		}

		stocks = append(stocks, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stocks, nil
}

func (r *Repository) UpdateStock(ctx context.Context, stock entity.Stock) (entity.Stock, error) {
	sqlQuery := `UPDATE stocks
		SET name = $1, quantity = $2, description = $3, updated_at = now()
		WHERE id = $4
		RETURNING id, name, quantity, description, created_at, updated_at`

	return scanStock(r.conn(ctx).QueryRow(ctx, sqlQuery, stock.Name, stock.Quantity, stock.Description, stock.ID))
}

func (r *Repository) DeleteStock(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
