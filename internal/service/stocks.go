package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samandr77/materials/internal/entity"
)

func (s *Service) CreateStock(ctx context.Context, stock entity.Stock) (entity.Stock, error) {
	if _, err := authorize(ctx, entity.ActionManageStock); err != nil {
		return entity.Stock{}, err
	}

	stock.Name = strings.TrimSpace(stock.Name)

	if err := ValidateStock(stock); err != nil {
		return entity.Stock{}, err
	}

	created, err := s.repo.CreateStock(ctx, stock)
	if err != nil {
		return entity.Stock{}, fmt.Errorf("create stock %q: %w", stock.Name, err)
	}

	return created, nil
}

func (s *Service) Stock(ctx context.Context, id int64) (entity.Stock, error) {
	if _, err := authorize(ctx, entity.ActionManageStock); err != nil {
		return entity.Stock{}, err
	}

	stock, err := s.repo.StockByID(ctx, id)
	if err != nil {
		return entity.Stock{}, fmt.Errorf("get stock %d: %w", id, err)
	}

	return stock, nil
}

func (s *Service) Stocks(ctx context.Context) ([]entity.Stock, error) {
	if _, err := authorize(ctx, entity.ActionManageStock); err != nil {
		return nil, err
	}

	stocks, err := s.repo.StocksList(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}

	return stocks, nil
}

func (s *Service) UpdateStock(ctx context.Context, stock entity.Stock) (entity.Stock, error) {
	if _, err := authorize(ctx, entity.ActionManageStock); err != nil {
		return entity.Stock{}, err
	}

	stock.Name = strings.TrimSpace(stock.Name)

	if err := ValidateStock(stock); err != nil {
		return entity.Stock{}, err
	}

	updated, err := s.repo.UpdateStock(ctx, stock)
	if err != nil {
		return entity.Stock{}, fmt.Errorf("update stock %d: %w", stock.ID, err)
	}

	return updated, nil
}

func (s *Service) DeleteStock(ctx context.Context, id int64) error {
	if _, err := authorize(ctx, entity.ActionManageStock); err != nil {
		return err
	}

	if err := s.repo.DeleteStock(ctx, id); err != nil {
		return fmt.Errorf("delete stock %d: %w", id, err)
	}

	return nil
}
