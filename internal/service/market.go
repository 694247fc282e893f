package service

import (
	"context"

	"github.com/gmoreira/marketpulse/internal/domain/models"
	"github.com/gmoreira/marketpulse/internal/storage"
)

// MarketService exposes the two read paths of the retrieval engine.
//
// GetStockData returns a nil company when the ticker does not exist;
// that outcome is an expected result variant, not an error, so the 404
// path never travels through error handling.
type MarketService interface {
	GetMarketData(ctx context.Context, country string, r DateRange) ([]models.MarketRow, error)
	GetStockData(ctx context.Context, ticker string, r DateRange) (*models.Company, []models.StockRow, error)
}

type marketService struct {
	repo storage.MarketRepository
}

func NewMarketService(repo storage.MarketRepository) MarketService {
	return &marketService{repo: repo}
}

func (s *marketService) GetMarketData(ctx context.Context, country string, r DateRange) ([]models.MarketRow, error) {
	return s.repo.ListMarketMetrics(ctx, country, r.From, r.To)
}

func (s *marketService) GetStockData(ctx context.Context, ticker string, r DateRange) (*models.Company, []models.StockRow, error) {
	company, err := s.repo.FindCompanyBySymbol(ctx, ticker)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, nil
	}

	rows, err := s.repo.ListCompanyMetrics(ctx, company.ID, r.From, r.To)
	if err != nil {
		return nil, nil, err
	}
	return company, rows, nil
}
