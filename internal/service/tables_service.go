package service

import (
	"context"

	"socialCPT/internal/repository"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HealthReport struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	CountTables int    `json:"countTables"`
}

type TablesService interface {
	Health(ctx context.Context) (*HealthReport, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
	db         HealthChecker
}

func NewTablesService(tablesRepo repository.TablesRepository, db HealthChecker) TablesService {
	return &tablesService{tablesRepo: tablesRepo, db: db}
}

func (t *tablesService) Health(ctx context.Context) (*HealthReport, error) {
	report := &HealthReport{Status: "down", Database: "down"}

	if t.db != nil {
		if err := t.db.HealthCheck(ctx); err != nil {
			return report, err
		}
	}
	report.Database = "up"

	countTables, err := t.tablesRepo.CountTablesDB(ctx)
	if err != nil {
		return report, err
	}

	report.Status = "up"
	report.CountTables = countTables
	return report, nil
}
