package repository

import (
	"context"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
)

// DatasetRepository fetches the user and usage datasets.
type DatasetRepository interface {
	Load(ctx context.Context, sources entity.Sources) (entity.Datasets, error)
}
