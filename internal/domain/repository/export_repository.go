package repository

import (
	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(view entity.DashboardView, filename string, outputDir string) (string, error)
	ExportToJSON(view entity.DashboardView, filename string, outputDir string) (string, error)
	ExportToPDF(view entity.DashboardView, filename string, outputDir string) (string, error)
	ExportToXLSX(view entity.DashboardView, filename string, outputDir string) (string, error)
}
