package repository

import (
	"github.com/diillson/electricity-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	// Resolve completa args com o arquivo de configuração (se houver) e os padrões.
	Resolve(args *types.CLIArgs) error
}
