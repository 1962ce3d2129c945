package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/diillson/electricity-dashboard-go/internal/domain/repository"
	"github.com/diillson/electricity-dashboard-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// Resolve aplica o arquivo indicado em args.ConfigFile e, em seguida, os padrões.
func (r *ConfigRepositoryImpl) Resolve(args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		cfg, err := r.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		if err := ApplyConfig(args, cfg); err != nil {
			return err
		}
	}
	ApplyDefaults(args)
	return nil
}

// ApplyConfig preenche os argumentos ainda vazios com os valores do arquivo de
// configuração. Flags informadas na linha de comando sempre têm precedência.
func ApplyConfig(args *types.CLIArgs, cfg *types.Config) error {
	if cfg == nil {
		return nil
	}

	setString := func(dst *string, value string) {
		if *dst == "" {
			*dst = value
		}
	}

	setString(&args.UsersSource, cfg.UsersSource)
	setString(&args.UsagesSource, cfg.UsagesSource)
	setString(&args.UsageWrapper, cfg.UsageWrapper)
	setString(&args.Province, cfg.Province)
	setString(&args.Search, cfg.Search)
	setString(&args.ReportName, cfg.ReportName)
	setString(&args.Dir, cfg.Dir)
	setString(&args.ChartDir, cfg.ChartDir)
	setString(&args.AWSProfile, cfg.AWSProfile)
	setString(&args.AWSRegion, cfg.AWSRegion)
	setString(&args.Listen, cfg.Listen)

	if args.TopN == 0 {
		args.TopN = cfg.TopN
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Timeout == 0 && cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil || timeout < 0 {
			return fmt.Errorf("%w: %q", types.ErrInvalidTimeout, cfg.Timeout)
		}
		args.Timeout = timeout
	}

	return nil
}

// ApplyDefaults completa os campos que continuam vazios após a configuração.
func ApplyDefaults(args *types.CLIArgs) {
	if args.UsersSource == "" {
		args.UsersSource = types.DefaultUsersSource
	}
	if args.UsagesSource == "" {
		args.UsagesSource = types.DefaultUsagesSource
	}
	if args.UsageWrapper == "" {
		args.UsageWrapper = entity.DefaultUsageWrapper
	}
	if args.TopN <= 0 {
		args.TopN = types.DefaultTopN
	}
	if args.Timeout == 0 {
		args.Timeout = types.DefaultTimeout
	}
	if args.Listen == "" {
		args.Listen = types.DefaultListen
	}
	if args.ReportName != "" && len(args.ReportType) == 0 {
		args.ReportType = []string{types.DefaultReportType}
	}
}
