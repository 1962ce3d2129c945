package dataset

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/diillson/electricity-dashboard-go/internal/domain/entity"
	"github.com/diillson/electricity-dashboard-go/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// DatasetRepositoryImpl implementa o DatasetRepository para arquivos locais,
// URLs HTTP(S) e objetos S3.
type DatasetRepositoryImpl struct {
	httpClient *http.Client
	s3         *S3Source
}

// NewDatasetRepository cria uma nova implementação do DatasetRepository.
func NewDatasetRepository() repository.DatasetRepository {
	return &DatasetRepositoryImpl{
		httpClient: &http.Client{},
		s3:         NewS3Source(),
	}
}

// Load busca os dois conjuntos de dados em paralelo. A primeira falha cancela
// a outra busca e é devolvida; nunca há resultado parcial.
func (r *DatasetRepositoryImpl) Load(ctx context.Context, sources entity.Sources) (entity.Datasets, error) {
	if sources.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sources.Timeout)
		defer cancel()
	}

	wrapper := sources.UsageWrapper
	if wrapper == "" {
		wrapper = entity.DefaultUsageWrapper
	}

	var datasets entity.Datasets
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := r.fetch(gctx, sources.Users, sources)
		if err != nil {
			return err
		}
		users, err := decodeUsers(sources.Users, raw)
		if err != nil {
			return err
		}
		datasets.Users = users
		return nil
	})

	g.Go(func() error {
		raw, err := r.fetch(gctx, sources.Usages, sources)
		if err != nil {
			return err
		}
		usages, err := decodeUsages(sources.Usages, raw, wrapper)
		if err != nil {
			return err
		}
		datasets.Usages = usages
		return nil
	})

	if err := g.Wait(); err != nil {
		return entity.Datasets{}, err
	}
	return datasets, nil
}

// fetch lê os bytes brutos de um local, escolhendo a origem pelo esquema.
func (r *DatasetRepositoryImpl) fetch(ctx context.Context, location string, sources entity.Sources) ([]byte, error) {
	if location == "" {
		return nil, entity.NewNetworkError("<empty>", fmt.Errorf("no location configured"))
	}

	var (
		raw []byte
		err error
	)
	switch scheme(location) {
	case "http", "https":
		raw, err = fetchHTTP(ctx, r.httpClient, location)
	case "s3":
		raw, err = r.s3.Fetch(ctx, location, sources.AWSProfile, sources.AWSRegion)
	default:
		raw, err = os.ReadFile(location)
	}
	if err != nil {
		return nil, entity.NewNetworkError(location, err)
	}
	return raw, nil
}

func scheme(location string) string {
	u, err := url.Parse(location)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// isSpreadsheet reports whether the location points at an .xlsx workbook.
func isSpreadsheet(location string) bool {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		p = u.Path
	}
	return strings.EqualFold(path.Ext(p), ".xlsx")
}
