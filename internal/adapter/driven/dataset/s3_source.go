package dataset

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Source lê objetos s3://bucket/key, com cache de clientes por perfil e região.
type S3Source struct {
	clientCache map[string]*s3.Client
	mu          sync.Mutex
}

// NewS3Source cria uma nova origem S3.
func NewS3Source() *S3Source {
	return &S3Source{clientCache: make(map[string]*s3.Client)}
}

// Fetch baixa o objeto inteiro.
func (s *S3Source) Fetch(ctx context.Context, location, profile, region string) ([]byte, error) {
	bucket, key, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}

	client, err := s.getClient(ctx, profile, region)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("getting s3 object %s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading s3 object %s/%s: %w", bucket, key, err)
	}
	return body, nil
}

func (s *S3Source) getClient(ctx context.Context, profile, region string) (*s3.Client, error) {
	cacheKey := fmt.Sprintf("%s-%s", profile, region)

	s.mu.Lock()
	defer s.mu.Unlock()

	if client, ok := s.clientCache[cacheKey]; ok {
		return client, nil
	}

	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %q: %w", profile, err)
	}

	client := s3.NewFromConfig(cfg)
	s.clientCache[cacheKey] = client
	return client, nil
}

// parseS3Location splits s3://bucket/path/to/key.
func parseS3Location(location string) (string, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 location %q: %w", location, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("invalid s3 location %q: scheme must be s3", location)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 location %q: expected s3://bucket/key", location)
	}
	return u.Host, key, nil
}
