package i18n

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client defines the narrow S3 surface the source needs. Satisfied by
// *s3.Client; mock it in tests.
type S3Client interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config contains configuration for the S3 catalog source.
type S3Config struct {
	Bucket         string `env:"LOCALE_S3_BUCKET,required"`                    // Bucket holding the catalog objects.
	Region         string `env:"LOCALE_S3_REGION" envDefault:"us-east-1"`      // Region of the bucket.
	Prefix         string `env:"LOCALE_S3_PREFIX" envDefault:"locales/"`       // Prefix under which catalog objects live, one per language.
	AccessKeyID    string `env:"LOCALE_S3_ACCESS_KEY_ID"`                      // Optional static credentials.
	SecretKey      string `env:"LOCALE_S3_SECRET_KEY"`                         // Optional static credentials.
	Endpoint       string `env:"LOCALE_S3_ENDPOINT"`                           // Optional: for S3-compatible services.
	ForcePathStyle bool   `env:"LOCALE_S3_FORCE_PATH_STYLE" envDefault:"false"` // For S3-compatible services like MinIO.
}

// S3Source loads per-language catalog objects ("locales/en.json") from an S3
// bucket. Like DirSource, unparseable objects are logged and skipped.
type S3Source struct {
	client  S3Client
	bucket  string
	prefix  string
	parsers []Parser
	log     *slog.Logger
}

// S3SourceOption configures an S3Source.
type S3SourceOption func(*S3Source)

// WithS3Client sets a custom pre-configured S3 client.
// Useful for testing with mocks.
func WithS3Client(client S3Client) S3SourceOption {
	return func(s *S3Source) {
		s.client = client
	}
}

// WithS3Parsers replaces the default JSON+YAML parser set.
func WithS3Parsers(parsers ...Parser) S3SourceOption {
	return func(s *S3Source) {
		if len(parsers) > 0 {
			s.parsers = parsers
		}
	}
}

// WithS3Logger sets the logger for per-object load warnings.
func WithS3Logger(logger *slog.Logger) S3SourceOption {
	return func(s *S3Source) {
		if logger != nil {
			s.log = logger
		}
	}
}

// NewS3Source creates an S3 catalog source. Unless a client is injected via
// WithS3Client, one is built from cfg and the ambient AWS credential chain.
func NewS3Source(ctx context.Context, cfg S3Config, opts ...S3SourceOption) (*S3Source, error) {
	if cfg.Bucket == "" {
		return nil, ErrInvalidS3Config
	}

	s := &S3Source{
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		parsers: defaultParsers(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		loadOpts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, errors.Join(ErrInvalidS3Config, err)
		}

		s.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return s, nil
}

// Load implements the CatalogSource interface.
func (s *S3Source) Load(ctx context.Context) (map[string]Catalog, []string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, nil, errors.Join(ErrFailedToListCatalogObjects, err)
		}
		for _, obj := range page.Contents {
			if obj.Key != nil {
				keys = append(keys, *obj.Key)
			}
		}
	}
	// Deterministic load order regardless of listing order.
	sort.Strings(keys)

	catalogs := make(map[string]Catalog)
	var order []string

	for _, key := range keys {
		parser := parserFor(s.parsers, key)
		if parser == nil {
			continue
		}

		// Only objects directly under the prefix count as catalogs.
		rel := strings.TrimPrefix(key, s.prefix)
		if rel == "" || strings.Contains(rel, "/") {
			continue
		}

		lang := langFromFilename(rel)
		if lang == "" {
			continue
		}

		tree, err := s.fetch(ctx, key, parser)
		if err != nil {
			s.log.WarnContext(ctx, "failed to load catalog object, skipping", "key", key, "error", err)
			continue
		}

		if _, exists := catalogs[lang]; !exists {
			order = append(order, lang)
		}
		catalogs[lang] = tree
	}

	return catalogs, order, nil
}

// fetch downloads and parses one catalog object.
func (s *S3Source) fetch(ctx context.Context, key string, parser Parser) (Catalog, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}

	return parser.Parse(ctx, content)
}
