package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/i18n"
)

// fakeS3 serves objects from memory through the narrow client surface the
// source needs.
type fakeS3 struct {
	objects map[string][]byte
	listErr error
}

func (f *fakeS3) ListObjectsV2(_ context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := &s3.ListObjectsV2Output{}
	for key := range f.objects {
		if params.Prefix != nil && !strings.HasPrefix(key, *params.Prefix) {
			continue
		}
		out.Contents = append(out.Contents, types.Object{Key: aws.String(key)})
	}
	return out, nil
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	content, ok := f.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, errors.New("no such key")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(content))}, nil
}

func TestS3SourceLoad(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{
		"locales/en.json":        []byte(`{"farewell": "Bye"}`),
		"locales/tr.yaml":        []byte("farewell: Hoşça kal\n"),
		"locales/README.md":      []byte("docs, not a catalog"),
		"locales/nested/de.json": []byte(`{"farewell": "Tschüss"}`),
		"other/fr.json":          []byte(`{"farewell": "Au revoir"}`),
	}}

	src, err := i18n.NewS3Source(context.Background(),
		i18n.S3Config{Bucket: "translations", Prefix: "locales/"},
		i18n.WithS3Client(client))
	require.NoError(t, err)

	catalogs, order, err := src.Load(context.Background())
	require.NoError(t, err)

	// Keys are sorted before loading; nested and foreign-prefix objects are
	// ignored.
	assert.Equal(t, []string{"en", "tr"}, order)
	assert.Equal(t, "Bye", catalogs["en"]["farewell"])
	assert.Equal(t, "Hoşça kal", catalogs["tr"]["farewell"])
}

func TestS3SourceSkipsMalformedObjects(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{
		"locales/en.json":     []byte(`{"farewell": "Bye"}`),
		"locales/broken.json": []byte(`{broken`),
	}}

	src, err := i18n.NewS3Source(context.Background(),
		i18n.S3Config{Bucket: "translations", Prefix: "locales/"},
		i18n.WithS3Client(client))
	require.NoError(t, err)

	catalogs, order, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, order)
	assert.Len(t, catalogs, 1)
}

func TestS3SourceListError(t *testing.T) {
	client := &fakeS3{listErr: errors.New("access denied")}

	src, err := i18n.NewS3Source(context.Background(),
		i18n.S3Config{Bucket: "translations", Prefix: "locales/"},
		i18n.WithS3Client(client))
	require.NoError(t, err)

	_, _, err = src.Load(context.Background())
	require.ErrorIs(t, err, i18n.ErrFailedToListCatalogObjects)
}

func TestNewS3SourceMissingBucket(t *testing.T) {
	_, err := i18n.NewS3Source(context.Background(), i18n.S3Config{})
	require.ErrorIs(t, err, i18n.ErrInvalidS3Config)
}
