package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"fornecedores/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	mu      sync.Mutex
	puts    []string
	deletes []string
	putErr  error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.puts = append(f.puts, aws.ToString(params.Key))
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func newTestStorage(client *fakeS3, baseURL string) *S3Storage {
	return NewS3Storage(client, &types.Config{
		S3BucketName:    "bucket",
		S3Region:        "eu-west-1",
		S3PublicBaseURL: baseURL,
	})
}

func TestUploadAll(t *testing.T) {
	client := &fakeS3{}
	store := newTestStorage(client, "")

	uploads := []Upload{
		{Name: "proposta.pdf", ContentType: "application/pdf", Body: strings.NewReader("one")},
		{Name: "anexo.pdf", ContentType: "application/pdf", Body: strings.NewReader("two")},
	}

	refs, err := store.UploadAll(context.Background(), PrefixContracts, uploads)
	require.NoError(t, err)
	require.Len(t, refs, 2)

	// Results keep submission order regardless of upload completion
	// order.
	assert.Equal(t, "proposta.pdf", refs[0].Name)
	assert.Equal(t, "anexo.pdf", refs[1].Name)

	for _, ref := range refs {
		assert.Contains(t, ref.URL, "https://bucket.s3.eu-west-1.amazonaws.com/contracts/")
	}

	assert.Len(t, client.puts, 2)
}

func TestUploadAllSameNameDistinctKeys(t *testing.T) {
	client := &fakeS3{}
	store := newTestStorage(client, "")

	uploads := []Upload{
		{Name: "relatorio.pdf", Body: strings.NewReader("one")},
		{Name: "relatorio.pdf", Body: strings.NewReader("two")},
	}

	refs, err := store.UploadAll(context.Background(), PrefixDocuments, uploads)
	require.NoError(t, err)
	require.Len(t, refs, 2)

	// Same file name twice in one submission must not overwrite.
	assert.NotEqual(t, refs[0].URL, refs[1].URL)

	require.Len(t, client.puts, 2)
	assert.NotEqual(t, client.puts[0], client.puts[1])
}

func TestUploadAllFailsWhole(t *testing.T) {
	client := &fakeS3{putErr: errors.New("denied")}
	store := newTestStorage(client, "")

	uploads := []Upload{
		{Name: "proposta.pdf", Body: strings.NewReader("one")},
	}

	refs, err := store.UploadAll(context.Background(), PrefixContracts, uploads)
	assert.Error(t, err)
	assert.Nil(t, refs)
}

func TestUploadAllEmpty(t *testing.T) {
	store := newTestStorage(&fakeS3{}, "")

	refs, err := store.UploadAll(context.Background(), PrefixDocuments, nil)
	assert.NoError(t, err)
	assert.Empty(t, refs)
}

func TestDelete(t *testing.T) {
	client := &fakeS3{}
	store := newTestStorage(client, "")

	err := store.Delete(context.Background(), "https://bucket.s3.eu-west-1.amazonaws.com/documents/1_acta.pdf")
	require.NoError(t, err)
	assert.Equal(t, []string{"documents/1_acta.pdf"}, client.deletes)
}

func TestPublicURL(t *testing.T) {
	store := newTestStorage(&fakeS3{}, "")
	assert.Equal(t,
		"https://bucket.s3.eu-west-1.amazonaws.com/contracts/1_a.pdf",
		store.PublicURL("contracts/1_a.pdf"),
	)

	cdn := newTestStorage(&fakeS3{}, "https://cdn.example.ao/")
	assert.Equal(t, "https://cdn.example.ao/contracts/1_a.pdf", cdn.PublicURL("contracts/1_a.pdf"))
}
