package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageName(t *testing.T) {
	name := NewImageName("C:\\Users\\me\\ice cream.png")
	assert.True(t, strings.HasSuffix(name, "ice_cream.png"))
	assert.NoError(t, validateName(name))

	assert.NoError(t, validateName(NewImageName("../../etc/passwd")))
}

func TestNewImageName_UniquePerCall(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		name := NewImageName("photo.png")
		_, dup := seen[name]
		require.False(t, dup, "duplicate image name %s", name)
		seen[name] = struct{}{}
		assert.True(t, strings.HasSuffix(name, "-photo.png"))
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestDiskStore_SaveRemovesPartialFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	err = store.Save(context.Background(), "broken.png", io.MultiReader(strings.NewReader("partial"), failingReader{}))
	assert.ErrorContains(t, err, "connection reset")

	_, err = os.Stat(filepath.Join(dir, "broken.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStore_SaveDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewDiskStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "1700000000000cake.png", strings.NewReader("png")))
	b, err := os.ReadFile(filepath.Join(dir, "1700000000000cake.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(b))

	require.NoError(t, store.Delete(ctx, "1700000000000cake.png"))
	_, err = os.Stat(filepath.Join(dir, "1700000000000cake.png"))
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, store.Delete(ctx, "1700000000000cake.png"))
}

func TestDiskStore_RejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	err = store.Save(context.Background(), "../evil.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidName)
	err = store.Delete(context.Background(), "..")
	assert.ErrorIs(t, err, ErrInvalidName)
}

type fakeObjects struct {
	puts    map[string]string
	deleted []string
	err     error
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(in.Body)
	f.puts[*in.Bucket+"/"+*in.Key] = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

type fakePresigner struct{}

func (fakePresigner) PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return &v4.PresignedHTTPRequest{URL: "https://s3.local/" + *in.Bucket + "/" + *in.Key + "?X-Amz-Signature=abc"}, nil
}

func TestS3Store(t *testing.T) {
	objects := &fakeObjects{puts: map[string]string{}}
	store := &S3Store{bucket: "images", client: objects, presigner: fakePresigner{}}
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "1salad.png", strings.NewReader("data")))
	assert.Equal(t, "data", objects.puts["images/1salad.png"])

	require.NoError(t, store.Delete(ctx, "1salad.png"))
	assert.Equal(t, []string{"images/1salad.png"}, objects.deleted)

	url, err := store.URL(ctx, "1salad.png")
	require.NoError(t, err)
	assert.Contains(t, url, "images/1salad.png")

	_, err = store.URL(ctx, "a/b.png")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestS3Store_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	store := &S3Store{bucket: "images", client: &fakeObjects{err: boom}, presigner: fakePresigner{}}

	assert.ErrorIs(t, store.Save(context.Background(), "x.png", strings.NewReader("")), boom)
	assert.ErrorIs(t, store.Delete(context.Background(), "x.png"), boom)
}
