package filestorage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAndDelete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStorage(root, "http://localhost:8080/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	n, err := store.Put(ctx, "injuries/i1/scan.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	content, err := os.ReadFile(filepath.Join(root, "injuries", "i1", "scan.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	assert.Equal(t, "http://localhost:8080/uploads/injuries/i1/scan.txt", store.URL("injuries/i1/scan.txt"))

	require.NoError(t, store.Delete(ctx, "injuries/i1/scan.txt"))
	_, err = os.Stat(filepath.Join(root, "injuries", "i1", "scan.txt"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, store.Delete(ctx, "injuries/i1/scan.txt"))
}

func TestRejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	for _, key := range []string{"../etc/passwd", "a/../../b", "", "/"} {
		_, err := store.Put(context.Background(), key, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestSaveUpload(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "X-Ray.PNG")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	header := req.MultipartForm.File["file"][0]

	obj, err := store.SaveUpload(context.Background(), header, "/injuries/i1/")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(obj.Key, "injuries/i1/"))
	assert.True(t, strings.HasSuffix(obj.Key, ".png"))
	assert.Equal(t, "/uploads/"+obj.Key, obj.URL)
	assert.Equal(t, "X-Ray.PNG", obj.Filename)
	assert.Equal(t, int64(9), obj.Size)
	assert.NotEmpty(t, obj.MimeType)

	content, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(obj.Key)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}
