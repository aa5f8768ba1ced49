package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	st, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/static/uploads"})
	require.NoError(t, err)
	return st
}

func TestLocalStorageRoundTrip(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "asha_profile_1_photo.png", strings.NewReader("png-bytes")))

	exists, err := st.Exists(ctx, "asha_profile_1_photo.png")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := st.GetSize(ctx, "asha_profile_1_photo.png")
	require.NoError(t, err)
	assert.EqualValues(t, len("png-bytes"), size)

	rc, err := st.Get(ctx, "asha_profile_1_photo.png")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))

	url, err := st.GetURL(ctx, "asha_profile_1_photo.png")
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/asha_profile_1_photo.png", url)
}

func TestLocalStorageDelete(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "gone.png", strings.NewReader("x")))
	require.NoError(t, st.Delete(ctx, "gone.png"))

	exists, err := st.Exists(ctx, "gone.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageExistsMissing(t *testing.T) {
	st := newTestStorage(t)

	exists, err := st.Exists(context.Background(), "never-written.png")
	require.NoError(t, err)
	assert.False(t, exists)
}
