package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestUnix_FileLifecycle(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "foo")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o600))

	u := &Unix{}

	fd, err := u.Open(path, unix.O_RDWR, 0)
	require.NoError(t, err)

	var st unix.Stat_t
	require.NoError(t, u.Fstat(fd, &st))
	assert.Equal(t, int64(64), st.Size)

	off, err := u.Seek(fd, 32, unix.SEEK_SET)
	require.NoError(t, err)
	assert.Equal(t, int64(32), off)

	n, err := u.Write(fd, []byte("netfs"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = u.Seek(fd, 30, unix.SEEK_SET)
	require.NoError(t, err)

	buf := make([]byte, 8)
	n, err = u.Read(fd, buf)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte{0, 0, 'n', 'e', 't', 'f', 's', 0}, buf)

	require.NoError(t, u.Close(fd))
}

func TestUnix_Open_NotExist(t *testing.T) {
	t.Parallel()

	_, err := (&Unix{}).Open(filepath.Join(t.TempDir(), "missing"), unix.O_RDWR, 0)
	require.ErrorIs(t, err, unix.ENOENT)
}
