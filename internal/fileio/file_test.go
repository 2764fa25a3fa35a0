package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/netfsbench/internal/fileio/mocks"
	"github.com/desertwitch/netfsbench/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func newTestFile(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "foo")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestOpenReadWrite_Success(t *testing.T) {
	t.Parallel()

	path := newTestFile(t, make([]byte, 1000))
	handler := NewHandler(&schema.Unix{})

	f, err := handler.OpenReadWrite(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, path, f.Path())

	size, err := f.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), size)

	require.NoError(t, f.Close())
}

func TestOpenReadWrite_Fail_NotExist(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&schema.Unix{})
	path := filepath.Join(t.TempDir(), "missing")

	f, err := handler.OpenReadWrite(path)
	require.ErrorIs(t, err, ErrOpen)
	require.ErrorIs(t, err, unix.ENOENT)
	assert.Nil(t, f)
	assert.Contains(t, err.Error(), path)
}

func TestOpenReadWrite_NeverCreates(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	handler := NewHandler(unixMock)

	unixMock.On("Open", "/mnt/netfs/foo", unix.O_RDWR|unix.O_CLOEXEC, uint32(0)).Return(3, nil).Once()

	f, err := handler.OpenReadWrite("/mnt/netfs/foo")
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestOpenReadOnly_Success_RetriesEINTR(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	handler := NewHandler(unixMock)

	unixMock.On("Open", "/mnt/netfs/foo", unix.O_RDONLY|unix.O_CLOEXEC, uint32(0)).Return(-1, unix.EINTR).Once()
	unixMock.On("Open", "/mnt/netfs/foo", unix.O_RDONLY|unix.O_CLOEXEC, uint32(0)).Return(4, nil).Once()

	f, err := handler.OpenReadOnly("/mnt/netfs/foo")
	require.NoError(t, err)
	assert.Equal(t, 4, f.fd)
}

func TestWriteExact_ReadUpTo_Success_RoundTrip(t *testing.T) {
	t.Parallel()

	path := newTestFile(t, make([]byte, 200))
	handler := NewHandler(&schema.Unix{})

	writer, err := handler.OpenReadWrite(path)
	require.NoError(t, err)
	defer writer.Close()

	reader, err := handler.OpenReadOnly(path)
	require.NoError(t, err)
	defer reader.Close()

	buf := XORPattern(50)
	require.NoError(t, writer.SeekTo(100))

	n, err := writer.WriteExact(buf)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
	require.NoError(t, writer.Close())

	require.NoError(t, reader.SeekTo(100))
	got := make([]byte, 100)
	n, err = reader.ReadUpTo(got)
	require.NoError(t, err)
	assert.Equal(t, 100, n)
	assert.Equal(t, buf, got[:50])
	assert.Equal(t, make([]byte, 50), got[50:])
}

func TestWriteExact_Fail_ShortWrite(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	f := &File{fd: 3, path: "/mnt/netfs/foo", unixHandler: unixMock}

	unixMock.On("Write", 3, mock.Anything).Return(40, nil).Once()

	n, err := f.WriteExact(make([]byte, 100))
	require.ErrorIs(t, err, ErrShortWrite)
	require.ErrorIs(t, err, ErrWrite)
	assert.Equal(t, 40, n)
	assert.Contains(t, err.Error(), "40/100 bytes")
}

func TestWriteExact_Fail_WriteError(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	f := &File{fd: 3, path: "/mnt/netfs/foo", unixHandler: unixMock}

	unixMock.On("Write", 3, mock.Anything).Return(-1, unix.EIO).Once()

	n, err := f.WriteExact(make([]byte, 100))
	require.ErrorIs(t, err, ErrWrite)
	require.ErrorIs(t, err, unix.EIO)
	require.NotErrorIs(t, err, ErrShortWrite)
	assert.Equal(t, 0, n)
}

func TestReadUpTo_Fail(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	f := &File{fd: 3, path: "/mnt/netfs/foo", unixHandler: unixMock}

	unixMock.On("Read", 3, mock.Anything).Return(-1, unix.EBADF).Once()

	_, err := f.ReadUpTo(make([]byte, 100))
	require.ErrorIs(t, err, ErrRead)
	require.ErrorIs(t, err, unix.EBADF)
}

func TestSeekTo_Fail(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	f := &File{fd: 3, path: "/mnt/netfs/foo", unixHandler: unixMock}

	unixMock.On("Seek", 3, int64(4096), unix.SEEK_SET).Return(int64(-1), unix.EINVAL).Once()

	err := f.SeekTo(4096)
	require.ErrorIs(t, err, ErrSeek)
	assert.Contains(t, err.Error(), "off=4096")
}

func TestSize_Fail(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	f := &File{fd: 3, path: "/mnt/netfs/foo", unixHandler: unixMock}

	unixMock.On("Fstat", 3, mock.Anything).Return(unix.EIO).Once()

	size, err := f.Size()
	require.ErrorIs(t, err, ErrStat)
	assert.Equal(t, int64(0), size)
}

func TestSize_Success_Mocked(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	f := &File{fd: 3, path: "/mnt/netfs/foo", unixHandler: unixMock}

	unixMock.On("Fstat", 3, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*unix.Stat_t).Size = 8192
	}).Return(nil).Once()

	size, err := f.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(8192), size)
}

func TestClose_Success_Idempotent(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	f := &File{fd: 3, path: "/mnt/netfs/foo", unixHandler: unixMock}

	unixMock.On("Close", 3).Return(nil).Once()

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

func TestClose_Fail_ReleasedAnyway(t *testing.T) {
	t.Parallel()

	unixMock := mocks.NewUnixProvider(t)
	f := &File{fd: 3, path: "/mnt/netfs/foo", unixHandler: unixMock}

	unixMock.On("Close", 3).Return(unix.EIO).Once()

	err := f.Close()
	require.ErrorIs(t, err, ErrClose)
	require.ErrorIs(t, err, unix.EIO)

	require.NoError(t, f.Close(), "a second close should not reach the syscall")
}

func TestErrShortWrite_IsWrite(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(ErrShortWrite, ErrWrite))
	assert.False(t, errors.Is(ErrWrite, ErrShortWrite))
}
