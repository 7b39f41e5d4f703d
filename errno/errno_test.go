package errno

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestError_Code(t *testing.T) {
	assert.Equal(t, int(unix.EPERM), FromCode(int(unix.EPERM)).Code())
	assert.Equal(t, int(unix.ENOENT), FromCode(int(unix.ENOENT)).Code())
	assert.Equal(t, unix.ENOENT, FromCode(int(unix.ENOENT)).Errno())

	// Stored verbatim, even outside the platform's range.
	assert.Equal(t, -1, FromCode(-1).Code())
}

func TestLast(t *testing.T) {
	assert.Equal(t, FromCode(int(unix.EAGAIN)), Last(unix.EAGAIN))
	assert.Equal(t, WouldBlock, Last(unix.EAGAIN).Kind())

	// A failure without a code still yields a real platform code.
	e := Last(0)
	assert.Equal(t, int(unix.EIO), e.Code())
	assert.NotZero(t, e.Code())
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, unix.EISDIR.Error(), FromCode(int(unix.EISDIR)).Message())
	assert.Equal(t, "unknown error", FromCode(-1).Message())
	assert.Equal(t, "success", FromCode(0).Message())
	assert.Equal(t, "unknown error", FromCode(8192).Message())
}

func TestError_Name(t *testing.T) {
	assert.Equal(t, "ENOENT", FromCode(int(unix.ENOENT)).Name())
	assert.Equal(t, "EISDIR", FromCode(int(unix.EISDIR)).Name())
	assert.Equal(t, "Unknown", FromCode(0).Name())
	assert.Equal(t, "Unknown", FromCode(8192).Name())
}

func TestError_Format(t *testing.T) {
	e := FromCode(int(unix.EISDIR))
	assert.Equal(t, fmt.Sprintf("%s (code %d)", unix.EISDIR.Error(), int(unix.EISDIR)), e.Error())
	assert.Equal(t, fmt.Sprintf("errno.Error{EISDIR=%d}", int(unix.EISDIR)), fmt.Sprintf("%#v", e))
}

func TestError_Equality(t *testing.T) {
	assert.Equal(t, FromCode(int(unix.EBADF)), FromCode(int(unix.EBADF)))
	assert.NotEqual(t, FromCode(int(unix.EBADF)), FromCode(int(unix.EINVAL)))

	var err error = FromCode(int(unix.EBADF))
	assert.ErrorIs(t, err, FromCode(int(unix.EBADF)))
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestError_StdlibSentinels(t *testing.T) {
	assert.ErrorIs(t, FromCode(int(unix.ENOENT)), os.ErrNotExist)
	assert.ErrorIs(t, FromCode(int(unix.EEXIST)), os.ErrExist)
	assert.ErrorIs(t, FromCode(int(unix.EACCES)), os.ErrPermission)
	assert.NotErrorIs(t, FromCode(int(unix.EINVAL)), os.ErrNotExist)
	assert.NoError(t, FromCode(0).Unwrap())
}

func TestError_RoundTrip(t *testing.T) {
	for code := 1; code < 134; code++ {
		e := FromCode(code)

		sysErr := e.SyscallError("op")
		var se *os.SyscallError
		require.ErrorAs(t, sysErr, &se)
		assert.Equal(t, unix.Errno(code), se.Err)

		back, err := FromError(sysErr)
		require.NoError(t, err)
		assert.Equal(t, e, back, "code %d", code)

		back, err = FromError(e.PathError("open", "/nope"))
		require.NoError(t, err)
		assert.Equal(t, e, back, "code %d", code)

		back, err = FromError(fmt.Errorf("wrapped: %w", e))
		require.NoError(t, err)
		assert.Equal(t, e, back, "code %d", code)
	}
}

func TestFromError_NoCode(t *testing.T) {
	inputs := []error{
		nil,
		errors.New("plain"),
		io.EOF,
		fs.ErrNotExist,
		fmt.Errorf("wrapped: %w", io.ErrUnexpectedEOF),
		&fs.PathError{Op: "open", Path: "x", Err: errors.New("no code")},
		unix.Errno(0),
		FromCode(0),
	}
	for _, in := range inputs {
		_, err := FromError(in)
		assert.ErrorIs(t, err, ErrNoCode, "input %v", in)
		if in != nil {
			assert.ErrorIs(t, err, in)
		}
	}
}

func TestFromError_OSError(t *testing.T) {
	_, err := os.Open("/definitely/not/here")
	require.Error(t, err)

	e, cerr := FromError(err)
	require.NoError(t, cerr)
	assert.Equal(t, int(unix.ENOENT), e.Code())
	assert.Equal(t, NotFound, e.Kind())
}

func TestError_Temporary(t *testing.T) {
	assert.True(t, FromCode(int(unix.EINTR)).Temporary())
	assert.True(t, FromCode(int(unix.EAGAIN)).Temporary())
	assert.False(t, FromCode(int(unix.ENOENT)).Temporary())

	assert.True(t, FromCode(int(unix.EAGAIN)).Timeout())
	assert.True(t, FromCode(int(unix.ETIMEDOUT)).Timeout())
	assert.False(t, FromCode(int(unix.EINTR)).Timeout())
}
