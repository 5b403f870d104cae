package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIOError(t *testing.T) {
	err := NewIOError("readdir", "/tmp/missing", fs.ErrNotExist)

	assert.Equal(t, "readdir /tmp/missing: file does not exist", err.Error())
	assert.Equal(t, IOFailure, err.Kind())
	assert.True(t, Is(err, fs.ErrNotExist))
	assert.True(t, IsIOError(err))
	assert.False(t, IsConfigError(err))
	assert.Equal(t, "/tmp/missing", PathOf(err))

	// 经过 fmt.Errorf 包装后仍可识别
	wrapped := fmt.Errorf("organize: %w", err)
	assert.True(t, IsIOError(wrapped))
	assert.Equal(t, "/tmp/missing", PathOf(wrapped))

	var ioErr *IOError
	require.True(t, As(wrapped, &ioErr))
	assert.Equal(t, "readdir", ioErr.Op)
}

func TestIOErrorStripsPathError(t *testing.T) {
	pathErr := &fs.PathError{Op: "stat", Path: "/tmp/missing", Err: fs.ErrNotExist}
	err := NewIOError("stat", "/tmp/missing", pathErr)

	assert.Equal(t, "stat /tmp/missing: file does not exist", err.Error())
	assert.True(t, Is(err, fs.ErrNotExist))

	var got *fs.PathError
	require.True(t, As(err, &got))
	assert.Same(t, pathErr, got)
}

func TestIOErrorWithoutCause(t *testing.T) {
	err := NewIOError("mkdir", "/a/images", nil)
	assert.Equal(t, "mkdir /a/images", err.Error())
	assert.Nil(t, Unwrap(err))
}

func TestConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{"unknown", NewConfigError("--bogus", UnknownArgument, nil), "unknown argument --bogus"},
		{"missing", NewConfigError("-d", MissingValue, nil), "missing value for -d"},
		{"invalid", NewConfigError("x", InvalidArgument, nil), "invalid argument x"},
		{"wrapped", NewConfigError("-d", MissingValue, fmt.Errorf("flag needs an argument: 'd' in -d")), "flag needs an argument: 'd' in -d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, IsConfigError(tt.err))
			assert.False(t, IsIOError(tt.err))
		})
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "io", IOFailure.String())
	assert.Equal(t, "missing-value", MissingValue.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "", PathOf(nil))
}
