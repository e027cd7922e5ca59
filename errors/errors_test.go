package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapf_KeepsCause(t *testing.T) {
	cause := os.ErrPermission
	wrapped := Wrapf(cause, "failed to write %s", "out/Person.java")

	assert.Contains(t, wrapped.Error(), "failed to write out/Person.java")
	assert.True(t, Is(wrapped, os.ErrPermission))
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.False(t, IsParseError(nil))
	assert.False(t, IsInvalidTargetError(nil))
}

func TestNewInvalidTargetError(t *testing.T) {
	err := NewInvalidTargetError("unknown target %q", "rust")

	require.Error(t, err)
	assert.Equal(t, `unknown target "rust"`, err.Error())
	assert.True(t, IsInvalidTargetError(err))
	assert.False(t, IsParseError(err))
	assert.Contains(t, GetAllHints(err), "supported targets: java, ts")
}

func TestIsParseError_ThroughWrapping(t *testing.T) {
	err := Wrap(Wrap(ErrParse, "line 3"), "failed to load model.ddef")

	assert.True(t, IsParseError(err))
	assert.Contains(t, err.Error(), "failed to load model.ddef")
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func ExampleWrap() {
	baseErr := New("permission denied")
	err := Wrap(baseErr, "failed to create output directory")
	fmt.Println(err)
	// Output: failed to create output directory: permission denied
}
