package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsSentinel(t *testing.T) {
	wrapped := Wrapf(Wrap(errSentinel, "inner"), "outer %d", 1)

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "outer 1: inner: sentinel", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "errors_test.go")
}

func TestJoinAndWithStack(t *testing.T) {
	other := Errorf("other %s", "failure")
	joined := Join(WithStack(errSentinel), other)

	assert.True(t, Is(joined, errSentinel))
	assert.True(t, Is(joined, other))
}
