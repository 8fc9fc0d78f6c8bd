package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestWrap_KeepsSentinelAndStack(t *testing.T) {
	err := Wrapf(errSentinel, "loading %s", "order")

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "loading order: sentinel", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsSentinelAndStack")
}

func TestJoin_ReportsEveryFailure(t *testing.T) {
	other := Errorf("broker %d down", 2)
	err := Join(nil, errSentinel, other)

	assert.True(t, Is(err, errSentinel))
	assert.True(t, Is(err, other))
	assert.Nil(t, Join(nil, nil))
}
