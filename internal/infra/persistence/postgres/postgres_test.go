package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaits_Next(t *testing.T) {
	w := &poolWaits{prev: sql.DBStats{WaitCount: 10, WaitDuration: time.Second}}

	_, _, ok := w.next(sql.DBStats{WaitCount: 10, WaitDuration: time.Second})
	assert.False(t, ok, "no new waits")

	attrs, slow, ok := w.next(sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond, InUse: 4, MaxOpenConnections: 4})
	assert.True(t, ok)
	assert.False(t, slow)
	assert.Equal(t, int64(2), attrs[0].Value.Int64())
	assert.Equal(t, 10*time.Millisecond, attrs[2].Value.Duration())

	_, slow, ok = w.next(sql.DBStats{WaitCount: 13, WaitDuration: time.Second + 90*time.Millisecond})
	assert.True(t, ok)
	assert.True(t, slow)
}
