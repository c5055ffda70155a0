package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(KindSyncProcedure, "sync_rosters_from_staging", errors.New("deadlock found"))
	assert.Equal(t, "sync_procedure: sync_rosters_from_staging: deadlock found", err.Error())
}

func TestErrorFormattingOmitsEmptySegments(t *testing.T) {
	assert.Equal(t, "configuration", New(KindConfiguration, "", nil).Error())
	assert.Equal(t, "fetch: current rosters", New(KindFetch, "current rosters", nil).Error())
}

func TestNilErrorString(t *testing.T) {
	var e *E
	assert.Equal(t, "<nil>", e.Error())
}

func TestIsKind(t *testing.T) {
	base := New(KindStorageWrite, "staging1.skaters", errors.New("table gone"))

	assert.True(t, IsKind(base, KindStorageWrite))
	assert.False(t, IsKind(base, KindFetch))

	// Kind survives further wrapping up the call chain.
	wrapped := fmt.Errorf("target primary: %w", base)
	assert.True(t, IsKind(wrapped, KindStorageWrite))

	assert.False(t, IsKind(errors.New("plain"), KindStorageWrite))
	assert.False(t, IsKind(nil, KindStorageWrite))
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := New(KindConnection, "primary", cause)
	assert.ErrorIs(t, err, cause)
}
