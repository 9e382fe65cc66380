package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotAccessibleError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("access: %w", &NotAccessibleError{Status: "revoked"})

	assert.True(t, errors.Is(err, ErrNotAccessible))
	assert.False(t, errors.Is(err, ErrOtpExpired))
	assert.Contains(t, err.Error(), "status revoked")

	var nae *NotAccessibleError
	if assert.True(t, errors.As(err, &nae)) {
		assert.Equal(t, "revoked", nae.Status)
	}
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
