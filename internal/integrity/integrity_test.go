package integrity

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"applauncher/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumKnownValues(t *testing.T) {
	// CRC-32C check value from RFC 3720
	assert.Equal(t, uint32(0xE3069283), Checksum([]byte("123456789")))
	assert.Equal(t, uint32(0), Checksum(nil))
}

func TestChecksumOrderSensitive(t *testing.T) {
	assert.NotEqual(t, Checksum([]byte("ab")), Checksum([]byte("ba")))
}

func TestVerify(t *testing.T) {
	data := []byte("patch payload")
	assert.True(t, Verify(data, Checksum(data)))
	assert.False(t, Verify(data, Checksum(data)+1))
}

func TestVerifyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmp-file.pwr")
	data := []byte("some bytes")
	require.NoError(t, os.WriteFile(path, data, 0644))

	assert.NoError(t, VerifyFile(path, Checksum(data), Patch))

	err := VerifyFile(path, 1, Patch)
	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, Checksum(data), mismatch.Actual)
	assert.True(t, errors.Is(err, models.ErrPatchHashMismatch))
	assert.False(t, errors.Is(err, models.ErrSignatureHashMismatch))

	err = VerifyFile(path, 1, Signature)
	assert.True(t, errors.Is(err, models.ErrSignatureHashMismatch))
	assert.False(t, errors.Is(err, models.ErrPatchHashMismatch))
	assert.Contains(t, err.Error(), "signature")

	err = VerifyFile(filepath.Join(dir, "missing"), 0, Patch)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, models.ErrPatchHashMismatch))
}
