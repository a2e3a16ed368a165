package integrity

import (
	"fmt"
	"hash/crc32"
	"os"

	"applauncher/internal/models"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Artifact names one of the two files downloaded per patch.
type Artifact int

const (
	Patch Artifact = iota
	Signature
)

func (a Artifact) String() string {
	if a == Signature {
		return "signature"
	}
	return "patch"
}

func (a Artifact) sentinel() error {
	if a == Signature {
		return models.ErrSignatureHashMismatch
	}
	return models.ErrPatchHashMismatch
}

// Checksum returns the CRC-32C of data.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}

// Verify reports whether data has the expected CRC-32C.
func Verify(data []byte, expected uint32) bool {
	return Checksum(data) == expected
}

/**
 * Checksum mismatch of one downloaded artifact
 * @property {Artifact} artifact - Which of the two files failed
 * @property {uint32} actual - Checksum of the downloaded bytes
 * @property {uint32} expected - Checksum announced by the catalog
 */
type MismatchError struct {
	Artifact Artifact
	Path     string
	Actual   uint32
	Expected uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("CRC32 checksum on %s did not match (downloaded: %d, server: %d)",
		e.Artifact, e.Actual, e.Expected)
}

// Is makes errors.Is match the per-artifact error kind.
func (e *MismatchError) Is(target error) bool {
	return target == e.Artifact.sentinel()
}

/**
 * Verify a downloaded file against its expected checksum
 * @param {string} path - Downloaded file
 * @param {uint32} expected - Checksum from the catalog
 * @param {Artifact} artifact - Patch or Signature, selects the error kind
 * @returns {error} *MismatchError on mismatch, read errors as-is
 * @description
 * - The checksum always covers the whole file content
 */
func VerifyFile(path string, expected uint32, artifact Artifact) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s '%s': %w", artifact, path, err)
	}
	if actual := Checksum(data); actual != expected {
		return &MismatchError{Artifact: artifact, Path: path, Actual: actual, Expected: expected}
	}
	return nil
}
