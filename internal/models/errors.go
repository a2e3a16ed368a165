package models

import (
	"errors"
)

// Error kinds of the update pipeline. Every one of them ends the current run.
var (
	ErrCatalogUnavailable    = errors.New("update server did not respond")
	ErrCatalogMalformed      = errors.New("malformed patch list")
	ErrDownloadFailed        = errors.New("download failed")
	ErrPatchHashMismatch     = errors.New("checksum on patch did not match")
	ErrSignatureHashMismatch = errors.New("checksum on signature did not match")
	ErrApplyFailed           = errors.New("patching tool failed")
	ErrManifestCorrupt       = errors.New("install manifest is corrupt")
	ErrManifestWriteFailed   = errors.New("install manifest could not be written")
	ErrWorkerCrashed         = errors.New("update worker crashed")
)

var errorKinds = []struct {
	err  error
	name string
}{
	{ErrCatalogUnavailable, "catalog_unavailable"},
	{ErrCatalogMalformed, "catalog_malformed"},
	{ErrDownloadFailed, "download_failed"},
	{ErrPatchHashMismatch, "patch_hash_mismatch"},
	{ErrSignatureHashMismatch, "signature_hash_mismatch"},
	{ErrApplyFailed, "apply_failed"},
	{ErrManifestCorrupt, "manifest_corrupt"},
	{ErrManifestWriteFailed, "manifest_write_failed"},
	{ErrWorkerCrashed, "worker_crashed"},
}

/**
 * Map an error to the name of its kind
 * @param {error} err - Error returned by the pipeline
 * @returns {string} Kind name used as metric label, "unknown" if no kind matches
 */
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}
