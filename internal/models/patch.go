package models

/**
 * One patch returned by the remote catalog (serialized to JSON format)
 * @property {uint64} id - Patch identifier, becomes the patch level once applied
 * @property {string} app - Application name
 * @property {string} name - Display name
 * @property {string} platform - Target platform
 * @property {int64} issuer - Issuer identifier
 * @property {string} url - Download URL of the patch payload
 * @property {uint32} hash - CRC-32C of the patch payload
 * @property {string} sig - Download URL of the signature file
 * @property {uint32} sig_hash - CRC-32C of the signature file
 * @property {string} arch - Target architecture
 */
type PatchDescriptor struct {
	ID       uint64 `json:"id"`
	App      string `json:"app"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Issuer   int64  `json:"issuer"`
	URL      string `json:"url"`
	Hash     uint32 `json:"hash"`
	Sig      string `json:"sig"`
	SigHash  uint32 `json:"sig_hash"`
	Arch     string `json:"arch"`
}
