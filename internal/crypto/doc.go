// Package crypto implements the client-side envelope encryption used for
// notes: PBKDF2-HMAC-SHA256 key derivation and AES-256-GCM records with
// base64 fields.
//
// Nothing in this package logs. Plaintext, secrets and keys are only ever
// held in memory, keys inside a memguard enclave.
package crypto
