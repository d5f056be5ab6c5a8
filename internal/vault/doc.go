// Package vault holds the client vault session: the Locked, Unlocking and
// Unlocked lifecycle, secret acquisition from a password or a wallet, the
// ephemeral secret cache, and sealing and opening of note records.
//
// Errors returned by [Session] are [*UserError] values whose text is safe to
// show to the user. Match them with [errors.Is] against ErrCouldNotUnlock,
// ErrCouldNotSave, ErrInvalidNoteText, ErrUndecryptable, ErrCorruptRecord
// or ErrCryptoUnavailable; the crypto and wallet causes are reachable the same
// way.
package vault
