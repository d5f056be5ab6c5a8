// Package wallet provides the external signing agents used to unlock the
// vault with a wallet signature instead of a password.
package wallet
