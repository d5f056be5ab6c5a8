package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnvelope() Envelope {
	p := NewStdProvider()
	return NewEnvelope(NewKeyDerivation(p), NewCodec(p))
}

func TestEnvelope_SealOpen(t *testing.T) {
	e := newTestEnvelope()

	record, err := e.Seal("Hello vault", "correct-horse")
	require.NoError(t, err)
	require.True(t, record.HasSalt())

	got, err := e.Open(record, "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "Hello vault", got)
}

func TestEnvelope_FreshSaltPerRecord(t *testing.T) {
	e := newTestEnvelope()

	r1, err := e.Seal("same", "correct-horse")
	require.NoError(t, err)
	r2, err := e.Seal("same", "correct-horse")
	require.NoError(t, err)

	assert.NotEqual(t, r1.Salt, r2.Salt)
	assert.NotEqual(t, r1.IV, r2.IV)
	assert.NotEqual(t, r1.EncryptedContent, r2.EncryptedContent)
}

func TestEnvelope_WrongSecret(t *testing.T) {
	e := newTestEnvelope()

	record, err := e.Seal("Hello vault", "password-a")
	require.NoError(t, err)

	_, err = e.Open(record, "password-b")
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestEnvelope_RecordWithoutSalt(t *testing.T) {
	e := newTestEnvelope()

	record, err := e.Seal("Hello vault", "correct-horse")
	require.NoError(t, err)
	record.Salt = ""

	_, err = e.Open(record, "correct-horse")
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestEnvelope_EmptySecret(t *testing.T) {
	_, err := newTestEnvelope().Seal("Hello vault", "")
	assert.ErrorIs(t, err, ErrDerivation)
}
