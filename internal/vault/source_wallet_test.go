package vault

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-vault/internal/mock"
	"github.com/MKhiriev/go-notes-vault/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testWalletKey = "289c2857d4598e37fb9647507e47a309d6133539bf21a8b9cb6df88fd5232032"

func TestWalletSession_SignsPinnedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	agent := mock.NewMockAgent(ctrl)
	s := NewSession(NewWalletSource(agent, 0), newTestEnvelope())
	ctx := context.Background()

	agent.EXPECT().Connect(gomock.Any()).Return("0xabc", nil)
	agent.EXPECT().SignMessage(gomock.Any(), "0xabc", UnlockMessage).Return("0xsig", nil)

	require.NoError(t, s.Unlock(ctx))
	assert.Equal(t, Unlocked, s.State())
}

func TestWalletSession_SignatureCachedForSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	agent := mock.NewMockAgent(ctrl)
	s := NewSession(NewWalletSource(agent, 0), newTestEnvelope())
	ctx := context.Background()

	agent.EXPECT().Connect(gomock.Any()).Return("0xabc", nil).Times(1)
	agent.EXPECT().SignMessage(gomock.Any(), "0xabc", UnlockMessage).Return("0xsig", nil).Times(1)

	record, err := s.SaveNote(ctx, "Hello vault")
	require.NoError(t, err)
	got, err := s.OpenNote(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "Hello vault", got)
}

func TestWalletSession_AgentFailures(t *testing.T) {
	tests := []struct {
		name       string
		connectErr error
		signErr    error
		wantCause  error
	}{
		{
			name:       "no agent",
			connectErr: errors.Join(wallet.ErrExternalAgent, wallet.ErrAgentUnavailable),
			wantCause:  wallet.ErrAgentUnavailable,
		},
		{
			name:      "user rejected",
			signErr:   errors.Join(wallet.ErrExternalAgent, wallet.ErrRejected),
			wantCause: wallet.ErrRejected,
		},
		{
			name:      "foreign error is categorised",
			signErr:   context.DeadlineExceeded,
			wantCause: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			agent := mock.NewMockAgent(ctrl)
			s := NewSession(NewWalletSource(agent, time.Second), newTestEnvelope())

			agent.EXPECT().Connect(gomock.Any()).Return("0xabc", tt.connectErr)
			if tt.connectErr == nil {
				agent.EXPECT().SignMessage(gomock.Any(), "0xabc", UnlockMessage).Return("", tt.signErr)
			}

			_, err := s.SaveNote(context.Background(), "Hello vault")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCouldNotSave)
			assert.ErrorIs(t, err, wallet.ErrExternalAgent)
			assert.ErrorIs(t, err, tt.wantCause)
			assert.Equal(t, ErrCouldNotSave.Error(), err.Error())
			assert.Equal(t, Locked, s.State())
		})
	}
}

func TestWalletSession_LocalSignerReopensAcrossSessions(t *testing.T) {
	signer, err := wallet.NewLocalSigner(testWalletKey)
	require.NoError(t, err)
	ctx := context.Background()

	first := NewSession(NewWalletSource(signer, 0), newTestEnvelope())
	record, err := first.SaveNote(ctx, "Hello vault")
	require.NoError(t, err)
	first.Lock()

	second := NewSession(NewWalletSource(signer, 0), newTestEnvelope())
	got, err := second.OpenNote(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "Hello vault", got)
}

func TestWalletSession_HasNoProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewSession(NewWalletSource(mock.NewMockAgent(ctrl), 0), newTestEnvelope())

	ok, err := s.HasProfile(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
