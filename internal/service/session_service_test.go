package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MikhailRaia/tavus-session-proxy/internal/metrics"
	"github.com/MikhailRaia/tavus-session-proxy/internal/model"
	"github.com/MikhailRaia/tavus-session-proxy/internal/tavus"
)

type mockCreator struct {
	mock.Mock
}

func (m *mockCreator) CreateConversation(ctx context.Context, req model.ConversationRequest) (*model.Conversation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func TestSessionService_CreateSession(t *testing.T) {
	wantReq := model.ConversationRequest{ReplicaID: "r1", PersonaID: "p1"}

	tests := []struct {
		name         string
		conversation *model.Conversation
		mockErr      error
		want         string
		wantErr      error
		wantOutcome  string
	}{
		{
			name:         "Successful session",
			conversation: &model.Conversation{ConversationURL: "https://x"},
			want:         "https://x",
			wantOutcome:  metrics.OutcomeSuccess,
		},
		{
			name:        "Missing conversation URL",
			mockErr:     tavus.ErrEmptyConversationURL,
			wantErr:     tavus.ErrEmptyConversationURL,
			wantOutcome: metrics.OutcomeEmptySession,
		},
		{
			name:         "Client returns empty conversation without error",
			conversation: &model.Conversation{},
			wantErr:      tavus.ErrEmptyConversationURL,
			wantOutcome:  metrics.OutcomeEmptySession,
		},
		{
			name:        "Upstream status",
			mockErr:     fmt.Errorf("%w: 401: denied", tavus.ErrUnexpectedStatus),
			wantErr:     tavus.ErrUnexpectedStatus,
			wantOutcome: metrics.OutcomeStatus,
		},
		{
			name:        "Transport failure",
			mockErr:     errors.New("connection refused"),
			wantOutcome: metrics.OutcomeTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := new(mockCreator)
			creator.On("CreateConversation", mock.Anything, wantReq).Return(tt.conversation, tt.mockErr).Once()

			before := testutil.ToFloat64(metrics.TavusSessionsTotal.WithLabelValues(tt.wantOutcome))

			svc := NewSessionService(creator, "r1", "p1")
			got, err := svc.CreateSession(context.Background())

			if tt.wantErr != nil || tt.mockErr != nil {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Empty(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			after := testutil.ToFloat64(metrics.TavusSessionsTotal.WithLabelValues(tt.wantOutcome))
			assert.Equal(t, before+1, after)

			creator.AssertExpectations(t)
		})
	}
}

func TestOutcome_DecodeError(t *testing.T) {
	err := &tavus.DecodeError{Err: errors.New("invalid character"), Body: "<html>"}
	assert.Equal(t, metrics.OutcomeDecode, outcome(nil, err))
}

func BenchmarkSessionService_CreateSession(b *testing.B) {
	creator := new(mockCreator)
	creator.On("CreateConversation", mock.Anything, mock.Anything).Return(&model.Conversation{ConversationURL: "https://x"}, nil)

	svc := NewSessionService(creator, "r1", "p1")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.CreateSession(context.Background())
	}
}
