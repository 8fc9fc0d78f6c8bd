package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"comanda/config"
	"comanda/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls [][]string
	fail  map[string]error
	err   error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.calls = append(f.calls, message.Tokens)

	resp := &messaging.BatchResponse{}
	for _, token := range message.Tokens {
		if err, ok := f.fail[token]; ok {
			resp.FailureCount++
			resp.Responses = append(resp.Responses, &messaging.SendResponse{Error: err})

			continue
		}
		resp.SuccessCount++
		resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true})
	}

	return resp, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_SendBatch_Empty(t *testing.T) {
	sender := &fakeSender{}
	svc := newFirebaseService(sender, discardLogger())

	result, err := svc.SendBatch(context.Background(), nil, &service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Empty(t, sender.calls)
}

func TestFirebaseService_SendBatch_ChunksTokens(t *testing.T) {
	sender := &fakeSender{}
	svc := newFirebaseService(sender, discardLogger())

	tokens := make([]string, 0, 1201)
	for i := range 1201 {
		tokens = append(tokens, "token-"+string(rune('a'+i%26)))
	}

	result, err := svc.SendBatch(context.Background(), tokens, &service.PushMessage{Title: "New order"})
	require.NoError(t, err)
	require.Len(t, sender.calls, 3)
	assert.Len(t, sender.calls[0], 500)
	assert.Len(t, sender.calls[1], 500)
	assert.Len(t, sender.calls[2], 201)
	assert.Equal(t, 1201, result.SuccessCount)
}

func TestFirebaseService_SendBatch_ProviderError(t *testing.T) {
	sender := &fakeSender{err: errors.New("unavailable")}
	svc := newFirebaseService(sender, discardLogger())

	_, err := svc.SendBatch(context.Background(), []string{"a"}, &service.PushMessage{})
	assert.Error(t, err)
}

func TestNewFirebaseService_WithoutCredentialsLogsOnly(t *testing.T) {
	svc, err := NewFirebaseService(context.Background(), &config.Config{}, discardLogger())
	require.NoError(t, err)

	result, err := svc.SendBatch(context.Background(), []string{"a", "b"}, &service.PushMessage{Title: "x"})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Empty(t, result.InvalidTokens)
}
