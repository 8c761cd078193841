package broadcast_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nn1-dev/mailcast/pkg/broadcast"
)

func TestNewDispatcher(t *testing.T) {
	t.Parallel()

	_, err := broadcast.NewDispatcher(&mockSender{})
	require.ErrorIs(t, err, broadcast.ErrBatchUnsupported)

	d, err := broadcast.NewDispatcher(&mockSender{}, broadcast.WithMode(broadcast.ModeIndividual))
	require.NoError(t, err)
	require.Equal(t, broadcast.ModeIndividual, d.Mode())

	_, err = broadcast.NewDispatcher(&recordingSender{maxBatch: 100}, broadcast.WithMode("parallel"))
	require.ErrorIs(t, err, broadcast.ErrInvalidMode)

	d, err = broadcast.NewDispatcher(&recordingSender{maxBatch: 100})
	require.NoError(t, err)
	require.Equal(t, broadcast.ModeBatch, d.Mode())
}

func TestDispatch_Batches(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{maxBatch: 100}
	d, err := broadcast.NewDispatcher(sender)
	require.NoError(t, err)

	emails := makeEmails(250)
	outcome, err := d.Dispatch(context.Background(), emails)
	require.NoError(t, err)

	require.Len(t, sender.batches, 3)
	require.Len(t, sender.batches[0], 100)
	require.Len(t, sender.batches[1], 100)
	require.Len(t, sender.batches[2], 50)
	require.Equal(t, "r0@example.com", sender.batches[0][0])
	require.Equal(t, "r100@example.com", sender.batches[1][0])
	require.Equal(t, "r249@example.com", sender.batches[2][49])

	require.Equal(t, broadcast.ModeBatch, outcome.Mode)
	require.Len(t, outcome.Sent, 250)
	require.Equal(t, "r0@example.com", outcome.Sent[0])
	require.Equal(t, "r249@example.com", outcome.Sent[249])
	require.Empty(t, sender.singles)
}

func TestDispatch_BatchSizeOption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		batchSize int
		wantSizes []int
	}{
		{name: "below provider max", batchSize: 40, wantSizes: []int{40, 40, 20}},
		{name: "above provider max", batchSize: 500, wantSizes: []int{50, 50}},
		{name: "unset", batchSize: 0, wantSizes: []int{50, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &recordingSender{maxBatch: 50}
			d, err := broadcast.NewDispatcher(sender, broadcast.WithBatchSize(tt.batchSize))
			require.NoError(t, err)

			_, err = d.Dispatch(context.Background(), makeEmails(100))
			require.NoError(t, err)

			sizes := make([]int, len(sender.batches))
			for i, b := range sender.batches {
				sizes[i] = len(b)
			}
			require.Equal(t, tt.wantSizes, sizes)
		})
	}
}

func TestDispatch_BatchFailure(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))

	providerErr := errors.New("rate limited")
	sender := &recordingSender{maxBatch: 100, failOn: map[int]error{1: providerErr}}
	d, err := broadcast.NewDispatcher(sender, broadcast.WithLogger(log))
	require.NoError(t, err)

	outcome, err := d.Dispatch(context.Background(), makeEmails(250))
	require.ErrorIs(t, err, broadcast.ErrDispatchFailed)
	require.ErrorIs(t, err, providerErr)
	require.Nil(t, outcome)

	// The third batch is never attempted.
	require.Len(t, sender.batches, 2)
	require.Contains(t, logs.String(), `"level":"ERROR"`)
	require.Contains(t, logs.String(), "rate limited")
}

func TestDispatch_NoEmails(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{maxBatch: 100}
	d, err := broadcast.NewDispatcher(sender)
	require.NoError(t, err)

	outcome, err := d.Dispatch(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, sender.batches)
	require.Empty(t, outcome.Sent)
}

func TestDispatch_Individual(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	sender.On("Send", mock.Anything, "r0@example.com").Return(nil).Once()
	sender.On("Send", mock.Anything, "r1@example.com").Return(errors.New("invalid recipient")).Once()
	sender.On("Send", mock.Anything, "r2@example.com").Return(nil).Once()

	d, err := broadcast.NewDispatcher(sender, broadcast.WithMode(broadcast.ModeIndividual))
	require.NoError(t, err)

	outcome, err := d.Dispatch(context.Background(), makeEmails(3))
	require.NoError(t, err)

	require.Equal(t, []string{"r0@example.com", "r2@example.com"}, outcome.SentSuccess)
	require.Equal(t, []string{"r1@example.com"}, outcome.SentError)
	require.Empty(t, outcome.Sent)
	sender.AssertExpectations(t)

	// Sends happen in resolve order.
	require.Len(t, sender.Calls, 3)
	for i, call := range sender.Calls {
		require.Equal(t, makeEmails(3)[i].To[0], call.Arguments.String(1))
	}
}

func TestDispatch_IndividualCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	sender := &mockSender{}
	sender.On("Send", mock.Anything, "r0@example.com").Return(nil).Run(func(mock.Arguments) { cancel() }).Once()

	d, err := broadcast.NewDispatcher(sender, broadcast.WithMode(broadcast.ModeIndividual))
	require.NoError(t, err)

	outcome, err := d.Dispatch(ctx, makeEmails(3))
	require.NoError(t, err)
	require.Equal(t, []string{"r0@example.com"}, outcome.SentSuccess)
	require.Equal(t, []string{"r1@example.com", "r2@example.com"}, outcome.SentError)
	sender.AssertExpectations(t)
}

func TestDispatch_BatchCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := &recordingSender{maxBatch: 100}
	d, err := broadcast.NewDispatcher(sender)
	require.NoError(t, err)

	_, err = d.Dispatch(ctx, makeEmails(10))
	require.ErrorIs(t, err, broadcast.ErrDispatchFailed)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, sender.batches)
}

func TestDispatch_RatePacing(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{maxBatch: 10}
	d, err := broadcast.NewDispatcher(sender, broadcast.WithRate(20))
	require.NoError(t, err)

	start := time.Now()
	_, err = d.Dispatch(context.Background(), makeEmails(30))
	require.NoError(t, err)

	// Burst of one: the second and third calls wait 50ms each.
	require.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	require.Len(t, sender.batches, 3)
}
