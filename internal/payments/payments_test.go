package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alfagnish/demoapi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(delay time.Duration, fetches int) *Processor {
	return NewProcessor(Options{
		ProcessorDelay: delay,
		FetchCount:     fetches,
		LogLines:       3,
	}, NewDirectory(0))
}

func TestProcessAcceptsAnything(t *testing.T) {
	p := newTestProcessor(time.Millisecond, 25)

	rec, err := p.Process(context.Background(), models.PaymentRequest{
		UserID:     -1,
		Amount:     -99.5,
		CardNumber: "definitely not a card",
		CVV:        "x",
	})
	require.NoError(t, err)

	assert.Equal(t, "12345", rec.TransactionID)
	assert.Equal(t, -99.5, rec.Amount)
	assert.Equal(t, 25, rec.Fetched)
	assert.Equal(t, "*****************card", rec.MaskedCard)
	assert.Positive(t, rec.LogBytes)
}

func TestProcessCancelledDuringProcessorWait(t *testing.T) {
	p := newTestProcessor(time.Hour, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := p.Process(ctx, models.PaymentRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Less(t, time.Since(start), time.Second)
}

func TestChargeStopsOnDeadline(t *testing.T) {
	p := NewProcessor(Options{FetchCount: 1000}, NewDirectory(5*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	fetched, err := p.Charge(ctx, models.PaymentRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, fetched, 1000)
}

func TestDirectoryFetchUser(t *testing.T) {
	u, err := NewDirectory(0).FetchUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, DirectoryUser{ID: 7, Name: "User 7"}, u)
}

func TestTransactionLog(t *testing.T) {
	got := TransactionLog(42, 2)

	assert.Equal(t, "Processing transaction 0 for user 42...Processing transaction 1 for user 42...", got)
	assert.Empty(t, TransactionLog(42, 0))
}

func TestMaskCard(t *testing.T) {
	tests := map[string]string{
		"4111111111111111": "************1111",
		"1234":             "****",
		"12":               "**",
		"":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, MaskCard(in), "card %q", in)
	}
}

func TestRecordAt(t *testing.T) {
	rec := RecordAt(9, 4)

	assert.Equal(t, Record{ID: 4, UserID: 9, Amount: 42, Date: "2024-01-01"}, rec)
}

func TestHistoryWriteJSON(t *testing.T) {
	h := NewHistory(1000)

	var buf bytes.Buffer
	require.NoError(t, h.WriteJSON(&buf, 77))

	var body struct {
		Payments []Record `json:"payments"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
	require.Len(t, body.Payments, 1000)

	for i, rec := range body.Payments {
		assert.Equal(t, i, rec.ID)
		assert.Equal(t, int64(77), rec.UserID)
		assert.InDelta(t, float64(i)*10.5, rec.Amount, 1e-9)
		assert.Equal(t, HistoryDate, rec.Date)
	}
}

func TestHistoryWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHistory(0).WriteJSON(&buf, 1))

	assert.JSONEq(t, `{"payments":[]}`, strings.TrimSpace(buf.String()))
}
