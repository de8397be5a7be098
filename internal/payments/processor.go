// Package payments simulates a card charge flow and a payment history feed.
package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alfagnish/demoapi/internal/models"
)

// TransactionID is returned for every charge. No real processor assigns one.
const TransactionID = "12345"

// Options tunes the simulated costs of a charge.
type Options struct {
	ProcessorDelay time.Duration // latency of the external processor
	FetchCount     int           // directory lookups made by Charge
	LogLines       int           // lines written by TransactionLog
}

// Receipt describes a processed payment.
type Receipt struct {
	TransactionID string
	Amount        float64
	MaskedCard    string
	LogBytes      int
	Fetched       int
}

// Processor runs simulated charges. It holds no per-request state and is
// safe for concurrent use.
type Processor struct {
	opts Options
	dir  *Directory
}

// NewProcessor creates a Processor that looks users up in dir.
func NewProcessor(opts Options, dir *Directory) *Processor {
	return &Processor{opts: opts, dir: dir}
}

// Process waits out the processor latency, builds the transaction log and
// charges the card. It fails only when ctx is done first.
func (p *Processor) Process(ctx context.Context, req models.PaymentRequest) (*Receipt, error) {
	if err := sleep(ctx, p.opts.ProcessorDelay); err != nil {
		return nil, fmt.Errorf("await processor: %w", err)
	}

	txLog := TransactionLog(req.UserID, p.opts.LogLines)

	fetched, err := p.Charge(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("charge card: %w", err)
	}

	return &Receipt{
		TransactionID: TransactionID,
		Amount:        req.Amount,
		MaskedCard:    MaskCard(req.CardNumber),
		LogBytes:      len(txLog),
		Fetched:       fetched,
	}, nil
}

// Charge simulates the card charge by looking up FetchCount directory users
// one at a time, and returns how many were fetched. The card details are
// accepted as-is.
func (p *Processor) Charge(ctx context.Context, req models.PaymentRequest) (int, error) {
	users := make([]DirectoryUser, 0, p.opts.FetchCount)
	for i := 0; i < p.opts.FetchCount; i++ {
		u, err := p.dir.FetchUser(ctx, i)
		if err != nil {
			return len(users), err
		}
		users = append(users, u)
	}
	return len(users), nil
}

// TransactionLog renders n progress lines for userID.
func TransactionLog(userID int64, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "Processing transaction %d for user %d...", i, userID)
	}
	return b.String()
}

// MaskCard hides all but the last four characters of a card number.
func MaskCard(card string) string {
	r := []rune(card)
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-4) + string(r[len(r)-4:])
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
