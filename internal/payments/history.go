package payments

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// HistoryDate is the date stamped on every synthetic history record.
const HistoryDate = "2024-01-01"

// Record is one entry of a user's payment history.
type Record struct {
	ID     int     `json:"id"`
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// History generates synthetic payment records. Records are produced on
// demand and never stored.
type History struct {
	size int
}

// NewHistory creates a History that yields size records per user.
func NewHistory(size int) *History {
	return &History{size: size}
}

// RecordAt returns the i-th record for userID.
func RecordAt(userID int64, i int) Record {
	return Record{
		ID:     i,
		UserID: userID,
		Amount: float64(i) * 10.5,
		Date:   HistoryDate,
	}
}

// WriteJSON encodes {"payments": [...]} for userID to w one record at a
// time, so the full list is never held in memory.
func (h *History) WriteJSON(w io.Writer, userID int64) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	if _, err := io.WriteString(bw, `{"payments":[`); err != nil {
		return err
	}
	for i := 0; i < h.size; i++ {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return err
			}
		}
		if err := enc.Encode(RecordAt(userID, i)); err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
	}
	if _, err := io.WriteString(bw, "]}\n"); err != nil {
		return err
	}
	return bw.Flush()
}
