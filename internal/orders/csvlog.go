package orders

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// logHeader is written once, when the log file is first created. Column
// names follow the historical orders.csv layout; order_id was appended later
// and sits last so existing consumers keep their column positions.
var logHeader = []string{
	"name", "phone", "address", "blouse_title", "blouse_id", "price_inr", "total_amount", "order_id",
}

// Log appends orders to a CSV file, one row per product. The catalog and
// vocabulary are read-only, so this file is the only mutable shared resource
// in the process; a single mutex serializes writers to keep rows from
// interleaving.
//
// Writes are at-most-once: an append failure propagates to the caller and is
// never retried, so a client retry after an error may double-log.
type Log struct {
	mu   sync.Mutex
	path string
}

// NewLog creates a log writer for the given file path. The file itself is
// created lazily on the first append.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location.
func (l *Log) Path() string { return l.path }

// Append writes one row per product in the order. The header row is written
// only when the file does not exist yet. The file is opened and closed per
// call so a crashed process never holds a dangling descriptor.
func (l *Log) Append(o Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, statErr := os.Stat(l.path)
	exists := statErr == nil

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open order log: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write(logHeader); err != nil {
			return fmt.Errorf("failed to write order log header: %w", err)
		}
	}
	total := strconv.Itoa(o.TotalAmount)
	for _, p := range o.Products {
		row := []string{o.Name, o.Phone, o.Address, p.Title, p.DesignID, rawPrice(p.PriceINR), total, o.ID}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write order row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush order log: %w", err)
	}
	return nil
}

// RowCount returns the number of rows currently in the log, header
// included. A missing file counts as zero rows.
func (l *Log) RowCount() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open order log: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read order log: %w", err)
	}
	return len(rows), nil
}
