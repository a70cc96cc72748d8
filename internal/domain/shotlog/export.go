package shotlog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader matches the column order of the UI table.
var csvHeader = []string{"shot", "score", "x_mm", "y_mm"}

// WriteCSV writes the log as delimited text, one row per shot in log order,
// with millimeter offsets rounded to two decimals. An empty log yields
// ErrEmptyLog and nothing is written; callers surface that as "nothing to
// export" rather than producing a degenerate file.
func (l *Log) WriteCSV(w io.Writer) error {
	if len(l.shots) == 0 {
		return ErrEmptyLog
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range l.shots {
		row := []string{
			strconv.Itoa(s.Index),
			strconv.Itoa(s.Score),
			strconv.FormatFloat(s.XMM, 'f', 2, 64),
			strconv.FormatFloat(s.YMM, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", s.Index, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportCSV renders the log to a byte slice via WriteCSV.
func (l *Log) ExportCSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := l.WriteCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
