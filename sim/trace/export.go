package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSV column headers for exported dispatch traces.
var dispatchColumns = []string{"clock", "job_id", "arrival", "duration"}

// ExportCSV writes records as CSV with a header row.
func ExportCSV(w io.Writer, records []DispatchRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(dispatchColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, r := range records {
		row := []string{
			strconv.FormatInt(r.Clock, 10),
			strconv.Itoa(r.JobID),
			strconv.FormatInt(r.Arrival, 10),
			strconv.FormatInt(r.Duration, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
