package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim"
)

// ParseTrace reads a workload trace: one `arrival,length` record per line.
// Blank lines and lines starting with '#' are skipped, whitespace around
// fields is tolerated and fields past the second are ignored. Ticket weights
// are never read from a trace; the registry assigns them by position.
func ParseTrace(r io.Reader) ([]sim.JobSpec, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var specs []sim.JobSpec
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &sim.ConfigError{Field: "trace", Err: fmt.Errorf("reading trace: %w", err)}
		}
		line, _ := reader.FieldPos(0)
		if len(row) < 2 {
			return nil, &sim.ConfigError{
				Field: fmt.Sprintf("trace line %d", line),
				Err:   fmt.Errorf("expected arrival,length; got %d field(s)", len(row)),
			}
		}
		arrival, err := parseField(row[0], "arrival", line)
		if err != nil {
			return nil, err
		}
		length, err := parseField(row[1], "length", line)
		if err != nil {
			return nil, err
		}
		specs = append(specs, sim.JobSpec{Arrival: arrival, Length: length})
	}
	return specs, nil
}

func parseField(raw, name string, line int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &sim.ConfigError{
			Field: fmt.Sprintf("trace line %d", line),
			Err:   fmt.Errorf("invalid %s %q: %w", name, raw, err),
		}
	}
	return v, nil
}

// LoadTrace opens and parses the trace file at path.
func LoadTrace(path string) ([]sim.JobSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &sim.ConfigError{Field: path, Err: fmt.Errorf("opening trace: %w", err)}
	}
	defer file.Close()

	specs, err := ParseTrace(file)
	if err != nil {
		var cfgErr *sim.ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Field = path + ": " + cfgErr.Field
		}
		return nil, err
	}
	logrus.Debugf("Loaded %d jobs from trace '%s'", len(specs), path)
	return specs, nil
}

// WriteTrace writes specs in the format ParseTrace reads.
func WriteTrace(w io.Writer, specs []sim.JobSpec) error {
	writer := csv.NewWriter(w)
	for _, s := range specs {
		if err := writer.Write([]string{
			strconv.FormatInt(s.Arrival, 10),
			strconv.FormatInt(s.Length, 10),
		}); err != nil {
			return fmt.Errorf("writing trace record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
