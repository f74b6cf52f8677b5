package learning

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedStore = errors.New("malformed store")

var header = []string{
	"value", "own_food", "enemy_food", "own_non_workers", "enemy_non_workers",
	"tunnel_distances", "queen_distances",
}

const listSep = ";"

// Encode serializes every record, in order, as CSV.
func Encode(store *Store) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write store header: %w", err)
	}
	for _, r := range store.Records() {
		if err := writer.Write(toRow(r)); err != nil {
			return nil, fmt.Errorf("failed to write store row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush store: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses the output of Encode into a new store.
func Decode(data []byte, options ...StoreOption) (*Store, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = len(header)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStore, err)
	}
	if len(rows) == 0 || strings.Join(rows[0], ",") != strings.Join(header, ",") {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedStore)
	}

	store := NewStore(options...)
	for i, row := range rows[1:] {
		snap, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedStore, i+1, err)
		}
		store.Append(snap)
	}
	return store, nil
}

func toRow(s *Snapshot) []string {
	return []string{
		formatFloat(s.Value),
		strconv.Itoa(s.OwnFood),
		strconv.Itoa(s.EnemyFood),
		strconv.Itoa(s.OwnNonWorkers),
		strconv.Itoa(s.EnemyNonWorkers),
		formatList(s.TunnelDistances),
		formatList(s.QueenDistances),
	}
}

func fromRow(row []string) (*Snapshot, error) {
	value, err := strconv.ParseFloat(row[0], 64)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	counts := make([]int, 4)
	for i := range counts {
		if counts[i], err = strconv.Atoi(row[i+1]); err != nil {
			return nil, fmt.Errorf("%s: %w", header[i+1], err)
		}
	}
	tunnel, err := parseList(row[5])
	if err != nil {
		return nil, fmt.Errorf("tunnel distances: %w", err)
	}
	queen, err := parseList(row[6])
	if err != nil {
		return nil, fmt.Errorf("queen distances: %w", err)
	}
	return &Snapshot{
		Value:           value,
		OwnFood:         counts[0],
		EnemyFood:       counts[1],
		OwnNonWorkers:   counts[2],
		EnemyNonWorkers: counts[3],
		TunnelDistances: tunnel,
		QueenDistances:  queen,
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, listSep)
}

func parseList(field string) ([]float64, error) {
	if field == "" {
		return nil, nil
	}
	parts := strings.Split(field, listSep)
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
