package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"antics/engine"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameResults(results []engine.GameResult) error {
	path := filepath.Join(w.baseDir, "game_results.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game results file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "winner", "turns", "moves", "start_time", "end_time", "duration", "store0", "store1"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game results header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.ID.String(),
			strconv.Itoa(r.Winner),
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.Moves),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
			strconv.Itoa(r.StoreSizes[0]),
			strconv.Itoa(r.StoreSizes[1]),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game result row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game results: %w", err)
	}
	return nil
}
