package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/electionlab/poll-data/internal/model"
)

// WriteStats writes the backfilled stat rows in their given order, one
// space-separated line per row:
//
//	count oldest_used_day_of_year center spread day_of_year
func WriteStats(path string, rows []model.StatRow) error {
	return writeAtomic(path, func(w *bufio.Writer) error {
		for _, r := range rows {
			_, err := fmt.Fprintf(w, "%d %d %s %s %d\n",
				r.Count, r.OldestDay, formatNum(r.Center), formatNum(r.Spread), r.Day)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// formatNum renders a float with minimal digits but always a decimal
// point, so integer-valued centers still read as decimals downstream.
func formatNum(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// writeAtomic runs fn against a temp file in path's directory and
// renames it into place on success. A failed run leaves any previous
// output untouched.
func writeAtomic(path string, fn func(w *bufio.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	if err := fn(w); err != nil {
		tmp.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("commit output: %w", err)
	}
	return nil
}
