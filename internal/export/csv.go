package export

import (
	"bufio"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/electionlab/poll-data/internal/model"
)

const slashDateLayout = "01/02/2006"

// WritePollCSV writes the raw poll records for exploratory analysis,
// one row per record in the given order. The candidate percentage
// columns are headed by the lowercased candidate names, second
// candidate first, matching the historical export layout.
func WritePollCSV(path, firstCandidate, secondCandidate string, polls []model.PollRecord) error {
	return writeAtomic(path, func(bw *bufio.Writer) error {
		w := csv.NewWriter(bw)

		header := []string{
			"State", "pollster", "pop", "vtype", "method",
			"begmm", "begdd", "begyy", "endmm", "enddd", "endyy",
			strings.ToLower(secondCandidate), strings.ToLower(firstCandidate),
			"other", "undecided",
			"Begdate", "Enddate", "Middate",
		}
		if err := w.Write(header); err != nil {
			return err
		}

		for _, p := range polls {
			row := []string{
				p.Unit,
				p.Pollster,
				strconv.Itoa(p.SampleSize),
				p.VoterType,
				p.Method,
				strconv.Itoa(int(p.StartDate.Month())),
				strconv.Itoa(p.StartDate.Day()),
				strconv.Itoa(p.StartDate.Year()),
				strconv.Itoa(int(p.EndDate.Month())),
				strconv.Itoa(p.EndDate.Day()),
				strconv.Itoa(p.EndDate.Year()),
				p.Response.Second,
				p.Response.First,
				p.Response.Other,
				p.Response.Undecided,
				p.StartDate.Format(slashDateLayout),
				p.EndDate.Format(slashDateLayout),
				p.MidDate.Format(slashDateLayout),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}

		w.Flush()
		return w.Error()
	})
}
