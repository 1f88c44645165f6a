package feed

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/electionlab/poll-data/internal/model"
)

// FetchUnit retrieves and decodes the poll document for one unit. The
// client's base URL is a printf-style template taking the unit code.
func (c *Client) FetchUnit(ctx context.Context, unit string) ([]model.PollRecord, error) {
	body, err := c.fetch(ctx, fmt.Sprintf(c.baseURL, unit))
	if err != nil {
		return nil, fmt.Errorf("unit %s: %w", unit, err)
	}

	// The per-unit feed ships unescaped ampersands in attribute values
	// (pollster names like "Smith & Jones"); escape them wholesale
	// before handing the document to the parser.
	body = bytes.ReplaceAll(body, []byte("&"), []byte("&amp;"))

	var doc unitDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		// A syntax error will not parse better on a retry.
		return nil, fmt.Errorf("parse unit %s: %w", unit, err)
	}

	records := make([]model.PollRecord, 0, len(doc.Polls))
	for _, poll := range doc.Polls {
		if c.excludePollsters[poll.attr("pollster", "")] {
			continue
		}
		rec, err := c.toUnitRecord(unit, poll)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	c.logger.Debug("fetched unit feed", "unit", unit, "records", len(records))
	return records, nil
}

// FetchUnits retrieves every unit's document in the given order and
// concatenates the records. Any unit failing all retries aborts the
// whole fetch: a unit must not silently appear to have zero polls.
func (c *Client) FetchUnits(ctx context.Context, units []model.Unit) ([]model.PollRecord, error) {
	var records []model.PollRecord
	for _, u := range units {
		recs, err := c.FetchUnit(ctx, u.Code)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}

	c.logger.Info("unit feed walk complete", "units", len(units), "records", len(records))
	return records, nil
}
