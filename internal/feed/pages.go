package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/electionlab/poll-data/internal/model"
)

// FetchPages walks the paginated feed from page 1 until a terminal
// empty page and returns every decoded poll record. Records are not
// deduplicated here: the feed resends closed polls across pages, and
// the caller's seen-set decides which sighting counts.
func (c *Client) FetchPages(ctx context.Context) ([]model.PollRecord, error) {
	var records []model.PollRecord

	for page := 1; ; page++ {
		if c.maxPages > 0 && page > c.maxPages {
			return nil, fmt.Errorf("feed did not terminate within %d pages", c.maxPages)
		}

		body, err := c.fetch(ctx, c.baseURL+strconv.Itoa(page))
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		var doc pageDoc
		if err := xml.Unmarshal(body, &doc); err != nil {
			// A syntax error will not parse better on a retry.
			return nil, fmt.Errorf("parse page %d: %w", page, err)
		}

		if len(doc.Polls) == 0 {
			c.logger.Debug("terminal feed page", "page", page)
			break
		}

		if c.pageHook != nil {
			c.pageHook(page, body)
		}

		recs, err := c.convertPage(doc)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		records = append(records, recs...)

		c.logger.Debug("fetched feed page", "page", page, "polls", len(doc.Polls), "records", len(recs))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pageDelay):
		}
	}

	c.logger.Info("feed walk complete", "records", len(records))
	return records, nil
}

// convertPage expands one page into poll records: questions filtered by
// topic, one record per poll from its chosen sub-population.
func (c *Client) convertPage(doc pageDoc) ([]model.PollRecord, error) {
	var records []model.PollRecord

	for _, poll := range doc.Polls {
		if c.excludePollsters[poll.Pollster] {
			continue
		}
		for _, q := range poll.Questions {
			if c.topic != "" && q.Topic != c.topic {
				continue
			}
			for _, sub := range chooseSubpopulations(q.Subpopulations) {
				rec, err := c.toRecord(poll, q, sub)
				if err != nil {
					return nil, err
				}
				records = append(records, rec)
			}
		}
	}

	return records, nil
}

// chooseSubpopulations picks which sub-populations of a question to
// keep: with two or more reported, only "Likely Voter"; otherwise
// whichever single one is present.
func chooseSubpopulations(subs []pageSub) []pageSub {
	if len(subs) < 2 {
		return subs
	}
	for _, sub := range subs {
		if sub.Name == likelyVoter {
			return []pageSub{sub}
		}
	}
	return nil
}
