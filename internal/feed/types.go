package feed

import "encoding/xml"

// -----------------------------------------------------------------------------
// Page shape: nested poll/question/subpopulation documents
// -----------------------------------------------------------------------------

// pageDoc is one page of the paginated feed. An empty Polls slice marks
// the terminal page.
type pageDoc struct {
	Polls []pagePoll `xml:"poll"`
}

// pagePoll is one poll entry; a poll can carry questions on several
// topics and races.
type pagePoll struct {
	ID        int64          `xml:"id"`
	Pollster  string         `xml:"pollster"`
	Method    string         `xml:"method"`
	StartDate string         `xml:"start_date"` // YYYY-MM-DD
	EndDate   string         `xml:"end_date"`   // YYYY-MM-DD
	Questions []pageQuestion `xml:"questions>question"`
}

type pageQuestion struct {
	Topic          string    `xml:"topic"`
	State          string    `xml:"state"`
	Subpopulations []pageSub `xml:"subpopulations>subpopulation"`
}

type pageSub struct {
	Name         string         `xml:"name"`         // Voter-type label, e.g. "Likely Voter"
	Observations string         `xml:"observations"` // Sample size; non-numeric means unknown
	Responses    []pageResponse `xml:"responses>response"`
}

type pageResponse struct {
	Choice string `xml:"choice"`
	Value  string `xml:"value"`
}

// likelyVoter is the sub-population preferred when a poll reports more
// than one.
const likelyVoter = "Likely Voter"

// -----------------------------------------------------------------------------
// Unit shape: flat attribute-bag entries, one document per unit
// -----------------------------------------------------------------------------

// unitDoc is the per-unit feed document: a list of <n> poll entries.
type unitDoc struct {
	Polls []unitPoll `xml:"n"`
}

// unitPoll captures an <n> element's attributes by name. The candidate
// attributes vary by race, so a fixed struct schema cannot hold them.
type unitPoll struct {
	attrs map[string]string
}

func (p *unitPoll) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.attrs = make(map[string]string, len(start.Attr))
	for _, a := range start.Attr {
		p.attrs[a.Name.Local] = a.Value
	}
	return d.Skip()
}

// attr returns a named attribute value, or def when absent.
func (p *unitPoll) attr(name, def string) string {
	if v, ok := p.attrs[name]; ok {
		return v
	}
	return def
}
