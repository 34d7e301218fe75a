package search

// Enrichment carries the per-page auxiliary data fetched in a fixed number of
// batched queries: viewer applied/saved state, benefit names, and structured
// description sections, all keyed by internal job id.
type Enrichment struct {
	Applied      map[uint]bool
	Saved        map[uint]bool
	Benefits     map[uint][]string
	Descriptions map[uint]map[string][]string
}

// NewEnrichment returns an empty enrichment, the correct value for an empty
// page or an anonymous viewer.
func NewEnrichment() *Enrichment {
	return &Enrichment{
		Applied:      make(map[uint]bool),
		Saved:        make(map[uint]bool),
		Benefits:     make(map[uint][]string),
		Descriptions: make(map[uint]map[string][]string),
	}
}

func (e *Enrichment) applied(jobID uint) bool {
	return e != nil && e.Applied[jobID]
}

func (e *Enrichment) saved(jobID uint) bool {
	return e != nil && e.Saved[jobID]
}

func (e *Enrichment) benefits(jobID uint) []string {
	if e == nil || e.Benefits[jobID] == nil {
		return []string{}
	}
	return e.Benefits[jobID]
}

func (e *Enrichment) descriptions(jobID uint) map[string][]string {
	if e == nil || e.Descriptions[jobID] == nil {
		return map[string][]string{}
	}
	return e.Descriptions[jobID]
}
