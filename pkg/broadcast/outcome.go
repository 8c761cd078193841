package broadcast

// Outcome is the result of a dispatch. Sent is filled in batch mode,
// SentSuccess and SentError in individual mode. All lists follow resolve order.
type Outcome struct {
	Mode        Mode
	Sent        []string
	SentSuccess []string
	SentError   []string
}

// IndividualResult is the response shape of an individual-mode dispatch.
type IndividualResult struct {
	SentSuccess []string `json:"sentSuccess"`
	SentError   []string `json:"sentError"`
}

// Data returns the response payload for the outcome: the flat list of
// dispatched addresses in batch mode, or the success/error split otherwise.
func (o *Outcome) Data() any {
	if o.Mode == ModeIndividual {
		return IndividualResult{
			SentSuccess: nonNil(o.SentSuccess),
			SentError:   nonNil(o.SentError),
		}
	}
	return nonNil(o.Sent)
}

// Total is the number of recipients the dispatch covered.
func (o *Outcome) Total() int {
	return len(o.Sent) + len(o.SentSuccess) + len(o.SentError)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
