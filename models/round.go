package models

// Round groups matches. Round numbers are contiguous starting at 1 within a
// bracket section.
type Round struct {
	ID       string      `json:"id"`
	Number   int         `json:"number"`
	Name     string      `json:"name"`
	Bracket  BracketType `json:"bracket,omitempty"`
	MatchIDs []string    `json:"match_ids"`
}

func (r *Round) clone() *Round {
	c := *r
	c.MatchIDs = append([]string(nil), r.MatchIDs...)
	return &c
}
