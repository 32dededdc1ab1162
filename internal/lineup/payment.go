package lineup

// Ledger tracks who has paid their share of the pitch fee.
type Ledger struct {
	Fee  int64
	paid map[int]bool
}

// NewLedger returns an empty ledger charging fee per player.
func NewLedger(fee int64) *Ledger {
	return &Ledger{Fee: fee, paid: make(map[int]bool)}
}

// PaymentSummary aggregates a ledger over the members of a match.
type PaymentSummary struct {
	Players     int   `json:"players"`
	Paid        int   `json:"paid"`
	Remaining   int   `json:"remaining"`
	Fee         int64 `json:"fee"`
	Collected   int64 `json:"collected"`
	Outstanding int64 `json:"outstanding"`
	Total       int64 `json:"total"`
}

func (l *Ledger) set(id int, paid bool) {
	if paid {
		l.paid[id] = true
		return
	}
	delete(l.paid, id)
}

func (l *Ledger) isPaid(id int) bool { return l.paid[id] }

// summarize counts only ids that still belong to the match, so flags left
// over from removed players never inflate the totals.
func (l *Ledger) summarize(ids []int) PaymentSummary {
	s := PaymentSummary{Players: len(ids), Fee: l.Fee}
	for _, id := range ids {
		if l.paid[id] {
			s.Paid++
		}
	}
	s.Remaining = s.Players - s.Paid
	s.Collected = int64(s.Paid) * l.Fee
	s.Outstanding = int64(s.Remaining) * l.Fee
	s.Total = int64(s.Players) * l.Fee
	return s
}

func (l *Ledger) snapshot() map[int]bool {
	out := make(map[int]bool, len(l.paid))
	for id, v := range l.paid {
		if v {
			out[id] = true
		}
	}
	return out
}
