package entities

// DivisionRow is one row of a draw's published prize breakdown: how many
// boards won the division and what each paid out. Supplied per draw by the
// ingestion collaborator; payouts change every draw and are never hardcoded.
type DivisionRow struct {
	ID          int64  `db:"id"`
	DrawID      int64  `db:"draw_id"`
	Division    int    `db:"division"`
	Requirement string `db:"requirement"` // official wording, informational only
	Winners     int    `db:"winners"`
	PayoutCents int64  `db:"payout_cents"`
}

// DivisionTable is the ordered prize breakdown for one draw.
type DivisionTable struct {
	DrawID int64
	Rows   []DivisionRow
}

// RowFor returns the row for a division number, or nil when the published
// table is missing that division (a data-quality condition, not an error).
func (t *DivisionTable) RowFor(division int) *DivisionRow {
	for i := range t.Rows {
		if t.Rows[i].Division == division {
			return &t.Rows[i]
		}
	}
	return nil
}

// IsEmpty reports whether the draw has no published breakdown yet.
func (t *DivisionTable) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}
