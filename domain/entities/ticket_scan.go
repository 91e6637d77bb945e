package entities

// TicketScan carries the numbers the OCR collaborator extracted from a
// scanned ticket. Nothing here is trusted: numbers may be missing, duplicated
// or out of range, and the game name and draw reference are free text.
// Scans are ephemeral; they are never persisted.
type TicketScan struct {
	ScanID       string // session identifier assigned at the API boundary
	GameText     string // free-text game name as read off the ticket
	Numbers      []int  // raw recognized main numbers, possibly noisy
	BonusNumber  *int   // recognized bonus/powerball, if any
	DrawNumber   *int64 // claimed draw, if legible
	RawDrawLabel string // unparsed draw/date text kept for diagnostics
}

// HasNumbers reports whether OCR produced anything to evaluate at all.
func (t *TicketScan) HasNumbers() bool {
	return len(t.Numbers) > 0
}

// UniqueNumbers returns the scanned numbers deduplicated, preserving first
// occurrence order. Duplicate OCR reads must never inflate a match count.
func (t *TicketScan) UniqueNumbers() []int {
	seen := make(map[int]bool, len(t.Numbers))
	unique := make([]int, 0, len(t.Numbers))
	for _, n := range t.Numbers {
		if !seen[n] {
			seen[n] = true
			unique = append(unique, n)
		}
	}
	return unique
}
