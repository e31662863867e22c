// Package search implements the full-table substring scan behind the '/'
// prompt. Scans read the frame in row batches and honor context
// cancellation between batches, so a long scan over a large table can be
// abandoned without freezing the UI.
package search

import (
	"context"
	"strings"

	"github.com/oakwood-commons/tabx/pkg/frame"
)

// batchRows is how many rows are scanned between cancellation checks.
const batchRows = 256

// Match is one matching cell position.
type Match struct {
	Row int
	Col int
}

// State is the per-view search state: the committed query, its matches in
// row-major order, and the cyclic cursor over them. Current is -1 until a
// match has been visited.
type State struct {
	Query   string
	Matches []Match
	Current int
	Active  bool
}

// Run scans every cell of fr for a case-sensitive substring match against
// query and returns the matches in row-major order. An empty query matches
// nothing. Returns ctx.Err() when cancelled mid-scan.
func Run(ctx context.Context, fr frame.Frame, query string) ([]Match, error) {
	if query == "" {
		return nil, nil
	}
	rows, cols := fr.Shape()
	var matches []Match
	for r0 := 0; r0 < rows; r0 += batchRows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r1 := r0 + batchRows
		if r1 > rows {
			r1 = rows
		}
		grid := fr.Cells(r0, r1, 0, cols)
		for i, line := range grid {
			for c, cell := range line {
				if strings.Contains(cell, query) {
					matches = append(matches, Match{Row: r0 + i, Col: c})
				}
			}
		}
	}
	return matches, nil
}

// Set installs a completed scan result, activating the state and resetting
// the match cursor.
func (s *State) Set(query string, matches []Match) {
	s.Query = query
	s.Matches = matches
	s.Current = -1
	s.Active = len(matches) > 0
}

// Next advances cyclically to the next match and returns it. From the unset
// position it lands on the first match. Returns false when there are no
// matches.
func (s *State) Next() (Match, bool) {
	if len(s.Matches) == 0 {
		return Match{}, false
	}
	s.Current = (s.Current + 1) % len(s.Matches)
	return s.Matches[s.Current], true
}

// Prev moves cyclically to the previous match. From the unset position it
// lands on the last match.
func (s *State) Prev() (Match, bool) {
	if len(s.Matches) == 0 {
		return Match{}, false
	}
	if s.Current <= 0 {
		s.Current = len(s.Matches) - 1
	} else {
		s.Current--
	}
	return s.Matches[s.Current], true
}

// CurrentMatch returns the match under the cyclic cursor, if any.
func (s *State) CurrentMatch() (Match, bool) {
	if s.Current < 0 || s.Current >= len(s.Matches) {
		return Match{}, false
	}
	return s.Matches[s.Current], true
}

// IsMatch reports whether (row, col) is any match of the committed query.
func (s *State) IsMatch(row, col int) bool {
	for _, m := range s.Matches {
		if m.Row == row && m.Col == col {
			return true
		}
	}
	return false
}

// Clear deactivates highlighting but keeps the query so n/p can resume the
// previous search.
func (s *State) Clear() {
	s.Active = false
	s.Matches = nil
	s.Current = -1
}
