package classify

import (
	"sort"
	"strings"

	"github.com/outliner-go/outliner/internal/docline"
	"github.com/outliner-go/outliner/internal/outline"
)

// levelState tracks which levels have been emitted so far in the
// document walk. It is a value threaded through the fold, never a
// shared mutable field.
type levelState struct {
	h1Seen bool
	h2Seen bool
	h3Seen bool
}

// mark records that a level was emitted: an H1 resets the deeper
// flags, an H2 resets H3.
func (s levelState) mark(level string) levelState {
	switch level {
	case outline.LevelH1:
		return levelState{h1Seen: true}
	case outline.LevelH2:
		return levelState{h1Seen: s.h1Seen, h2Seen: true}
	default:
		s.h3Seen = true
		return s
	}
}

// AssignLevels converts surviving candidates into ordered outline
// entries, folding a level-state accumulator over the candidates in
// document order. The levels produced here are a first guess; the
// outline normalizer's hierarchy repair is authoritative.
func AssignLevels(candidates []docline.Candidate, m Metrics) []outline.Entry {
	if len(candidates) == 0 {
		return nil
	}

	ordered := make([]docline.Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Page != ordered[j].Page {
			return ordered[i].Page < ordered[j].Page
		}
		return ordered[i].Y0 < ordered[j].Y0
	})

	entries := make([]outline.Entry, 0, len(ordered))
	state := levelState{}
	for _, cand := range ordered {
		level := pickLevel(cand, m, state)
		state = state.mark(level)
		entries = append(entries, outline.Entry{
			Level: level,
			Text:  strings.TrimSpace(cand.Text),
			Page:  cand.Page,
		})
	}
	return entries
}

// pickLevel chooses a heading level for one candidate from its
// numbering depth, capitalization, font rank and the running state.
func pickLevel(cand docline.Candidate, m Metrics, state levelState) string {
	text := strings.TrimSpace(cand.Text)
	rank := m.rankOf(cand.FontSize)

	switch {
	case HasNumericPrefix(text):
		depth := NumericPrefixDepth(text)
		if depth > 3 {
			depth = 3
		}
		switch depth {
		case 1:
			return outline.LevelH1
		case 2:
			return outline.LevelH2
		default:
			return outline.LevelH3
		}
	case isAllUpper(text) && len(strings.Fields(text)) <= 4:
		return outline.LevelH1
	case rank == 0:
		return outline.LevelH1
	case rank == 1:
		if state.h1Seen {
			return outline.LevelH2
		}
		return outline.LevelH1
	case cand.Bold && rank <= 2:
		if state.h1Seen {
			return outline.LevelH2
		}
		return outline.LevelH1
	default:
		if !state.h1Seen {
			return outline.LevelH1
		}
		if !state.h2Seen {
			return outline.LevelH2
		}
		return outline.LevelH3
	}
}
