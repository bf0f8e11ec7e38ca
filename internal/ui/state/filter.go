package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/claude-tmux/internal/session"
)

// FilterSessions returns the sessions matching the query against either
// the session name or its display path. Fuzzy matching is tried first and
// a plain substring scan backs it up, so "prj" and "oje" both find
// "project".
func FilterSessions(sessions []session.Session, query string) []session.Session {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return sessions
	}

	haystacks := make([]string, len(sessions))
	for i, s := range sessions {
		haystacks[i] = s.Name + " " + s.DisplayPath()
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, haystacks)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]session.Session, 0, len(matches))
		for idx, s := range sessions {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, s)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}

	lower := strings.ToLower(trimmed)
	var filtered []session.Session
	for _, s := range sessions {
		if strings.Contains(strings.ToLower(s.Name), lower) ||
			strings.Contains(strings.ToLower(s.DisplayPath()), lower) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// BestMatchIndex returns the index of the session a refreshed list should
// keep selected for the given name: an exact name wins, then a name
// prefix, then a name substring, then the fuzzy-closest candidate.
func BestMatchIndex(sessions []session.Session, name string) int {
	trimmed := strings.TrimSpace(name)
	if len(sessions) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	for i, s := range sessions {
		if s.Name == trimmed {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, s := range sessions {
		if strings.HasPrefix(strings.ToLower(s.Name), lower) {
			return i
		}
	}
	for i, s := range sessions {
		if strings.Contains(strings.ToLower(s.Name), lower) {
			return i
		}
	}
	names := make([]string, len(sessions))
	for i, s := range sessions {
		names[i] = s.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(sessions) {
		return 0
	}
	return best.OriginalIndex
}
