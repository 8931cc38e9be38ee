package match

import "sort"

// MinSuggestionScore is the lowest similarity a candidate needs to be suggested.
const MinSuggestionScore = 0.6

// Candidate is a known name scored against an unresolved one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is ordered by descending score, then by name.
type CandidateList []Candidate

// RankCandidates scores every known name against name, keeping the ones at
// or above MinSuggestionScore.
func RankCandidates(name string, known []string) CandidateList {
	norm := NormalizeIdent(name)
	groupNorm := NormalizeGroupIdent(name)

	var candidates CandidateList

	for _, k := range known {
		if k == name {
			continue
		}

		score := max(
			Similarity(norm, NormalizeIdent(k)),
			Similarity(groupNorm, NormalizeGroupIdent(k)),
		)
		if score < MinSuggestionScore {
			continue
		}

		candidates = append(candidates, Candidate{Name: k, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}

		return candidates[i].Name < candidates[j].Name
	})

	return candidates
}

// Top returns the names of the first n candidates.
func (cl CandidateList) Top(n int) []string {
	if n > len(cl) {
		n = len(cl)
	}

	names := make([]string, 0, n)
	for _, c := range cl[:n] {
		names = append(names, c.Name)
	}

	return names
}

// Suggest returns up to limit known names that resemble name.
func Suggest(name string, known []string, limit int) []string {
	return RankCandidates(name, known).Top(limit)
}
