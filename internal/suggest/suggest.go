// Package suggest finds videos related to a given one by fuzzy title
// similarity and shared tags.
package suggest

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vidkeep/vidkeep/internal/library"
)

// DefaultThreshold is the minimum combined score for a match to be
// reported.
const DefaultThreshold = 0.4

// tagWeight is how much of the combined score comes from shared tags; the
// rest comes from title similarity.
const tagWeight = 0.35

// Match is a related video with its similarity score in [0, 1].
type Match struct {
	Video *library.VideoRecord `json:"video"`
	Score float64              `json:"score"`
}

// NormalizeTitle prepares a title for fuzzy comparison: lowercase, accents
// stripped, punctuation dropped, whitespace collapsed.
func NormalizeTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// Similar ranks every other video against the target by a blend of
// Jaro-Winkler title similarity and tag overlap, dropping scores below
// threshold. Pass 0 for threshold to use DefaultThreshold. Results come
// back best first; ties break by id for a stable order.
func Similar(videos []*library.VideoRecord, targetID int64, threshold float64) []Match {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	var target *library.VideoRecord
	for _, v := range videos {
		if v.ID == targetID {
			target = v
			break
		}
	}
	if target == nil {
		return nil
	}
	targetTitle := NormalizeTitle(target.Title)

	var matches []Match
	for _, v := range videos {
		if v.ID == targetID {
			continue
		}
		title := float64(edlib.JaroWinklerSimilarity(targetTitle, NormalizeTitle(v.Title)))
		score := (1-tagWeight)*title + tagWeight*tagOverlap(target.Tags, v.Tags)
		if score >= threshold {
			matches = append(matches, Match{Video: v, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Video.ID < matches[j].Video.ID
	})
	return matches
}

// tagOverlap is the Jaccard index of the two tag sets. Two untagged videos
// share nothing rather than everything.
func tagOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[strings.ToLower(t)] = struct{}{}
	}
	shared := 0
	union := len(set)
	for _, t := range b {
		if _, ok := set[strings.ToLower(t)]; ok {
			shared++
		} else {
			union++
		}
	}
	return float64(shared) / float64(union)
}
