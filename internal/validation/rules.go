package validation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"designzone/internal/design"
)

// Complexity weights
const (
	baseWeight     = 1.0
	filterWeight   = 0.5
	childWeight    = 0.3
	rotationWeight = 0.2
	scaleWeight    = 0.2
)

// CheckTextContent: length limit first, then blocked words. Length counts
// characters, not bytes. Blocked words match case-insensitively anywhere in
// text; the first configured word found is reported.
func CheckTextContent(text string, maxLength *int, blockedWords []string) Check {
	if maxLength != nil && utf8.RuneCountInString(text) > *maxLength {
		return fail(fmt.Sprintf("Text exceeds maximum length of %d characters", *maxLength))
	}

	if len(blockedWords) == 0 {
		return pass()
	}

	lower := strings.ToLower(text)
	for _, word := range blockedWords {
		if word == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(word)) {
			return fail(fmt.Sprintf("Text contains blocked word: %q", word))
		}
	}
	return pass()
}

// CheckImageDimensions: reports the first violated bound, in the order
// min width, min height, max width, max height. NaN or infinite dimensions
// fail before any bound is looked at.
func CheckImageDimensions(width, height float64, minWidth, minHeight, maxWidth, maxHeight *float64) Check {
	switch {
	case !finite(width) || !finite(height):
		return fail(fmt.Sprintf("Image dimensions %gx%g are not finite numbers", width, height))
	case minWidth != nil && width < *minWidth:
		return fail(fmt.Sprintf("Image width %gpx is below the minimum of %gpx", width, *minWidth))
	case minHeight != nil && height < *minHeight:
		return fail(fmt.Sprintf("Image height %gpx is below the minimum of %gpx", height, *minHeight))
	case maxWidth != nil && width > *maxWidth:
		return fail(fmt.Sprintf("Image width %gpx exceeds the maximum of %gpx", width, *maxWidth))
	case maxHeight != nil && height > *maxHeight:
		return fail(fmt.Sprintf("Image height %gpx exceeds the maximum of %gpx", height, *maxHeight))
	}
	return pass()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// CheckDesignComplexity: fails iff ComplexityScore(nodes) > maxComplexity
func CheckDesignComplexity(nodes []design.Node, maxComplexity float64) Check {
	score := ComplexityScore(nodes)
	if score > maxComplexity {
		return fail(fmt.Sprintf("Design complexity (%.1f) exceeds maximum of %g", score, maxComplexity))
	}
	return pass()
}

// ComplexityScore: heuristic richness of a design.
//
//	1.0 per node
//	+0.5 per filter on an image
//	+0.3 per child of a group
//	+0.2 if rotated
//	+0.2 if scaled
//
// nodes is read as a flat list; children listed inside a group only add to
// the group's child weight.
func ComplexityScore(nodes []design.Node) float64 {
	score := 0.0
	for _, n := range nodes {
		score += baseWeight

		if n.Kind == design.KindImage {
			score += filterWeight * float64(n.FilterCount())
		}
		if n.Kind == design.KindGroup {
			score += childWeight * float64(n.ChildCount())
		}
		if n.Rotation != 0 {
			score += rotationWeight
		}
		if sx, sy := n.Scale(); sx != 1 || sy != 1 {
			score += scaleWeight
		}
	}
	return score
}
