package validation

import (
	"designzone/internal/design"
)

// ValidateDesign: runs the text and image rules over every node, including
// nodes nested in group children, and the complexity rule once over the
// top-level list. Text and image violations are errors; complexity overage is
// a single warning on field "design".
//
// Input may already be flattened (a group followed by its own children); a
// node id is checked once however many times it appears.
func ValidateDesign(nodes []design.Node, settings Settings) Result {
	result := Result{
		Errors:   []Issue{},
		Warnings: []Issue{},
	}

	seen := make(map[string]bool)
	var visit func(n design.Node)
	visit = func(n design.Node) {
		if n.ID != "" {
			key := fieldID(n)
			if seen[key] {
				return
			}
			seen[key] = true
		}

		if issue, ok := contentIssue(n, settings); ok {
			result.Errors = append(result.Errors, issue)
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, n := range nodes {
		visit(n)
	}

	if settings.MaxComplexity != nil {
		if check := CheckDesignComplexity(nodes, *settings.MaxComplexity); !check.Valid {
			result.Warnings = append(result.Warnings, Issue{
				Field:    "design",
				Message:  check.Reason,
				Severity: SeverityWarning,
			})
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// contentIssue: the error for a text or image node, if any
func contentIssue(n design.Node, settings Settings) (Issue, bool) {
	var check Check
	switch n.Kind {
	case design.KindText:
		check = CheckTextContent(n.Text, settings.MaxTextLength, settings.BlockedWords)
	case design.KindImage:
		check = CheckImageDimensions(n.Width, n.Height,
			settings.MinImageWidth, settings.MinImageHeight,
			settings.MaxImageWidth, settings.MaxImageHeight)
	default:
		return Issue{}, false
	}

	if check.Valid {
		return Issue{}, false
	}
	return Issue{
		Field:    fieldID(n),
		Message:  check.Reason,
		Severity: SeverityError,
	}, true
}

// fieldID: "<kind>-<id>"
func fieldID(n design.Node) string {
	return string(n.Kind) + "-" + n.ID
}
