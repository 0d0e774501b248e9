// Package validation checks a finished design against brand rules before it
// can be submitted. Every check is a pure function of its inputs: nothing
// here reads the rendering surface, mutates nodes or keeps state between
// calls.
package validation

// Severity of an Issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue: one rule violation, keyed by the node it concerns
type Issue struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Result of ValidateDesign. IsValid is true iff Errors is empty; warnings
// never affect it.
type Result struct {
	IsValid  bool    `json:"isValid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// Check: outcome of a single rule. Reason is empty when Valid.
type Check struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func pass() Check { return Check{Valid: true} }

func fail(reason string) Check { return Check{Reason: reason} }
