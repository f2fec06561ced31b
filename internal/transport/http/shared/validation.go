package shared

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"

	"labfixture/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (i ValidationIssue) String() string {
	if i.Field == "" {
		return i.Reason
	}
	return i.Field + ": " + i.Reason
}

type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{
		Field:  field,
		Reason: reason,
	})
}

// Present records a missing field; ok is the caller's presence check.
func (v *Validator) Present(field string, ok bool) {
	if !ok {
		v.Add(field, "field required")
	}
}

func (v *Validator) Enum(field, value string, allowed []string) {
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	v.Add(field, "value is not a valid enumeration member; permitted: "+strings.Join(allowed, ", "))
}

// Length checks the rune length of value against [min, max]; max <= 0 means
// unbounded.
func (v *Validator) Length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min {
		v.Add(field, fmt.Sprintf("ensure this value has at least %d characters", min))
	}
	if max > 0 && n > max {
		v.Add(field, fmt.Sprintf("ensure this value has at most %d characters", max))
	}
}

func (v *Validator) Min(field string, value, min int) {
	if value < min {
		v.Add(field, fmt.Sprintf("ensure this value is greater than or equal to %d", min))
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Detail flattens the issues into the single detail string of a 422 body.
func (v *Validator) Detail() string {
	issues := v.Issues()
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.String())
	}
	return strings.Join(parts, "; ")
}

func (v *Validator) Reject(w http.ResponseWriter) bool {
	if !v.HasIssues() {
		return false
	}
	FailValidation(w, v.Detail())
	return true
}

func FailValidation(w http.ResponseWriter, detail string) {
	api.Fail(w, http.StatusUnprocessableEntity, detail)
}
