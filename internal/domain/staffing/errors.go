package staffing

import (
	"errors"
	"fmt"
	"net/http"
)

// Status codes returned for store failures. The contract tests assert on
// these exact values, including the unusual ones.
const (
	StatusNotFound             = http.StatusNotFound
	StatusConflict             = http.StatusTeapot
	StatusInUse                = http.StatusNotAcceptable
	StatusUnresolvedDependency = http.StatusUnavailableForLegalReasons
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrConflict             = errors.New("resource already exists")
	ErrInUse                = errors.New("resource still referenced")
	ErrUnresolvedDependency = errors.New("referenced resource does not exist")
)

type Resource string

const (
	ResourceWageGroup Resource = "wagegroup"
	ResourceEmployee  Resource = "employee"
)

type NotFoundError struct {
	Resource Resource
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.Resource == ResourceEmployee {
		return "Employee not found"
	}
	return "Wage group not found."
}

func (e *NotFoundError) StatusCode() int { return StatusNotFound }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type ConflictError struct {
	Resource Resource
	ID       string
}

func (e *ConflictError) Error() string {
	return "Wage group already exists."
}

func (e *ConflictError) StatusCode() int { return StatusConflict }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// InUseError blocks a wage group deletion; Count is the number of employees
// referencing it when the delete was attempted.
type InUseError struct {
	ID    string
	Count int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("Wage group still in use by %d employees.", e.Count)
}

func (e *InUseError) StatusCode() int { return StatusInUse }

func (e *InUseError) Is(target error) bool { return target == ErrInUse }

type UnresolvedDependencyError struct {
	WagegroupID string
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("Wage group with id %s does not exist.", e.WagegroupID)
}

func (e *UnresolvedDependencyError) StatusCode() int { return StatusUnresolvedDependency }

func (e *UnresolvedDependencyError) Is(target error) bool {
	return target == ErrUnresolvedDependency
}
