// Package relations describes, per API operation, the constraints a request
// generator has to respect (or deliberately break) and the status code it
// should expect when it does.
//
// Relations are plain data. Nothing in the server evaluates them at request
// time; they are published for external tooling and must agree with the
// errors the staffing store returns.
package relations

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindUniquePropertyValue Kind = "UniquePropertyValueConstraint"
	KindIDDependency        Kind = "IdDependency"
	KindIDReference         Kind = "IdReference"
	KindPathProperties      Kind = "PathPropertiesConstraint"
)

// Mode tells the generator how to use the relation target.
type Mode string

const (
	// ModeUnique: send Value as a duplicate of an existing resource.
	ModeUnique Mode = "unique"
	// ModeDependency: send an id that cannot be found under GetPath.
	ModeDependency Mode = "dependency"
	// ModeReference: mutate the resource while one created via PostPath points at it.
	ModeReference Mode = "reference"
	// ModePath: only this literal path is guaranteed to hold non-sentinel data.
	ModePath Mode = "path"
)

// Relation is a tagged variant; Kind decides which of the other fields are set.
type Relation struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	Property  string `json:"property_name,omitempty" yaml:"property_name,omitempty"`
	Value     any    `json:"value,omitempty" yaml:"value,omitempty"`
	GetPath   string `json:"get_path,omitempty" yaml:"get_path,omitempty"`
	PostPath  string `json:"post_path,omitempty" yaml:"post_path,omitempty"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	ErrorCode int    `json:"error_code,omitempty" yaml:"error_code,omitempty"`
}

func UniquePropertyValue(property string, value any, errorCode int) Relation {
	return Relation{Kind: KindUniquePropertyValue, Property: property, Value: value, ErrorCode: errorCode}
}

func IDDependency(property, getPath string, errorCode int) Relation {
	return Relation{Kind: KindIDDependency, Property: property, GetPath: getPath, ErrorCode: errorCode}
}

func IDReference(property, postPath string, errorCode int) Relation {
	return Relation{Kind: KindIDReference, Property: property, PostPath: postPath, ErrorCode: errorCode}
}

func PathProperties(path string) Relation {
	return Relation{Kind: KindPathProperties, Path: path}
}

// Target is the property name, or the literal path for path relations.
func (r Relation) Target() string {
	if r.Kind == KindPathProperties {
		return r.Path
	}
	return r.Property
}

func (r Relation) Mode() Mode {
	switch r.Kind {
	case KindUniquePropertyValue:
		return ModeUnique
	case KindIDDependency:
		return ModeDependency
	case KindIDReference:
		return ModeReference
	case KindPathProperties:
		return ModePath
	}
	return ""
}

// ExpectedStatus is the status a violating request gets. Path relations
// never produce an error and report 0.
func (r Relation) ExpectedStatus() int {
	return r.ErrorCode
}

// Related is the path the generator visits to resolve the relation, if any.
func (r Relation) Related() string {
	switch r.Kind {
	case KindIDDependency:
		return r.GetPath
	case KindIDReference:
		return r.PostPath
	}
	return ""
}

func (r Relation) String() string {
	if r.ErrorCode == 0 {
		return fmt.Sprintf("%s(%s)", r.Kind, r.Target())
	}
	return fmt.Sprintf("%s(%s -> %d)", r.Kind, r.Target(), r.ErrorCode)
}

func (r Relation) Validate() error {
	var errs []error
	switch r.Kind {
	case KindUniquePropertyValue:
		if r.Value == nil {
			errs = append(errs, errors.New("value is required"))
		}
	case KindIDDependency:
		errs = append(errs, requirePath("get_path", r.GetPath))
	case KindIDReference:
		errs = append(errs, requirePath("post_path", r.PostPath))
	case KindPathProperties:
		errs = append(errs, requirePath("path", r.Path))
		if r.ErrorCode != 0 {
			errs = append(errs, errors.New("error_code must be empty"))
		}
		return wrap(r, errors.Join(errs...))
	default:
		return fmt.Errorf("unknown relation kind %q", r.Kind)
	}

	if strings.TrimSpace(r.Property) == "" {
		errs = append(errs, errors.New("property_name is required"))
	}
	if r.ErrorCode < 400 || r.ErrorCode > 499 {
		errs = append(errs, fmt.Errorf("error_code %d is not a client error", r.ErrorCode))
	}
	return wrap(r, errors.Join(errs...))
}

func requirePath(field, value string) error {
	if !strings.HasPrefix(value, "/") {
		return fmt.Errorf("%s %q must start with /", field, value)
	}
	return nil
}

func wrap(r Relation, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", r.Kind, err)
}
