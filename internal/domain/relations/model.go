package relations

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"labfixture/internal/domain/staffing"
)

type Operation struct {
	Path   string `json:"path" yaml:"path"`
	Method string `json:"method" yaml:"method"`
}

func (o Operation) String() string {
	return strings.ToUpper(o.Method) + " " + o.Path
}

type Entry struct {
	Operation `yaml:",inline"`
	Relations []Relation `json:"relations" yaml:"relations"`
}

// Model maps operations to their ordered relations. Registration order of
// operations is kept for listing.
type Model struct {
	entries []Entry
	index   map[Operation]int
}

func NewModel() *Model {
	return &Model{index: map[Operation]int{}}
}

func operation(path, method string) Operation {
	return Operation{Path: path, Method: strings.ToLower(strings.TrimSpace(method))}
}

// Add appends rels to the relations of (path, method).
func (m *Model) Add(path, method string, rels ...Relation) *Model {
	op := operation(path, method)
	if i, ok := m.index[op]; ok {
		m.entries[i].Relations = append(m.entries[i].Relations, rels...)
		return m
	}
	m.index[op] = len(m.entries)
	m.entries = append(m.entries, Entry{Operation: op, Relations: append([]Relation(nil), rels...)})
	return m
}

// Relations returns a copy of the relations for (path, method); nil when the
// operation has none. Method matching is case-insensitive.
func (m *Model) Relations(path, method string) []Relation {
	i, ok := m.index[operation(path, method)]
	if !ok {
		return nil
	}
	return append([]Relation(nil), m.entries[i].Relations...)
}

func (m *Model) Operations() []Operation {
	out := make([]Operation, 0, len(m.entries))
	for _, entry := range m.entries {
		out = append(out, entry.Operation)
	}
	return out
}

func (m *Model) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for _, entry := range m.entries {
		out = append(out, Entry{Operation: entry.Operation, Relations: append([]Relation(nil), entry.Relations...)})
	}
	return out
}

var knownMethods = map[string]bool{
	"get": true, "post": true, "put": true, "patch": true, "delete": true,
}

func (m *Model) Validate() error {
	var errs []error
	for _, entry := range m.entries {
		if !knownMethods[entry.Method] {
			errs = append(errs, fmt.Errorf("%s: unknown method", entry.Operation))
		}
		if !strings.HasPrefix(entry.Path, "/") {
			errs = append(errs, fmt.Errorf("%s: path must start with /", entry.Operation))
		}
		for _, rel := range entry.Relations {
			if err := rel.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", entry.Operation, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}

func (m *Model) MarshalYAML() (any, error) {
	return m.Entries(), nil
}

// Default describes the fixture API. Error codes come from the staffing
// package so the published model follows the store.
func Default() *Model {
	wageGroup := []Relation{
		UniquePropertyValue("id", "Teapot", staffing.StatusConflict),
		IDReference("wagegroup_id", "/employees", staffing.StatusInUse),
	}

	return NewModel().
		Add("/wagegroups", http.MethodPost, wageGroup...).
		Add("/wagegroups/{wagegroup_id}", http.MethodDelete, wageGroup...).
		Add("/employees", http.MethodPost,
			IDDependency("wagegroup_id", "/wagegroups", staffing.StatusUnresolvedDependency),
		).
		Add("/energy_label/{zipcode}/{home_number}", http.MethodGet,
			PathProperties("/energy_label/1111AA/10"),
		)
}
