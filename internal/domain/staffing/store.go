package staffing

import (
	"sync"

	"labfixture/internal/platform/idgen"
)

// Store keeps wage groups and employees in memory. A single lock covers both
// collections because the employee -> wage group reference is checked and
// mutated across them.
type Store struct {
	mu         sync.RWMutex
	ids        idgen.Allocator
	wageGroups map[string]WageGroup
	employees  map[string]Employee
	order      []string
}

func NewStore(ids idgen.Allocator) *Store {
	if ids == nil {
		ids = idgen.NewAllocator()
	}
	return &Store{
		ids:        ids,
		wageGroups: map[string]WageGroup{},
		employees:  map[string]Employee{},
	}
}

func (s *Store) CreateWageGroup(group WageGroup) (WageGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.wageGroups[group.ID]; exists {
		return WageGroup{}, &ConflictError{Resource: ResourceWageGroup, ID: group.ID}
	}
	s.wageGroups[group.ID] = group
	return group, nil
}

func (s *Store) GetWageGroup(id string) (WageGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.wageGroups[id]
	if !ok {
		return WageGroup{}, &NotFoundError{Resource: ResourceWageGroup, ID: id}
	}
	return group, nil
}

// ReplaceWageGroup requires id to exist but stores group under group.ID.
// When the two differ the record at id stays and group is added alongside,
// overwriting any other wage group that already uses group.ID.
func (s *Store) ReplaceWageGroup(id string, group WageGroup) (WageGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wageGroups[id]; !ok {
		return WageGroup{}, &NotFoundError{Resource: ResourceWageGroup, ID: id}
	}
	s.wageGroups[group.ID] = group
	return group, nil
}

func (s *Store) DeleteWageGroup(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wageGroups[id]; !ok {
		return &NotFoundError{Resource: ResourceWageGroup, ID: id}
	}
	if count := s.referenceCount(id); count > 0 {
		return &InUseError{ID: id, Count: count}
	}
	delete(s.wageGroups, id)
	return nil
}

func (s *Store) CreateEmployee(emp NewEmployee) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wageGroups[emp.WagegroupID]; !ok {
		return Employee{}, &UnresolvedDependencyError{WagegroupID: emp.WagegroupID}
	}

	stored := Employee{
		ID:             s.ids.NewID(),
		Name:           emp.Name,
		EmployeeNumber: s.ids.NextEmployeeNumber(),
		WagegroupID:    emp.WagegroupID,
		ParttimeDay:    emp.ParttimeDay,
	}.clone()
	s.employees[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return stored.clone(), nil
}

func (s *Store) GetEmployee(id string) (Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emp, ok := s.employees[id]
	if !ok {
		return Employee{}, &NotFoundError{Resource: ResourceEmployee, ID: id}
	}
	return emp.clone(), nil
}

// PatchEmployee merges update over the stored record. The wage group
// reference is not re-checked here; only creation enforces it.
func (s *Store) PatchEmployee(id string, update EmployeeUpdate) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[id]
	if !ok {
		return Employee{}, &NotFoundError{Resource: ResourceEmployee, ID: id}
	}
	merged := update.apply(emp.clone())
	s.employees[id] = merged
	return merged.clone(), nil
}

// ListAvailableEmployees returns, in insertion order, every employee whose
// part-time day is not day.
func (s *Store) ListAvailableEmployees(day Weekday) []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Employee, 0, len(s.order))
	for _, id := range s.order {
		emp := s.employees[id]
		if emp.availableOn(day) {
			out = append(out, emp.clone())
		}
	}
	return out
}

func (s *Store) referenceCount(wageGroupID string) int {
	count := 0
	for _, emp := range s.employees {
		if emp.WagegroupID == wageGroupID {
			count++
		}
	}
	return count
}
