package staffing

type StoreAPI interface {
	CreateWageGroup(group WageGroup) (WageGroup, error)
	GetWageGroup(id string) (WageGroup, error)
	ReplaceWageGroup(id string, group WageGroup) (WageGroup, error)
	DeleteWageGroup(id string) error
	CreateEmployee(emp NewEmployee) (Employee, error)
	GetEmployee(id string) (Employee, error)
	PatchEmployee(id string, update EmployeeUpdate) (Employee, error)
	ListAvailableEmployees(day Weekday) []Employee
}

var _ StoreAPI = (*Store)(nil)
