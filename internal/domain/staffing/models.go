package staffing

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

func ParseWeekday(value string) (Weekday, bool) {
	for _, day := range Weekdays {
		if string(day) == value {
			return day, true
		}
	}
	return "", false
}

func WeekdayNames() []string {
	out := make([]string, 0, len(Weekdays))
	for _, day := range Weekdays {
		out = append(out, string(day))
	}
	return out
}

type WageGroup struct {
	ID         string  `json:"id"`
	HourlyRate float64 `json:"hourly_rate"`
}

// NewEmployee is the client-supplied part of an employee record.
type NewEmployee struct {
	Name        string   `json:"name"`
	WagegroupID string   `json:"wagegroup_id"`
	ParttimeDay *Weekday `json:"parttime_day"`
}

type Employee struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	EmployeeNumber int64    `json:"employee_number"`
	WagegroupID    string   `json:"wagegroup_id"`
	ParttimeDay    *Weekday `json:"parttime_day"`
}

// EmployeeUpdate is a sparse patch. Nil pointers leave the stored value alone.
// ParttimeDaySet separates an explicit null, which clears the day, from an
// absent field.
type EmployeeUpdate struct {
	Name           *string
	WagegroupID    *string
	ParttimeDaySet bool
	ParttimeDay    *Weekday
}

func (e Employee) clone() Employee {
	if e.ParttimeDay != nil {
		day := *e.ParttimeDay
		e.ParttimeDay = &day
	}
	return e
}

func (e Employee) availableOn(day Weekday) bool {
	return e.ParttimeDay == nil || *e.ParttimeDay != day
}

func (u EmployeeUpdate) apply(e Employee) Employee {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.WagegroupID != nil {
		e.WagegroupID = *u.WagegroupID
	}
	if u.ParttimeDaySet {
		e.ParttimeDay = nil
		if u.ParttimeDay != nil {
			day := *u.ParttimeDay
			e.ParttimeDay = &day
		}
	}
	return e
}
