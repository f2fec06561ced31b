package staffinghandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"labfixture/internal/domain/staffing"
	"labfixture/internal/platform/idgen"
	"labfixture/internal/platform/logging"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	NewHandler(staffing.NewStore(idgen.NewAllocator()), logging.Nop()).RegisterRoutes(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["detail"]
}

func TestWageGroupLifecycle(t *testing.T) {
	h := newRouter()

	rec := do(t, h, http.MethodPost, "/wagegroups", `{"id":"wg1","hourly_rate":12.5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	group := decode[staffing.WageGroup](t, rec)
	if group.ID != "wg1" || group.HourlyRate != 12.5 {
		t.Fatalf("unexpected wage group %+v", group)
	}

	rec = do(t, h, http.MethodPost, "/wagegroups", `{"id":"wg1","hourly_rate":99}`)
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "Wage group already exists." {
		t.Fatalf("unexpected detail %q", got)
	}

	rec = do(t, h, http.MethodGet, "/wagegroups/wg1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decode[staffing.WageGroup](t, rec); got.HourlyRate != 12.5 {
		t.Fatalf("expected original rate to survive conflict, got %v", got.HourlyRate)
	}

	rec = do(t, h, http.MethodDelete, "/wagegroups/wg1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/wagegroups/wg1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "Wage group not found." {
		t.Fatalf("unexpected detail %q", got)
	}

	rec = do(t, h, http.MethodDelete, "/wagegroups/wg1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestReplaceWageGroup(t *testing.T) {
	h := newRouter()
	do(t, h, http.MethodPost, "/wagegroups", `{"id":"wg1","hourly_rate":10}`)

	rec := do(t, h, http.MethodPut, "/wagegroups/wg1", `{"id":"wg1","hourly_rate":20}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decode[staffing.WageGroup](t, rec); got.HourlyRate != 20 {
		t.Fatalf("expected replaced rate, got %v", got.HourlyRate)
	}

	// The body id wins; the path id keeps its old record.
	rec = do(t, h, http.MethodPut, "/wagegroups/wg1", `{"id":"wg2","hourly_rate":30}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/wagegroups/wg2", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected wg2 to exist, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/wagegroups/wg1", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected wg1 to remain, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPut, "/wagegroups/missing", `{"id":"missing","hourly_rate":1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWageGroupValidation(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   string
	}{
		{"missing rate", http.MethodPost, "/wagegroups", `{"id":"wg1"}`, "hourly_rate: field required"},
		{"missing id", http.MethodPost, "/wagegroups", `{"hourly_rate":1}`, "id: field required"},
		{"null id", http.MethodPost, "/wagegroups", `{"id":null,"hourly_rate":1}`, "id: none is not an allowed value"},
		{"rate as text", http.MethodPost, "/wagegroups", `{"id":"wg1","hourly_rate":"fast"}`, "hourly_rate: value is not a valid float"},
		{"id as number", http.MethodPost, "/wagegroups", `{"id":7,"hourly_rate":1}`, "id: str type expected"},
		{"null body", http.MethodPost, "/wagegroups", `null`, "body: value is not a valid JSON object"},
		{"broken body", http.MethodPut, "/wagegroups/wg1", `{"id":`, "body: value is not a valid JSON object"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, newRouter(), tc.method, tc.path, tc.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", rec.Code)
			}
			if got := detail(t, rec); !strings.Contains(got, tc.want) {
				t.Fatalf("expected detail to contain %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEmployeeLifecycle(t *testing.T) {
	h := newRouter()
	do(t, h, http.MethodPost, "/wagegroups", `{"id":"wg1","hourly_rate":12.5}`)

	rec := do(t, h, http.MethodPost, "/employees", `{"name":"Al","wagegroup_id":"wg1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	raw := decode[map[string]any](t, rec)
	if _, ok := raw["parttime_day"]; !ok {
		t.Fatal("expected parttime_day to be serialised as null")
	}
	emp := decode[staffing.Employee](t, rec)
	if emp.EmployeeNumber != 1 {
		t.Fatalf("expected employee number 1, got %d", emp.EmployeeNumber)
	}
	if len(emp.ID) != 32 {
		t.Fatalf("expected 32 char id, got %q", emp.ID)
	}

	rec = do(t, h, http.MethodPost, "/employees", `{"name":"Bo","wagegroup_id":"wg1","parttime_day":"Friday"}`)
	second := decode[staffing.Employee](t, rec)
	if second.EmployeeNumber != 2 {
		t.Fatalf("expected employee number 2, got %d", second.EmployeeNumber)
	}
	if second.ParttimeDay == nil || *second.ParttimeDay != staffing.Friday {
		t.Fatalf("expected Friday, got %v", second.ParttimeDay)
	}

	rec = do(t, h, http.MethodGet, "/employees/"+emp.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodDelete, "/wagegroups/wg1", "")
	if rec.Code != http.StatusNotAcceptable {
		t.Fatalf("expected 406, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "Wage group still in use by 2 employees." {
		t.Fatalf("unexpected detail %q", got)
	}

	rec = do(t, h, http.MethodGet, "/employees/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "Employee not found" {
		t.Fatalf("unexpected detail %q", got)
	}
}

func TestCreateEmployeeUnknownWageGroup(t *testing.T) {
	h := newRouter()
	rec := do(t, h, http.MethodPost, "/employees", `{"name":"Al","wagegroup_id":"nope"}`)
	if rec.Code != http.StatusUnavailableForLegalReasons {
		t.Fatalf("expected 451, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "Wage group with id nope does not exist." {
		t.Fatalf("unexpected detail %q", got)
	}

	do(t, h, http.MethodPost, "/wagegroups", `{"id":"wg1","hourly_rate":1}`)
	rec = do(t, h, http.MethodPost, "/employees", `{"name":"Al","wagegroup_id":"wg1"}`)
	if got := decode[staffing.Employee](t, rec); got.EmployeeNumber != 1 {
		t.Fatalf("expected failed create to consume no number, got %d", got.EmployeeNumber)
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"wagegroup_id":"wg1"}`, "name: field required"},
		{"missing wage group", `{"name":"Al"}`, "wagegroup_id: field required"},
		{"weekend day", `{"name":"Al","wagegroup_id":"wg1","parttime_day":"Sunday"}`, "parttime_day: value is not a valid enumeration member"},
		{"lowercase day", `{"name":"Al","wagegroup_id":"wg1","parttime_day":"monday"}`, "parttime_day: value is not a valid enumeration member"},
		{"numeric day", `{"name":"Al","wagegroup_id":"wg1","parttime_day":1}`, "parttime_day: str type expected"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, newRouter(), http.MethodPost, "/employees", tc.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", rec.Code)
			}
			if got := detail(t, rec); !strings.Contains(got, tc.want) {
				t.Fatalf("expected detail to contain %q, got %q", tc.want, got)
			}
		})
	}
}

func TestPatchEmployee(t *testing.T) {
	h := newRouter()
	do(t, h, http.MethodPost, "/wagegroups", `{"id":"wg1","hourly_rate":1}`)
	created := decode[staffing.Employee](t, do(t, h, http.MethodPost, "/employees", `{"name":"Al","wagegroup_id":"wg1","parttime_day":"Monday"}`))
	path := "/employees/" + created.ID

	rec := do(t, h, http.MethodPatch, path, `{"name":"Alan","employee_number":99}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	patched := decode[staffing.Employee](t, rec)
	if patched.Name != "Alan" {
		t.Fatalf("expected name Alan, got %q", patched.Name)
	}
	if patched.EmployeeNumber != created.EmployeeNumber {
		t.Fatalf("expected employee_number to be ignored, got %d", patched.EmployeeNumber)
	}
	if patched.ParttimeDay == nil || *patched.ParttimeDay != staffing.Monday {
		t.Fatalf("expected absent parttime_day to be kept, got %v", patched.ParttimeDay)
	}

	rec = do(t, h, http.MethodPatch, path, `{"parttime_day":null}`)
	if got := decode[staffing.Employee](t, rec); got.ParttimeDay != nil {
		t.Fatalf("expected explicit null to clear parttime_day, got %v", *got.ParttimeDay)
	}

	rec = do(t, h, http.MethodPatch, path, `{"name":null}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for null name, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPatch, path, `{"employee_number":"x"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for non-integer employee_number, got %d", rec.Code)
	}

	rec = do(t, h, http.MethodPatch, "/employees/missing", `{"name":"X"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAvailableEmployees(t *testing.T) {
	h := newRouter()
	do(t, h, http.MethodPost, "/wagegroups", `{"id":"wg1","hourly_rate":1}`)
	do(t, h, http.MethodPost, "/employees", `{"name":"Al","wagegroup_id":"wg1","parttime_day":"Monday"}`)
	do(t, h, http.MethodPost, "/employees", `{"name":"Bo","wagegroup_id":"wg1"}`)

	rec := do(t, h, http.MethodGet, "/available_employees?weekday=Monday", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	monday := decode[[]staffing.Employee](t, rec)
	if len(monday) != 1 || monday[0].Name != "Bo" {
		t.Fatalf("expected only Bo on Monday, got %+v", monday)
	}

	tuesday := decode[[]staffing.Employee](t, do(t, h, http.MethodGet, "/available_employees?weekday=Tuesday", ""))
	if len(tuesday) != 2 || tuesday[0].Name != "Al" || tuesday[1].Name != "Bo" {
		t.Fatalf("expected both in creation order on Tuesday, got %+v", tuesday)
	}

	rec = do(t, h, http.MethodGet, "/available_employees", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 without weekday, got %d", rec.Code)
	}
	if got := detail(t, rec); got != "weekday: field required" {
		t.Fatalf("unexpected detail %q", got)
	}

	rec = do(t, h, http.MethodGet, "/available_employees?weekday=Saturday", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for Saturday, got %d", rec.Code)
	}
}

func TestAvailableEmployeesEmptyStore(t *testing.T) {
	rec := do(t, newRouter(), http.MethodGet, "/available_employees?weekday=Friday", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", rec.Body.String())
	}
}
