package staffinghandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"labfixture/internal/domain/staffing"
	"labfixture/internal/requestctx"
	"labfixture/internal/transport/http/api"
	"labfixture/internal/transport/http/shared"
)

type Handler struct {
	Store  staffing.StoreAPI
	Logger *slog.Logger
}

func NewHandler(store staffing.StoreAPI, logger *slog.Logger) *Handler {
	return &Handler{Store: store, Logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/wagegroups", h.handleCreateWageGroup)
	r.Get("/wagegroups/{wagegroup_id}", h.handleGetWageGroup)
	r.Put("/wagegroups/{wagegroup_id}", h.handleReplaceWageGroup)
	r.Delete("/wagegroups/{wagegroup_id}", h.handleDeleteWageGroup)

	r.Post("/employees", h.handleCreateEmployee)
	r.Get("/employees/{employee_id}", h.handleGetEmployee)
	r.Patch("/employees/{employee_id}", h.handlePatchEmployee)

	r.Get("/available_employees", h.handleAvailableEmployees)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	requestctx.Logger(r.Context(), h.Logger).Info("request rejected",
		"method", r.Method,
		"path", r.URL.Path,
		"status", api.StatusOf(err),
		"err", err,
	)
	api.FailErr(w, err)
}

func decodeWageGroup(w http.ResponseWriter, r *http.Request) (staffing.WageGroup, bool) {
	fields, err := shared.DecodeFields(r)
	if err != nil {
		shared.FailValidation(w, "body: value is not a valid JSON object")
		return staffing.WageGroup{}, false
	}
	v := shared.NewValidator()
	id := fields.String(v, "id", true, false)
	rate := fields.Float(v, "hourly_rate", true, false)
	if v.Reject(w) {
		return staffing.WageGroup{}, false
	}
	return staffing.WageGroup{ID: *id, HourlyRate: *rate}, true
}

func (h *Handler) handleCreateWageGroup(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeWageGroup(w, r)
	if !ok {
		return
	}
	group, err := h.Store.CreateWageGroup(payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Created(w, group)
}

func (h *Handler) handleGetWageGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.Store.GetWageGroup(chi.URLParam(r, "wagegroup_id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, group)
}

func (h *Handler) handleReplaceWageGroup(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeWageGroup(w, r)
	if !ok {
		return
	}
	group, err := h.Store.ReplaceWageGroup(chi.URLParam(r, "wagegroup_id"), payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, group)
}

func (h *Handler) handleDeleteWageGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteWageGroup(chi.URLParam(r, "wagegroup_id")); err != nil {
		h.fail(w, r, err)
		return
	}
	api.NoContent(w)
}

// parttimeDay validates an optional weekday; set reports whether the
// property carried a value or an explicit null.
func parttimeDay(v *shared.Validator, fields shared.Fields) (day *staffing.Weekday, set bool) {
	if !fields.Has("parttime_day") {
		return nil, false
	}
	raw := fields.String(v, "parttime_day", false, true)
	if raw == nil {
		return nil, true
	}
	parsed, ok := staffing.ParseWeekday(*raw)
	if !ok {
		v.Enum("parttime_day", *raw, staffing.WeekdayNames())
		return nil, true
	}
	return &parsed, true
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	fields, err := shared.DecodeFields(r)
	if err != nil {
		shared.FailValidation(w, "body: value is not a valid JSON object")
		return
	}
	v := shared.NewValidator()
	name := fields.String(v, "name", true, false)
	wagegroupID := fields.String(v, "wagegroup_id", true, false)
	day, _ := parttimeDay(v, fields)
	if v.Reject(w) {
		return
	}

	emp, err := h.Store.CreateEmployee(staffing.NewEmployee{
		Name:        *name,
		WagegroupID: *wagegroupID,
		ParttimeDay: day,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Created(w, emp)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(chi.URLParam(r, "employee_id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, emp)
}

func (h *Handler) handlePatchEmployee(w http.ResponseWriter, r *http.Request) {
	fields, err := shared.DecodeFields(r)
	if err != nil {
		shared.FailValidation(w, "body: value is not a valid JSON object")
		return
	}
	v := shared.NewValidator()
	update := staffing.EmployeeUpdate{
		Name:        fields.String(v, "name", false, false),
		WagegroupID: fields.String(v, "wagegroup_id", false, false),
	}
	update.ParttimeDay, update.ParttimeDaySet = parttimeDay(v, fields)
	// employee_number is part of the update schema but never applied.
	fields.Int(v, "employee_number", false, true)
	if v.Reject(w) {
		return
	}

	emp, err := h.Store.PatchEmployee(chi.URLParam(r, "employee_id"), update)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	api.Success(w, emp)
}

func (h *Handler) handleAvailableEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	v := shared.NewValidator()
	values, present := query["weekday"]
	v.Present("weekday", present)
	var day staffing.Weekday
	if present {
		parsed, ok := staffing.ParseWeekday(values[0])
		if !ok {
			v.Enum("weekday", values[0], staffing.WeekdayNames())
		}
		day = parsed
	}
	if v.Reject(w) {
		return
	}
	api.Success(w, h.Store.ListAvailableEmployees(day))
}
