package energylabelhandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"labfixture/internal/domain/energylabel"
	"labfixture/internal/transport/http/api"
	"labfixture/internal/transport/http/shared"
)

const (
	zipcodeLength      = 6
	maxExtensionLength = 99
)

type Handler struct {
	Index *energylabel.Index
}

func NewHandler(index *energylabel.Index) *Handler {
	return &Handler{Index: index}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/energy_label/{zipcode}/{home_number}", h.handleLookup)
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()

	zipcode := chi.URLParam(r, "zipcode")
	v.Length("zipcode", zipcode, zipcodeLength, zipcodeLength)

	homeNumber, err := strconv.Atoi(chi.URLParam(r, "home_number"))
	if err != nil {
		v.Add("home_number", "value is not a valid integer")
	} else {
		v.Min("home_number", homeNumber, 1)
	}

	var extension *string
	if values, ok := r.URL.Query()["extension"]; ok {
		v.Length("extension", values[0], 1, maxExtensionLength)
		extension = &values[0]
	}

	if v.Reject(w) {
		return
	}
	label := h.Index.Lookup(zipcode, homeNumber, extension)
	api.Success(w, api.Message{Message: string(label)})
}
