package food

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/user"
)

// Handler contains HTTP handlers for food endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// DeletedResponse is the data returned after a delete
type DeletedResponse struct {
	FoodID uuid.UUID `json:"food_id"`
}

// List handles food search
// @Summary      List food
// @Description  Filter food items by name substring and inclusive nutrient ranges. All filters are combined.
// @Tags         Food
// @Produce      json
// @Param        name               query  string  false  "Case-insensitive name substring"
// @Param        min_calories       query  number  false  "Minimum calories"
// @Param        max_calories       query  number  false  "Maximum calories"
// @Param        min_protein        query  number  false  "Minimum protein"
// @Param        max_protein        query  number  false  "Maximum protein"
// @Param        min_carbohydrates  query  number  false  "Minimum total carbohydrate"
// @Param        max_carbohydrates  query  number  false  "Maximum total carbohydrate"
// @Param        limit              query  int     false  "Page size"  default(5)
// @Param        offset             query  int     false  "Offset"     default(0)
// @Success      200 {object} httputil.Envelope{data=[]Food}
// @Failure      404 {object} httputil.ErrorEnvelope "No food items match the criteria"
// @Failure      422 {object} httputil.ErrorEnvelope "Invalid filter"
// @Router       /api/food/get [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, ErrNoMatches) {
			httputil.RespondError(w, r, httputil.NotFound("No food items match the criteria"))
			return
		}
		httputil.RespondError(w, r, err)
		return
	}

	httputil.RespondList(w, r, items)
}

func parseFilter(r *http.Request) (Filter, error) {
	page, err := httputil.ParsePage(r)
	if err != nil {
		return Filter{}, err
	}

	filter := Filter{
		Name:   r.URL.Query().Get("name"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}

	for _, p := range []struct {
		name string
		dst  **float64
	}{
		{"min_calories", &filter.Calories.Min},
		{"max_calories", &filter.Calories.Max},
		{"min_protein", &filter.Protein.Min},
		{"max_protein", &filter.Protein.Max},
		{"min_carbohydrates", &filter.Carbohydrates.Min},
		{"max_carbohydrates", &filter.Carbohydrates.Max},
	} {
		v, err := httputil.QueryFloat(r, p.name)
		if err != nil {
			return Filter{}, err
		}
		*p.dst = v
	}

	return filter, nil
}

// Get handles fetching one food item
// @Summary      Get food
// @Tags         Food
// @Produce      json
// @Param        id  path  string  true  "Food UUID"
// @Success      200 {object} httputil.Envelope{data=Food}
// @Failure      400 {object} httputil.ErrorEnvelope "Invalid identifier"
// @Failure      404 {object} httputil.ErrorEnvelope "Food not found"
// @Router       /api/food/get/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.UUIDParam(r, "id")
	if err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	f, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondError(w, r, httputil.NotFound("No food item with "+id.String()+" found").WithContext("uuid", id.String()))
			return
		}
		httputil.RespondError(w, r, err)
		return
	}

	httputil.RespondEntity(w, r, f, http.StatusOK)
}

// Create handles adding a food item
// @Summary      Create food
// @Tags         Food
// @Accept       json
// @Produce      json
// @Param        request body CreateInput true "Food"
// @Success      200 {object} httputil.Envelope{data=Food}
// @Failure      400 {object} httputil.ErrorEnvelope "Malformed body"
// @Failure      409 {object} httputil.ErrorEnvelope "Food already exists"
// @Failure      422 {object} httputil.ErrorEnvelope "Validation error"
// @Router       /api/food/add [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := httputil.DecodeJSON(w, r, &in); err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	f, err := h.service.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			id := ""
			if in.ID != nil {
				id = in.ID.String()
			}
			httputil.RespondError(w, r, httputil.AlreadyExists("Food with id "+id+" already exists").WithContext("uuid", id))
			return
		}
		httputil.RespondError(w, r, err)
		return
	}

	httputil.RespondEntity(w, r, f, http.StatusOK)
}

// Update handles partial food updates
// @Summary      Update food
// @Description  Only the supplied fields are changed; null clears an optional field.
// @Tags         Food
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "Food UUID"
// @Param        request  body  object  true  "Fields to change"
// @Success      200 {object} httputil.Envelope{data=Food}
// @Failure      404 {object} httputil.ErrorEnvelope "Food not found"
// @Failure      422 {object} httputil.ErrorEnvelope "Validation error"
// @Router       /api/food/update/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.UUIDParam(r, "id")
	if err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	var body map[string]json.RawMessage
	if err := httputil.DecodeJSON(w, r, &body); err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	patch, err := ParsePatch(body)
	if err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	f, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondError(w, r, httputil.NotFound("Food with id "+id.String()+" not found").WithContext("uuid", id.String()))
			return
		}
		httputil.RespondError(w, r, err)
		return
	}

	httputil.RespondEntity(w, r, f, http.StatusOK)
}

// Delete handles food deletion
// @Summary      Delete food
// @Description  Admin only.
// @Tags         Food
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Food UUID"
// @Success      200 {object} httputil.Envelope{data=DeletedResponse}
// @Failure      401 {object} httputil.ErrorEnvelope "Not authenticated"
// @Failure      403 {object} httputil.ErrorEnvelope "Admin privileges needed"
// @Failure      404 {object} httputil.ErrorEnvelope "Food not found"
// @Router       /api/food/delete/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.UUIDParam(r, "id")
	if err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	caller, _ := user.FromContext(r.Context())
	if err := h.service.Delete(r.Context(), caller, id); err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			httputil.RespondError(w, r, httputil.Forbidden("Admin privileges needed to delete food."))
		case errors.Is(err, ErrNotFound):
			httputil.RespondError(w, r, httputil.NotFound("Food with id "+id.String()+" not found").WithContext("uuid", id.String()))
		default:
			httputil.RespondError(w, r, err)
		}
		return
	}

	httputil.RespondOK(w, r, DeletedResponse{FoodID: id})
}
