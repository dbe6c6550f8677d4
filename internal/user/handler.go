package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/logging"
)

// Handler contains HTTP handlers for user endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// DeletedResponse is the data returned after a delete
type DeletedResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

// List handles user listing
// @Summary      List users
// @Description  Page through users. Password and admin flag are never returned.
// @Tags         User
// @Produce      json
// @Param        limit   query  int  false  "Page size"  default(5)
// @Param        offset  query  int  false  "Offset"     default(0)
// @Success      200 {object} httputil.Envelope{data=[]PublicUser}
// @Failure      404 {object} httputil.ErrorEnvelope "No users found"
// @Failure      422 {object} httputil.ErrorEnvelope "Invalid paging"
// @Router       /api/user/get [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := httputil.ParsePage(r)
	if err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	users, err := h.service.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		h.respondServiceError(w, r, err, uuid.Nil)
		return
	}

	out := make([]PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	httputil.RespondList(w, r, out)
}

// Get handles fetching one user
// @Summary      Get user
// @Tags         User
// @Produce      json
// @Param        id  path  string  true  "User UUID"
// @Success      200 {object} httputil.Envelope{data=PublicUser}
// @Failure      400 {object} httputil.ErrorEnvelope "Invalid identifier"
// @Failure      404 {object} httputil.ErrorEnvelope "User not found"
// @Router       /api/user/get/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.UUIDParam(r, "id")
	if err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	u, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err, id)
		return
	}

	httputil.RespondEntity(w, r, u.Public(), http.StatusOK)
}

// Create handles user registration
// @Summary      Create user
// @Description  Register a user. The password is stored as an argon2id hash.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body CreateInput true "User"
// @Success      200 {object} httputil.Envelope{data=User}
// @Failure      400 {object} httputil.ErrorEnvelope "Malformed body"
// @Failure      409 {object} httputil.ErrorEnvelope "Username, email or id already exists"
// @Failure      422 {object} httputil.ErrorEnvelope "Validation error"
// @Router       /api/user/add [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := httputil.DecodeJSON(w, r, &in); err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	u, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.respondDuplicate(w, r, err, in.Username, in.Email, in.ID)
		return
	}

	httputil.RespondEntity(w, r, u, http.StatusOK)
}

// Update handles partial user updates
// @Summary      Update user
// @Description  Only the supplied fields are changed. A new password is re-hashed.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "User UUID"
// @Param        request  body  object  true  "Fields to change"
// @Success      200 {object} httputil.Envelope{data=User}
// @Failure      404 {object} httputil.ErrorEnvelope "User not found"
// @Failure      409 {object} httputil.ErrorEnvelope "Username or email already exists"
// @Failure      422 {object} httputil.ErrorEnvelope "Validation error"
// @Router       /api/user/update/{id} [put]
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

	username, _ := patch["username"].(string)
	email, _ := patch["email"].(string)

	u, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.respondServiceError(w, r, err, id)
			return
		}
		h.respondDuplicate(w, r, err, username, email, &id)
		return
	}

	httputil.RespondEntity(w, r, u, http.StatusOK)
}

// Delete handles user deletion
// @Summary      Delete user
// @Description  Callers may delete their own account; admins may delete any account.
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User UUID"
// @Success      200 {object} httputil.Envelope{data=DeletedResponse}
// @Failure      401 {object} httputil.ErrorEnvelope "Not authenticated"
// @Failure      403 {object} httputil.ErrorEnvelope "Not the same user and not an admin"
// @Failure      404 {object} httputil.ErrorEnvelope "User not found"
// @Router       /api/user/delete/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var (
		id  uuid.UUID
		err error
	)
	if q := r.URL.Query().Get("uuid"); q != "" {
		id, err = httputil.ParseUUID("uuid", q)
	} else {
		id, err = httputil.UUIDParam(r, "id")
	}
	if err != nil {
		httputil.RespondError(w, r, err)
		return
	}

	caller, _ := FromContext(r.Context())
	if err := h.service.Delete(r.Context(), caller, id); err != nil {
		h.respondServiceError(w, r, err, id)
		return
	}

	httputil.RespondOK(w, r, DeletedResponse{UserID: id})
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, id uuid.UUID) {
	switch {
	case errors.Is(err, ErrNoUsers):
		httputil.RespondError(w, r, httputil.NotFound("No users found"))
	case errors.Is(err, ErrNotFound):
		httputil.RespondError(w, r, httputil.NotFound("User with id "+id.String()+" not found").WithContext("uuid", id.String()))
	case errors.Is(err, ErrForbidden):
		httputil.RespondError(w, r, httputil.Forbidden("Admin privileges needed to delete another user."))
	default:
		httputil.RespondError(w, r, err)
	}
}

func (h *Handler) respondDuplicate(w http.ResponseWriter, r *http.Request, err error, username, email string, id *uuid.UUID) {
	logger := logging.GetLoggerFromContext(r.Context())

	switch {
	case errors.Is(err, ErrDuplicateUsername):
		logger.Warn("user write rejected: username exists")
		httputil.RespondError(w, r, httputil.AlreadyExists("User with username "+username+" already exists").WithContext("username", username))
	case errors.Is(err, ErrDuplicateEmail):
		logger.Warn("user write rejected: email exists")
		httputil.RespondError(w, r, httputil.AlreadyExists("User with email "+email+" already exists").WithContext("email", email))
	case errors.Is(err, ErrDuplicateID):
		detail := httputil.AlreadyExists("User already exists")
		if id != nil {
			detail = httputil.AlreadyExists("User with id "+id.String()+" already exists").WithContext("uuid", id.String())
		}
		httputil.RespondError(w, r, detail)
	default:
		httputil.RespondError(w, r, err)
	}
}
