package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "artwalls/internal/delivery/http/helpers"
	"artwalls/internal/delivery/http/middleware"
	"artwalls/internal/domain"
	"artwalls/internal/validate"
)

type InviteController struct {
	Logger  *slog.Logger
	Service domain.InviteService
}

func NewInviteController(logger *slog.Logger, svc domain.InviteService) *InviteController {
	return &InviteController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateInviteBody is the request body for POST /hosts/{hostID}/invites
type CreateInviteBody struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (b CreateInviteBody) Validate() []string {
	email := strings.TrimSpace(strings.ToLower(b.Email))
	if email == "" {
		return []string{"email is required"}
	}
	if !validate.IsEmail(email) {
		return []string{"invalid email format"}
	}
	return nil
}

// Create godoc
// @Summary Invite an artist to apply
// @Description Creates an invite for the email address and sends the invite link. Only the host itself may invite.
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hostID path string true "Host ID (UUID)"
// @Param body body CreateInviteBody true "Invitee email"
// @Success 201 {object} helpers.APIResponse "data contains the created invite"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hosts/{hostID}/invites [post]
func (c *InviteController) Create(w http.ResponseWriter, r *http.Request) {
	hostID := r.PathValue("hostID")
	if !validate.IsUUID(hostID) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid hostID")
		return
	}
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var body CreateInviteBody
	if !h.DecodeAndValidate(w, r, &body) {
		return
	}

	inv, err := c.Service.Create(r.Context(), hostID, actorID, body.Email)
	if err != nil {
		c.writeInviteError(w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusCreated, inv)
}

// List godoc
// @Summary List a host's invites
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param hostID path string true "Host ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the invite list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hosts/{hostID}/invites [get]
func (c *InviteController) List(w http.ResponseWriter, r *http.Request) {
	hostID := r.PathValue("hostID")
	if !validate.IsUUID(hostID) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid hostID")
		return
	}
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}

	invites, err := c.Service.ListForHost(r.Context(), hostID, actorID)
	if err != nil {
		c.writeInviteError(w, r, err)
		return
	}
	if invites == nil {
		invites = []*domain.Invite{}
	}

	h.WriteJSONSuccess(w, http.StatusOK, invites)
}

// Open godoc
// @Summary Open an invite link
// @Description Public endpoint behind the emailed invite link. Records the open (click count, first-opened timestamp) and returns the invite. Opening a settled invite changes nothing.
// @Tags invites
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} helpers.APIResponse "data contains the invite"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invites/{token} [get]
func (c *InviteController) Open(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if !validate.IsInviteToken(token) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid token")
		return
	}

	inv, err := c.Service.Open(r.Context(), token)
	if err != nil {
		c.writeInviteError(w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, inv)
}

// Accept godoc
// @Summary Accept an invite
// @Tags invites
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} helpers.APIResponse "data contains the invite"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, details carry the current status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invites/{token}/accept [post]
func (c *InviteController) Accept(w http.ResponseWriter, r *http.Request) {
	c.settle(w, r, c.Service.Accept)
}

// Decline godoc
// @Summary Decline an invite
// @Tags invites
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} helpers.APIResponse "data contains the invite"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, details carry the current status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invites/{token}/decline [post]
func (c *InviteController) Decline(w http.ResponseWriter, r *http.Request) {
	c.settle(w, r, c.Service.Decline)
}

func (c *InviteController) settle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, token string) (*domain.Invite, error)) {
	token := r.PathValue("token")
	if !validate.IsInviteToken(token) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid token")
		return
	}

	inv, err := op(r.Context(), token)
	if err != nil {
		c.writeInviteError(w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, inv)
}

func (c *InviteController) writeInviteError(w http.ResponseWriter, r *http.Request, err error) {
	var transitionErr *domain.IllegalInviteTransitionError

	switch {
	case errors.As(err, &transitionErr):
		h.WriteJSONErrorDetails(w, http.StatusBadRequest, h.ErrCodeBadRequest, transitionErr.Error(), map[string]any{
			"current":   string(transitionErr.Current),
			"requested": string(transitionErr.Requested),
		})
	case errors.Is(err, domain.ErrForbidden):
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "not found")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}
