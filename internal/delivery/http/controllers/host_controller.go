package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "artwalls/internal/delivery/http/helpers"
	"artwalls/internal/delivery/http/middleware"
	"artwalls/internal/domain"
	"artwalls/internal/validate"
)

type HostController struct {
	Logger  *slog.Logger
	Service domain.HostService
}

func NewHostController(logger *slog.Logger, svc domain.HostService) *HostController {
	return &HostController{
		Logger:  logger,
		Service: svc,
	}
}

// WaitlistSettingBody is the request body for PATCH /hosts/{hostID}/settings/waitlist
type WaitlistSettingBody struct {
	WaitlistEnabled *bool `json:"waitlist_enabled"`
}

// Validate implements Validator.
func (b WaitlistSettingBody) Validate() []string {
	if b.WaitlistEnabled == nil {
		return []string{"waitlist_enabled is required"}
	}
	return nil
}

// GetSettings godoc
// @Summary Get a host's settings
// @Tags hosts
// @Produce json
// @Security BearerAuth
// @Param hostID path string true "Host ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the host settings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hosts/{hostID}/settings [get]
func (c *HostController) GetSettings(w http.ResponseWriter, r *http.Request) {
	hostID := r.PathValue("hostID")
	if !validate.IsUUID(hostID) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid hostID")
		return
	}
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}

	settings, err := c.Service.GetSettings(r.Context(), hostID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, settings)
}

// SetWaitlist godoc
// @Summary Toggle the host's public waitlist
// @Description Enables or disables waitlist requests for the host. Only the host itself may toggle its flag.
// @Tags hosts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hostID path string true "Host ID (UUID)"
// @Param body body WaitlistSettingBody true "New setting"
// @Success 200 {object} helpers.APIResponse "data contains the updated settings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hosts/{hostID}/settings/waitlist [patch]
func (c *HostController) SetWaitlist(w http.ResponseWriter, r *http.Request) {
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

	var body WaitlistSettingBody
	if !h.DecodeAndValidate(w, r, &body) {
		return
	}

	settings, err := c.Service.SetWaitlistEnabled(r.Context(), hostID, actorID, *body.WaitlistEnabled)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, settings)
}
