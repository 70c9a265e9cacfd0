package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "artwalls/internal/delivery/http/helpers"
	"artwalls/internal/domain"
	"artwalls/internal/delivery/http/middleware"
	"artwalls/internal/validate"
)

type RequestController struct {
	Logger  *slog.Logger
	Service domain.RequestService
}

func NewRequestController(logger *slog.Logger, svc domain.RequestService) *RequestController {
	return &RequestController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateRequestBody is the request body for POST /hosts/{hostID}/requests
type CreateRequestBody struct {
	Kind      string  `json:"kind"`
	Note      string  `json:"note"`
	ArtworkID *string `json:"artwork_id"`
}

// Validate implements Validator.
func (b CreateRequestBody) Validate() []string {
	var errs []string
	kind := strings.TrimSpace(strings.ToLower(b.Kind))
	if kind == "" {
		errs = append(errs, "kind is required")
	} else if kind != string(domain.KindApplication) && kind != string(domain.KindWaitlist) {
		errs = append(errs, "kind must be \"application\" or \"waitlist\"")
	}
	if b.ArtworkID != nil && !validate.IsUUID(*b.ArtworkID) {
		errs = append(errs, "artwork_id must be a UUID")
	}
	return errs
}

// TransitionRequestBody is the request body for PATCH /hosts/{hostID}/requests/{requestID}
type TransitionRequestBody struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (b TransitionRequestBody) Validate() []string {
	if strings.TrimSpace(b.Status) == "" {
		return []string{"status is required"}
	}
	return nil
}

// Create godoc
// @Summary Submit a wall request to a host
// @Description Creates an application or waitlist request from the authenticated artist to the host. Fails when the waitlist is disabled, the monthly quota is spent, or an active request for the pair already exists.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hostID path string true "Host ID (UUID)"
// @Param body body CreateRequestBody true "Request data"
// @Success 201 {object} helpers.APIResponse "data contains the created request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or feature_disabled"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 402 {object} helpers.APIResponse "error.code: quota_exceeded, details carry tier/limit/used"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict, details carry the existing request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hosts/{hostID}/requests [post]
func (c *RequestController) Create(w http.ResponseWriter, r *http.Request) {
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

	var body CreateRequestBody
	if !h.DecodeAndValidate(w, r, &body) {
		return
	}

	req, err := c.Service.Create(r.Context(), domain.CreateRequestInput{
		ArtistID:  actorID,
		HostID:    hostID,
		Kind:      domain.RequestKind(strings.TrimSpace(strings.ToLower(body.Kind))),
		Note:      validate.ClampString(body.Note, 2000),
		ArtworkID: body.ArtworkID,
	})
	if err != nil {
		c.writeRequestError(w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusCreated, req)
}

// ListForHost godoc
// @Summary List requests received by a host
// @Description Lists the host's incoming requests, newest first. Only the host itself may call this. Optional kind and status query filters.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param hostID path string true "Host ID (UUID)"
// @Param kind query string false "Filter by kind"
// @Param status query string false "Filter by status"
// @Success 200 {object} helpers.APIResponse "data contains the request list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hosts/{hostID}/requests [get]
func (c *RequestController) ListForHost(w http.ResponseWriter, r *http.Request) {
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

	requests, err := c.Service.ListForHost(r.Context(), hostID, actorID, h.ParseRequestFilter(r))
	if err != nil {
		c.writeRequestError(w, r, err)
		return
	}
	if requests == nil {
		requests = []*domain.Request{}
	}

	h.WriteJSONSuccess(w, http.StatusOK, requests)
}

// ListMine godoc
// @Summary List the authenticated artist's requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the request list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/requests [get]
func (c *RequestController) ListMine(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}

	requests, err := c.Service.ListForArtist(r.Context(), actorID)
	if err != nil {
		c.writeRequestError(w, r, err)
		return
	}
	if requests == nil {
		requests = []*domain.Request{}
	}

	h.WriteJSONSuccess(w, http.StatusOK, requests)
}

// Quota godoc
// @Summary Report the authenticated artist's monthly request quota
// @Description Returns tier, limit, used, and remaining for the current calendar month. Limit and remaining are null on the unlimited tier.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the quota status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/requests/quota [get]
func (c *RequestController) Quota(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}

	quota, err := c.Service.Quota(r.Context(), actorID)
	if err != nil {
		c.writeRequestError(w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, quota)
}

// Transition godoc
// @Summary Move a request to a new status
// @Description Applies a status transition as the authenticated actor. Hosts and artists see different legal moves; an illegal move returns 400 with the allowed targets in error.details.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hostID path string true "Host ID (UUID)"
// @Param requestID path string true "Request ID (UUID)"
// @Param body body TransitionRequestBody true "Target status"
// @Success 200 {object} helpers.APIResponse "data contains the updated request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, illegal moves carry details.allowed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /hosts/{hostID}/requests/{requestID} [patch]
func (c *RequestController) Transition(w http.ResponseWriter, r *http.Request) {
	hostID := r.PathValue("hostID")
	requestID := r.PathValue("requestID")
	if !validate.IsUUID(hostID) || !validate.IsUUID(requestID) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid id")
		return
	}
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var body TransitionRequestBody
	if !h.DecodeAndValidate(w, r, &body) {
		return
	}

	req, err := c.Service.Transition(r.Context(), requestID, hostID, actorID,
		domain.RequestStatus(strings.TrimSpace(strings.ToLower(body.Status))))
	if err != nil {
		c.writeRequestError(w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, req)
}

// writeRequestError maps service errors onto the response envelope.
func (c *RequestController) writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
	var conflictErr *domain.ConflictError
	var quotaErr *domain.QuotaExceededError
	var transitionErr *domain.IllegalTransitionError

	switch {
	case errors.As(err, &conflictErr):
		h.WriteJSONErrorDetails(w, http.StatusConflict, h.ErrCodeConflict, conflictErr.Error(), map[string]any{
			"existing_id":     conflictErr.ExistingID,
			"existing_status": string(conflictErr.ExistingStatus),
		})
	case errors.As(err, &quotaErr):
		h.WriteJSONErrorDetails(w, http.StatusPaymentRequired, h.ErrCodeQuotaExceeded, quotaErr.Error(), map[string]any{
			"tier":  string(quotaErr.Tier),
			"limit": quotaErr.Limit,
			"used":  quotaErr.Used,
		})
	case errors.As(err, &transitionErr):
		allowed := make([]string, len(transitionErr.Allowed))
		for i, s := range transitionErr.Allowed {
			allowed[i] = string(s)
		}
		h.WriteJSONErrorDetails(w, http.StatusBadRequest, h.ErrCodeBadRequest, transitionErr.Error(), map[string]any{
			"current": string(transitionErr.Current),
			"role":    string(transitionErr.Role),
			"allowed": allowed,
		})
	case errors.Is(err, domain.ErrFeatureDisabled):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeFeatureDisabled, "the host has not enabled its waitlist")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "not found")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}
