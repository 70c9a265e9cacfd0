package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artwalls/internal/delivery/http/helpers"
	"artwalls/internal/delivery/http/middleware"
	"artwalls/internal/domain"
)

const (
	testHostID    = "11111111-1111-1111-1111-111111111111"
	testArtistID  = "22222222-2222-2222-2222-222222222222"
	testRequestID = "33333333-3333-3333-3333-333333333333"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type mockRequestService struct {
	request *domain.Request
	list    []*domain.Request
	quota   *domain.QuotaStatus
	err     error
}

func (m *mockRequestService) Create(ctx context.Context, in domain.CreateRequestInput) (*domain.Request, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.request, nil
}

func (m *mockRequestService) ListForHost(ctx context.Context, hostID, actorID string, filter domain.RequestFilter) ([]*domain.Request, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.list, nil
}

func (m *mockRequestService) ListForArtist(ctx context.Context, artistID string) ([]*domain.Request, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.list, nil
}

func (m *mockRequestService) Transition(ctx context.Context, requestID, hostID, actorID string, next domain.RequestStatus) (*domain.Request, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.request, nil
}

func (m *mockRequestService) Quota(ctx context.Context, artistID string) (*domain.QuotaStatus, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.quota, nil
}

func authedRequest(method, target string, body string, userID string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if userID != "" {
		req = req.WithContext(middleware.SetUserID(req.Context(), userID))
	}
	return req
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestRequestController_Create_Success(t *testing.T) {
	svc := &mockRequestService{request: &domain.Request{
		ID: testRequestID, ArtistID: testArtistID, HostID: testHostID,
		Kind: domain.KindApplication, Status: domain.StatusSubmitted,
	}}
	ctrl := NewRequestController(discardLogger(), svc)

	req := authedRequest(http.MethodPost, "/hosts/"+testHostID+"/requests",
		`{"kind":"application","note":"hi"}`, testArtistID)
	req.SetPathValue("hostID", testHostID)
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	resp := decodeEnvelope(t, w)
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}

func TestRequestController_Create_Unauthorized(t *testing.T) {
	ctrl := NewRequestController(discardLogger(), &mockRequestService{})

	req := authedRequest(http.MethodPost, "/hosts/"+testHostID+"/requests", `{"kind":"application"}`, "")
	req.SetPathValue("hostID", testHostID)
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequestController_Create_BadKind(t *testing.T) {
	ctrl := NewRequestController(discardLogger(), &mockRequestService{})

	req := authedRequest(http.MethodPost, "/hosts/"+testHostID+"/requests", `{"kind":"sponsorship"}`, testArtistID)
	req.SetPathValue("hostID", testHostID)
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRequestController_Create_Conflict(t *testing.T) {
	svc := &mockRequestService{err: &domain.ConflictError{
		ExistingID: testRequestID, ExistingStatus: domain.StatusSubmitted,
	}}
	ctrl := NewRequestController(discardLogger(), svc)

	req := authedRequest(http.MethodPost, "/hosts/"+testHostID+"/requests", `{"kind":"application"}`, testArtistID)
	req.SetPathValue("hostID", testHostID)
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeConflict {
		t.Fatalf("expected conflict error, got %v", resp.Error)
	}
	if resp.Error.Details["existing_id"] != testRequestID {
		t.Fatalf("expected existing_id in details, got %v", resp.Error.Details)
	}
}

func TestRequestController_Create_QuotaExceeded(t *testing.T) {
	svc := &mockRequestService{err: &domain.QuotaExceededError{
		Tier: domain.TierStarter, Limit: 5, Used: 5,
	}}
	ctrl := NewRequestController(discardLogger(), svc)

	req := authedRequest(http.MethodPost, "/hosts/"+testHostID+"/requests", `{"kind":"application"}`, testArtistID)
	req.SetPathValue("hostID", testHostID)
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("expected status %d, got %d", http.StatusPaymentRequired, w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeQuotaExceeded {
		t.Fatalf("expected quota_exceeded error, got %v", resp.Error)
	}
	if resp.Error.Details["tier"] != "starter" {
		t.Fatalf("expected tier in details, got %v", resp.Error.Details)
	}
}

func TestRequestController_Create_FeatureDisabled(t *testing.T) {
	svc := &mockRequestService{err: domain.ErrFeatureDisabled}
	ctrl := NewRequestController(discardLogger(), svc)

	req := authedRequest(http.MethodPost, "/hosts/"+testHostID+"/requests", `{"kind":"waitlist"}`, testArtistID)
	req.SetPathValue("hostID", testHostID)
	w := httptest.NewRecorder()

	ctrl.Create(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeFeatureDisabled {
		t.Fatalf("expected feature_disabled error, got %v", resp.Error)
	}
}

func TestRequestController_Transition_IllegalCarriesAllowedSet(t *testing.T) {
	svc := &mockRequestService{err: &domain.IllegalTransitionError{
		Current:   domain.StatusSubmitted,
		Requested: domain.StatusApproved,
		Role:      domain.RoleArtist,
		Allowed:   []domain.RequestStatus{domain.StatusSubmitted, domain.StatusWithdrawn},
	}}
	ctrl := NewRequestController(discardLogger(), svc)

	req := authedRequest(http.MethodPatch, "/hosts/"+testHostID+"/requests/"+testRequestID,
		`{"status":"approved"}`, testArtistID)
	req.SetPathValue("hostID", testHostID)
	req.SetPathValue("requestID", testRequestID)
	w := httptest.NewRecorder()

	ctrl.Transition(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Error == nil {
		t.Fatal("expected an error envelope")
	}
	allowed, ok := resp.Error.Details["allowed"].([]any)
	if !ok || len(allowed) != 2 {
		t.Fatalf("expected two allowed targets in details, got %v", resp.Error.Details)
	}
}

func TestRequestController_Transition_Forbidden(t *testing.T) {
	svc := &mockRequestService{err: domain.ErrForbidden}
	ctrl := NewRequestController(discardLogger(), svc)

	req := authedRequest(http.MethodPatch, "/hosts/"+testHostID+"/requests/"+testRequestID,
		`{"status":"approved"}`, testArtistID)
	req.SetPathValue("hostID", testHostID)
	req.SetPathValue("requestID", testRequestID)
	w := httptest.NewRecorder()

	ctrl.Transition(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestRequestController_ListForHost_EmptyIsArray(t *testing.T) {
	ctrl := NewRequestController(discardLogger(), &mockRequestService{})

	req := authedRequest(http.MethodGet, "/hosts/"+testHostID+"/requests?status=submitted", "", testHostID)
	req.SetPathValue("hostID", testHostID)
	w := httptest.NewRecorder()

	ctrl.ListForHost(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty array data, got %s", w.Body.String())
	}
}

func TestRequestController_Quota(t *testing.T) {
	limit := 5
	remaining := 2
	svc := &mockRequestService{quota: &domain.QuotaStatus{
		Tier: domain.TierStarter, Limit: &limit, Used: 3, Remaining: &remaining,
	}}
	ctrl := NewRequestController(discardLogger(), svc)

	req := authedRequest(http.MethodGet, "/me/requests/quota", "", testArtistID)
	w := httptest.NewRecorder()

	ctrl.Quota(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	resp := decodeEnvelope(t, w)
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", resp.Data)
	}
	if data["used"] != float64(3) {
		t.Fatalf("expected used=3, got %v", data["used"])
	}
}
