package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"artwalls/internal/domain"
)

// requestActiveIndex is the partial unique index backing the duplicate
// guard. The pre-check in the service is an optimization; this constraint
// is the source of truth under concurrent creates:
//
//	CREATE UNIQUE INDEX requests_active_pair_idx
//	ON requests (artist_id, host_id)
//	WHERE status NOT IN ('approved','rejected','withdrawn','removed','converted_to_application');
const requestActiveIndex = "requests_active_pair_idx"

type requestRepository struct {
	DB *sql.DB
}

func NewRequestRepository(db *sql.DB) domain.RequestRepository {
	return &requestRepository{DB: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	query := `
		INSERT INTO requests (artist_id, host_id, kind, status, note, artwork_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var artwork sql.NullString
	if req.ArtworkID != nil {
		artwork = sql.NullString{String: *req.ArtworkID, Valid: true}
	}
	err := r.DB.QueryRowContext(ctx, query,
		req.ArtistID, req.HostID, req.Kind, req.Status, req.Note, artwork, req.CreatedAt, req.UpdatedAt,
	).Scan(&req.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateActiveRequest
		}
		return err
	}
	return nil
}

func (r *requestRepository) GetByIDAndHost(ctx context.Context, id, hostID string) (*domain.Request, error) {
	query := `
		SELECT id, artist_id, host_id, kind, status, note, artwork_id, created_at, updated_at
		FROM requests
		WHERE id = $1 AND host_id = $2
	`
	return scanRequest(r.DB.QueryRowContext(ctx, query, id, hostID))
}

func (r *requestRepository) ListByHostID(ctx context.Context, hostID string, filter domain.RequestFilter) ([]*domain.Request, error) {
	query := `
		SELECT id, artist_id, host_id, kind, status, note, artwork_id, created_at, updated_at
		FROM requests
		WHERE host_id = $1
	`
	args := []any{hostID}
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	return r.queryRequests(ctx, query, args...)
}

func (r *requestRepository) ListByArtistID(ctx context.Context, artistID string) ([]*domain.Request, error) {
	query := `
		SELECT id, artist_id, host_id, kind, status, note, artwork_id, created_at, updated_at
		FROM requests
		WHERE artist_id = $1
		ORDER BY created_at DESC
	`
	return r.queryRequests(ctx, query, artistID)
}

func (r *requestRepository) FindActiveByPair(ctx context.Context, artistID, hostID string) (*domain.Request, error) {
	query := fmt.Sprintf(`
		SELECT id, artist_id, host_id, kind, status, note, artwork_id, created_at, updated_at
		FROM requests
		WHERE artist_id = $1 AND host_id = $2 AND status NOT IN (%s)
		LIMIT 1
	`, terminalStatusList())
	return scanRequest(r.DB.QueryRowContext(ctx, query, artistID, hostID))
}

func (r *requestRepository) CountByArtistSince(ctx context.Context, artistID string, since time.Time, excluded []domain.RequestStatus) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM requests
		WHERE artist_id = $1 AND created_at >= $2 AND status <> ALL($3)
	`
	excludedStrs := make([]string, len(excluded))
	for i, s := range excluded {
		excludedStrs[i] = string(s)
	}
	var count int
	err := r.DB.QueryRowContext(ctx, query, artistID, since, pq.Array(excludedStrs)).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, updatedAt time.Time) (*domain.Request, error) {
	query := `
		UPDATE requests
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, artist_id, host_id, kind, status, note, artwork_id, created_at, updated_at
	`
	return scanRequest(r.DB.QueryRowContext(ctx, query, id, status, updatedAt))
}

func (r *requestRepository) UpdateStatusAndKind(ctx context.Context, id string, status domain.RequestStatus, kind domain.RequestKind, updatedAt time.Time) (*domain.Request, error) {
	query := `
		UPDATE requests
		SET status = $2, kind = $3, updated_at = $4
		WHERE id = $1
		RETURNING id, artist_id, host_id, kind, status, note, artwork_id, created_at, updated_at
	`
	return scanRequest(r.DB.QueryRowContext(ctx, query, id, status, kind, updatedAt))
}

func (r *requestRepository) queryRequests(ctx context.Context, query string, args ...any) ([]*domain.Request, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []*domain.Request{}
	for rows.Next() {
		req := &domain.Request{}
		var artwork sql.NullString
		if err := rows.Scan(&req.ID, &req.ArtistID, &req.HostID, &req.Kind, &req.Status, &req.Note, &artwork, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		if artwork.Valid {
			req.ArtworkID = &artwork.String
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*domain.Request, error) {
	req := &domain.Request{}
	var artwork sql.NullString
	err := row.Scan(&req.ID, &req.ArtistID, &req.HostID, &req.Kind, &req.Status, &req.Note, &artwork, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if artwork.Valid {
		req.ArtworkID = &artwork.String
	}
	return req, nil
}

func terminalStatusList() string {
	terminal := domain.TerminalStatuses()
	quoted := make([]string, len(terminal))
	for i, s := range terminal {
		quoted[i] = "'" + string(s) + "'"
	}
	return strings.Join(quoted, ", ")
}
