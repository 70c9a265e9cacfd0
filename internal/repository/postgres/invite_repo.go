package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"artwalls/internal/domain"
)

type inviteRepository struct {
	DB *sql.DB
}

func NewInviteRepository(db *sql.DB) domain.InviteRepository {
	return &inviteRepository{DB: db}
}

const inviteColumns = `id, host_id, email, token, status, click_count, first_opened_at, sent_at, accepted_at, declined_at, created_at, updated_at`

func (r *inviteRepository) Create(ctx context.Context, inv *domain.Invite) error {
	query := `
		INSERT INTO invites (host_id, email, token, status, click_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		inv.HostID, inv.Email, inv.Token, inv.Status, inv.ClickCount, inv.CreatedAt, inv.UpdatedAt,
	).Scan(&inv.ID)
}

func (r *inviteRepository) GetByToken(ctx context.Context, token string) (*domain.Invite, error) {
	query := `
		SELECT ` + inviteColumns + `
		FROM invites
		WHERE token = $1
	`
	return scanInvite(r.DB.QueryRowContext(ctx, query, token))
}

func (r *inviteRepository) ListByHostID(ctx context.Context, hostID string) ([]*domain.Invite, error) {
	query := `
		SELECT ` + inviteColumns + `
		FROM invites
		WHERE host_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invites := []*domain.Invite{}
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *inviteRepository) Update(ctx context.Context, inv *domain.Invite) error {
	query := `
		UPDATE invites
		SET status = $2, click_count = $3, first_opened_at = $4, sent_at = $5, accepted_at = $6, declined_at = $7, updated_at = $8
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		inv.ID, inv.Status, inv.ClickCount,
		nullTime(inv.FirstOpenedAt), nullTime(inv.SentAt), nullTime(inv.AcceptedAt), nullTime(inv.DeclinedAt),
		inv.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInvite(row rowScanner) (*domain.Invite, error) {
	inv := &domain.Invite{}
	var firstOpened, sent, accepted, declined sql.NullTime
	err := row.Scan(
		&inv.ID, &inv.HostID, &inv.Email, &inv.Token, &inv.Status, &inv.ClickCount,
		&firstOpened, &sent, &accepted, &declined, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	inv.FirstOpenedAt = timePtr(firstOpened)
	inv.SentAt = timePtr(sent)
	inv.AcceptedAt = timePtr(accepted)
	inv.DeclinedAt = timePtr(declined)
	return inv, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
