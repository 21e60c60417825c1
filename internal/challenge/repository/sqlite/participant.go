package sqlite

import (
	"context"

	repo "challenge-admin/internal/challenge/repository"
)

// AddParticipant joins userID to the challenge.
func (r *implRepository) AddParticipant(ctx context.Context, challengeID, userID int64) error {
	const query = `INSERT INTO challenge_participants (challenge_id, user_id, joined_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, challengeID, userID, r.now().UTC().UnixMilli()); err != nil {
		if isConstraintViolation(err) {
			return repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("AddParticipant"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// RemoveParticipant removes userID from the challenge.
func (r *implRepository) RemoveParticipant(ctx context.Context, challengeID, userID int64) (bool, error) {
	const query = `DELETE FROM challenge_participants WHERE challenge_id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, challengeID, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RemoveParticipant"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("RemoveParticipant"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
