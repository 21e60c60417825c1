package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"challenge-admin/internal/challenge"
	repo "challenge-admin/internal/challenge/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChallenge(row rowScanner) (challenge.Challenge, error) {
	var (
		ch                   challenge.Challenge
		status, rewardType   string
		startDate, endDate   string
		createdAt, updatedAt int64
	)
	err := row.Scan(&ch.ID, &ch.Title, &ch.Description, &ch.AuthorID, &status, &startDate, &endDate,
		&ch.RewardAmount, &rewardType, &createdAt, &updatedAt)
	if err != nil {
		return challenge.Challenge{}, err
	}

	ch.Status = challenge.Status(status)
	ch.RewardType = challenge.RewardType(rewardType)
	if ch.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
		return challenge.Challenge{}, fmt.Errorf("parse start_date %q: %w", startDate, err)
	}
	if ch.EndDate, err = time.Parse(dateLayout, endDate); err != nil {
		return challenge.Challenge{}, fmt.Errorf("parse end_date %q: %w", endDate, err)
	}
	ch.CreatedAt = time.UnixMilli(createdAt).UTC()
	ch.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	ch.ParticipantIDs = []int64{}
	return ch, nil
}

// CreateChallenge inserts a new RECRUITING Challenge and returns the created entity.
func (r *implRepository) CreateChallenge(ctx context.Context, opt repo.CreateChallengeOptions) (challenge.Challenge, error) {
	query := `
		INSERT INTO challenges (title, description, author_id, status, start_date, end_date,
			reward_amount, reward_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + challengeColumns

	now := r.now().UTC().UnixMilli()
	ch, err := scanChallenge(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.AuthorID, string(challenge.StatusRecruiting),
		opt.StartDate.Format(dateLayout), opt.EndDate.Format(dateLayout),
		opt.RewardAmount, string(opt.RewardType), now, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateChallenge"), err)
		return challenge.Challenge{}, repo.ErrFailedToInsert
	}
	return ch, nil
}

// GetOneChallenge retrieves a single Challenge with its participants.
// Returns zero-value Challenge (ID == 0) when not found.
func (r *implRepository) GetOneChallenge(ctx context.Context, opt repo.GetOneChallengeOptions) (challenge.Challenge, error) {
	query := fmt.Sprintf(`SELECT %s FROM challenges WHERE id = ? LIMIT 1`, challengeColumns)

	ch, err := scanChallenge(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return challenge.Challenge{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneChallenge"), err)
		return challenge.Challenge{}, repo.ErrFailedToGet
	}

	list := []challenge.Challenge{ch}
	if err := r.loadParticipants(ctx, list); err != nil {
		r.l.Errorf(ctx, "%s participants: %v", r.dsn("GetOneChallenge"), err)
		return challenge.Challenge{}, repo.ErrFailedToGet
	}
	return list[0], nil
}

// ListChallenges returns a paginated list of Challenges and the total count.
func (r *implRepository) ListChallenges(ctx context.Context, opt repo.ListChallengesOptions) ([]challenge.Challenge, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM challenges WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListChallenges"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM challenges %s`, challengeColumns, mods)
	challenges, err := r.queryChallenges(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListChallenges"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 3. Participants, after the page rows are closed
	if err := r.loadParticipants(ctx, challenges); err != nil {
		r.l.Errorf(ctx, "%s participants: %v", r.dsn("ListChallenges"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return challenges, total, nil
}

// UpdateChallenge writes all mutable columns and returns the updated entity.
// Returns zero-value Challenge when the id does not exist.
func (r *implRepository) UpdateChallenge(ctx context.Context, opt repo.UpdateChallengeOptions) (challenge.Challenge, error) {
	query := `
		UPDATE challenges
		SET title = ?, description = ?, status = ?, start_date = ?, end_date = ?,
			reward_amount = ?, reward_type = ?, updated_at = ?
		WHERE id = ?
		RETURNING ` + challengeColumns

	ch, err := scanChallenge(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, string(opt.Status),
		opt.StartDate.Format(dateLayout), opt.EndDate.Format(dateLayout),
		opt.RewardAmount, string(opt.RewardType),
		r.now().UTC().UnixMilli(), opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return challenge.Challenge{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateChallenge"), err)
		return challenge.Challenge{}, repo.ErrFailedToUpdate
	}

	list := []challenge.Challenge{ch}
	if err := r.loadParticipants(ctx, list); err != nil {
		r.l.Errorf(ctx, "%s participants: %v", r.dsn("UpdateChallenge"), err)
		return challenge.Challenge{}, repo.ErrFailedToUpdate
	}
	return list[0], nil
}

// DeleteChallenge removes a Challenge by ID. Participants cascade.
func (r *implRepository) DeleteChallenge(ctx context.Context, id int64) error {
	const query = `DELETE FROM challenges WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteChallenge"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) queryChallenges(ctx context.Context, query string, args ...any) ([]challenge.Challenge, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	challenges := []challenge.Challenge{}
	for rows.Next() {
		ch, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, ch)
	}
	return challenges, rows.Err()
}

// loadParticipants fills ParticipantIDs of every challenge in place.
func (r *implRepository) loadParticipants(ctx context.Context, challenges []challenge.Challenge) error {
	if len(challenges) == 0 {
		return nil
	}
	index := make(map[int64]int, len(challenges))
	ids := make([]int64, len(challenges))
	for i, ch := range challenges {
		index[ch.ID] = i
		ids[i] = ch.ID
	}

	query, args := r.buildParticipantsQuery(ids)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var challengeID, userID int64
		if err := rows.Scan(&challengeID, &userID); err != nil {
			return err
		}
		i := index[challengeID]
		challenges[i].ParticipantIDs = append(challenges[i].ParticipantIDs, userID)
	}
	return rows.Err()
}
