package sqlite

import (
	"fmt"
	"strings"

	repo "challenge-admin/internal/challenge/repository"
)

const challengeColumns = `id, title, description, author_id, status, start_date, end_date,
	reward_amount, reward_type, created_at, updated_at`

// allowedOrderBy guards the ORDER BY clause, which cannot be a bind parameter.
var allowedOrderBy = map[string]bool{
	"created_at DESC": true,
	"created_at ASC":  true,
	"start_date ASC":  true,
	"start_date DESC": true,
	"id ASC":          true,
}

// buildCountQuery builds WHERE clause + args for counting Challenges (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListChallengesOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListChallenges.
func (r *implRepository) buildListQuery(opt repo.ListChallengesOptions) (string, []any) {
	var parts []string
	where, args := r.buildCountQuery(opt)
	parts = append(parts, "WHERE "+where)

	orderBy := opt.OrderBy
	if !allowedOrderBy[orderBy] {
		orderBy = "created_at DESC"
	}
	// id breaks ties between rows created in the same millisecond.
	parts = append(parts, fmt.Sprintf("ORDER BY %s, id DESC", orderBy))

	// SQLite needs a LIMIT before OFFSET; -1 means unbounded.
	limit := opt.Limit
	if limit <= 0 {
		limit = -1
	}
	parts = append(parts, "LIMIT ?")
	args = append(args, limit)
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

// buildParticipantsQuery selects the participants of the given challenges.
func (r *implRepository) buildParticipantsQuery(ids []int64) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(
		`SELECT challenge_id, user_id FROM challenge_participants WHERE challenge_id IN (%s) ORDER BY joined_at, user_id`,
		strings.Join(placeholders, ", "),
	)
	return query, args
}
