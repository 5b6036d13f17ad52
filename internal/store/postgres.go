package store

import (
	"database/sql"
	"fmt"

	"github.com/gulla0/ai-tweet-generator/pkg/models"
)

// PostgresStore backs both collections with PostgreSQL tables. Unlike the
// JSON backend it mutates rows in place, but the interface semantics are
// identical.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed store over an open connection
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Transcripts returns the transcript collection view of the store
func (s *PostgresStore) Transcripts() TranscriptStore { return &pgTranscripts{db: s.db} }

// Tweets returns the tweet collection view of the store
func (s *PostgresStore) Tweets() TweetStore { return &pgTweets{db: s.db} }

type pgTranscripts struct {
	db *sql.DB
}

const transcriptColumns = `id, title, date, content, generation_status, created_at`

func (p *pgTranscripts) ListAll() ([]models.Transcript, error) {
	rows, err := p.db.Query(`
		SELECT ` + transcriptColumns + `
		FROM transcripts
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: list transcripts: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var transcripts []models.Transcript
	for rows.Next() {
		var t models.Transcript
		if err := rows.Scan(&t.ID, &t.Title, &t.Date, &t.Content, &t.GenerationStatus, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan transcript: %v", ErrUnavailable, err)
		}
		transcripts = append(transcripts, t)
	}
	if transcripts == nil {
		transcripts = []models.Transcript{}
	}
	return transcripts, rows.Err()
}

func (p *pgTranscripts) GetByID(id string) (*models.Transcript, error) {
	var t models.Transcript
	err := p.db.QueryRow(`
		SELECT `+transcriptColumns+`
		FROM transcripts
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Title, &t.Date, &t.Content, &t.GenerationStatus, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get transcript: %v", ErrUnavailable, err)
	}
	return &t, nil
}

func (p *pgTranscripts) Append(t models.Transcript) error {
	_, err := p.db.Exec(`
		INSERT INTO transcripts (id, title, date, content, generation_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.ID, t.Title, t.Date, t.Content, t.GenerationStatus, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: insert transcript: %v", ErrUnavailable, err)
	}
	return nil
}

func (p *pgTranscripts) Replace(id string, t models.Transcript) (bool, error) {
	res, err := p.db.Exec(`
		UPDATE transcripts
		SET title = $2, date = $3, content = $4, generation_status = $5
		WHERE id = $1
	`, id, t.Title, t.Date, t.Content, t.GenerationStatus)
	if err != nil {
		return false, fmt.Errorf("%w: update transcript: %v", ErrUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: update transcript: %v", ErrUnavailable, err)
	}
	return affected > 0, nil
}

type pgTweets struct {
	db *sql.DB
}

const tweetColumns = `id, transcript_id, category, content, state, created_at, updated_at, x_post_id`

func scanTweet(scan func(dest ...any) error) (models.Tweet, error) {
	var t models.Tweet
	var updatedAt sql.NullTime
	var xPostID sql.NullString
	if err := scan(&t.ID, &t.TranscriptID, &t.Category, &t.Content, &t.State, &t.CreatedAt, &updatedAt, &xPostID); err != nil {
		return models.Tweet{}, err
	}
	if updatedAt.Valid {
		t.UpdatedAt = &updatedAt.Time
	}
	if xPostID.Valid {
		t.XPostID = xPostID.String
	}
	return t, nil
}

func (p *pgTweets) ListAll() ([]models.Tweet, error) {
	return p.list(`
		SELECT `+tweetColumns+`
		FROM tweets
		ORDER BY created_at, id
	`)
}

func (p *pgTweets) ListByTranscript(transcriptID string) ([]models.Tweet, error) {
	return p.list(`
		SELECT `+tweetColumns+`
		FROM tweets
		WHERE transcript_id = $1
		ORDER BY created_at, id
	`, transcriptID)
}

func (p *pgTweets) list(query string, args ...any) ([]models.Tweet, error) {
	rows, err := p.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list tweets: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	tweets := []models.Tweet{}
	for rows.Next() {
		t, err := scanTweet(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scan tweet: %v", ErrUnavailable, err)
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}

func (p *pgTweets) GetByID(id string) (*models.Tweet, error) {
	row := p.db.QueryRow(`
		SELECT `+tweetColumns+`
		FROM tweets
		WHERE id = $1
	`, id)
	t, err := scanTweet(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get tweet: %v", ErrUnavailable, err)
	}
	return &t, nil
}

func (p *pgTweets) Append(t models.Tweet) error {
	var xPostID any
	if t.XPostID != "" {
		xPostID = t.XPostID
	}
	_, err := p.db.Exec(`
		INSERT INTO tweets (id, transcript_id, category, content, state, created_at, updated_at, x_post_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, t.ID, t.TranscriptID, t.Category, t.Content, t.State, t.CreatedAt, t.UpdatedAt, xPostID)
	if err != nil {
		return fmt.Errorf("%w: insert tweet: %v", ErrUnavailable, err)
	}
	return nil
}

func (p *pgTweets) Replace(id string, t models.Tweet) (bool, error) {
	var xPostID any
	if t.XPostID != "" {
		xPostID = t.XPostID
	}
	res, err := p.db.Exec(`
		UPDATE tweets
		SET category = $2, content = $3, state = $4, updated_at = $5, x_post_id = $6
		WHERE id = $1
	`, id, t.Category, t.Content, t.State, t.UpdatedAt, xPostID)
	if err != nil {
		return false, fmt.Errorf("%w: update tweet: %v", ErrUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: update tweet: %v", ErrUnavailable, err)
	}
	return affected > 0, nil
}

func (p *pgTweets) RemoveByID(id string) (bool, error) {
	res, err := p.db.Exec(`DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("%w: delete tweet: %v", ErrUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: delete tweet: %v", ErrUnavailable, err)
	}
	return affected > 0, nil
}
