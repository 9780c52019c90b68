// Package remote is a small PostgREST client for the bhava sync backend.
// It knows three tables: app_users, mood_entries and badge_progress.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/bhava-app/bhava/internal/domain"
)

const restPrefix = "/rest/v1"

// Client talks to the backend's REST endpoint.
type Client struct {
	client *resty.Client
}

// New creates a client for baseURL authenticated with the anon apiKey.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+restPrefix).
		SetHeader("Content-Type", "application/json").
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey).
		SetTimeout(timeout)

	return &Client{client: c}
}

// MoodEntry is one row of mood_entries.
type MoodEntry struct {
	UserID    string    `json:"user_id"`
	Emotion   string    `json:"emotion"`
	Intensity int       `json:"intensity"`
	CreatedAt time.Time `json:"created_at"`
}

type badgeRow struct {
	UserID    string `json:"user_id"`
	BadgeName string `json:"badge_name"`
	Level     int    `json:"level"`
}

// Stats are the backend-wide row counts.
type Stats struct {
	TotalUsers int `json:"totalUsers"`
	TotalMoods int `json:"totalMoods"`
}

// ─── app_users ──────────────────────────────────────────────────────────────

// CreateUser inserts an anonymous user and returns its server-assigned id.
func (c *Client) CreateUser(ctx context.Context, now time.Time) (string, error) {
	var rows []struct {
		ID string `json:"id"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("select", "id").
		SetBody([]map[string]any{{
			"streak_count": 0,
			"last_active":  now.UTC().Format(time.RFC3339Nano),
		}}).
		SetResult(&rows).
		Post("/app_users")
	if err := check(resp, err, "create user"); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("create user: %w: empty response", domain.ErrRemoteRejected)
	}
	id, err := uuid.Parse(rows[0].ID)
	if err != nil {
		return "", fmt.Errorf("create user: %w: invalid id %q", domain.ErrRemoteRejected, rows[0].ID)
	}
	return id.String(), nil
}

// TouchUser updates a user's last_active timestamp.
func (c *Client) TouchUser(ctx context.Context, userID string, now time.Time) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+userID).
		SetBody(map[string]any{"last_active": now.UTC().Format(time.RFC3339Nano)}).
		Patch("/app_users")
	return check(resp, err, "touch user")
}

// UpdateStreak stores the user's current streak and last_active.
func (c *Client) UpdateStreak(ctx context.Context, userID string, streak int, now time.Time) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+userID).
		SetBody(map[string]any{
			"streak_count": streak,
			"last_active":  now.UTC().Format(time.RFC3339Nano),
		}).
		Patch("/app_users")
	return check(resp, err, "update streak")
}

// ─── mood_entries ───────────────────────────────────────────────────────────

// InsertMoodEntry appends one mood entry.
func (c *Client) InsertMoodEntry(ctx context.Context, e MoodEntry) error {
	e.CreatedAt = e.CreatedAt.UTC()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody([]MoodEntry{e}).
		Post("/mood_entries")
	return check(resp, err, "insert mood entry")
}

// ─── badge_progress ─────────────────────────────────────────────────────────

// ListBadgeNames returns the badge names already recorded for userID.
func (c *Client) ListBadgeNames(ctx context.Context, userID string) ([]string, error) {
	var rows []badgeRow
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"select":  "badge_name",
			"user_id": "eq." + userID,
		}).
		SetResult(&rows).
		Get("/badge_progress")
	if err := check(resp, err, "list badges"); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.BadgeName)
	}
	return names, nil
}

// InsertBadges records names for userID at level 1. An empty list is a no-op.
func (c *Client) InsertBadges(ctx context.Context, userID string, names []string) error {
	if len(names) == 0 {
		return nil
	}
	rows := make([]badgeRow, len(names))
	for i, n := range names {
		rows[i] = badgeRow{UserID: userID, BadgeName: n, Level: 1}
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(rows).
		Post("/badge_progress")
	return check(resp, err, "insert badges")
}

// ─── Stats ──────────────────────────────────────────────────────────────────

// Stats counts users and mood entries.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	users, err := c.count(ctx, "app_users")
	if err != nil {
		return Stats{}, err
	}
	moods, err := c.count(ctx, "mood_entries")
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalUsers: users, TotalMoods: moods}, nil
}

// Ping checks that the REST endpoint answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.count(ctx, "app_users")
	return err
}

func (c *Client) count(ctx context.Context, table string) (int, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "count=exact").
		SetQueryParam("select", "id").
		Head("/" + table)
	if err := check(resp, err, "count "+table); err != nil {
		return 0, err
	}
	return parseContentRange(resp.Header().Get("Content-Range"))
}

// parseContentRange extracts the total from a "0-24/123" or "*/123" header.
// A "*" total counts as zero.
func parseContentRange(h string) (int, error) {
	_, total, ok := strings.Cut(h, "/")
	if !ok {
		return 0, fmt.Errorf("%w: missing count in content-range %q", domain.ErrRemoteRejected, h)
	}
	if total == "*" {
		return 0, nil
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("%w: bad count in content-range %q", domain.ErrRemoteRejected, h)
	}
	return n, nil
}

// check maps transport errors to ErrRemoteUnavailable and non-2xx
// responses to ErrRemoteRejected.
func check(resp *resty.Response, err error, op string) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w: %w", op, domain.ErrRemoteUnavailable, err)
		}
		return fmt.Errorf("%s: %w: %v", op, domain.ErrRemoteUnavailable, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("%s: %w: status %d: %s", op, domain.ErrRemoteRejected, resp.StatusCode(), resp.String())
	}
	return nil
}
