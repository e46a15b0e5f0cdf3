package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"grindlock/internal/modules/progress/domain"
	progressout "grindlock/internal/modules/progress/port/out"
	apperrors "grindlock/internal/platform/errors"
)

const (
	sessionCookie = "LEETCODE_SESSION"

	recentAcceptedQuery = `query recentAcSubmissions($username: String!, $limit: Int!) {
  recentAcSubmissionList(username: $username, limit: $limit) {
    titleSlug
    timestamp
  }
}`

	userStatusQuery = `query userStatus {
  userStatus {
    username
    isSignedIn
  }
}`
)

// LeetCodeClient reads accepted submissions over the provider's GraphQL
// endpoint. Every failure mode (transport, auth, malformed payload) is
// reported as ErrProviderUnavailable: callers must not guess progress.
type LeetCodeClient struct {
	baseURL     string
	username    string
	credentials progressout.CredentialStore
	httpClient  *http.Client
}

func NewLeetCodeClient(baseURL, username string, credentials progressout.CredentialStore) *LeetCodeClient {
	return &LeetCodeClient{
		baseURL:     baseURL,
		username:    username,
		credentials: credentials,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

var _ progressout.SubmissionSource = (*LeetCodeClient)(nil)

func (c *LeetCodeClient) RecentAccepted(ctx context.Context, limit int) ([]domain.Submission, error) {
	token, err := c.credentials.SessionToken()
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", apperrors.ErrProviderUnavailable)
	}

	username := c.username
	if username == "" {
		username, err = c.signedInUsername(ctx, token)
		if err != nil {
			return nil, err
		}
	}

	var payload struct {
		Data struct {
			RecentAcSubmissionList []struct {
				TitleSlug string `json:"titleSlug"`
				Timestamp string `json:"timestamp"`
			} `json:"recentAcSubmissionList"`
		} `json:"data"`
	}
	err = c.query(ctx, token, recentAcceptedQuery, map[string]any{
		"username": username,
		"limit":    limit,
	}, &payload)
	if err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(payload.Data.RecentAcSubmissionList))
	for _, item := range payload.Data.RecentAcSubmissionList {
		seconds, err := strconv.ParseInt(item.Timestamp, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("submission timestamp %q: %w", item.Timestamp, apperrors.ErrProviderUnavailable)
		}
		submissions = append(submissions, domain.Submission{
			TitleSlug:  item.TitleSlug,
			AcceptedAt: time.Unix(seconds, 0),
		})
	}
	return submissions, nil
}

func (c *LeetCodeClient) signedInUsername(ctx context.Context, token string) (string, error) {
	var payload struct {
		Data struct {
			UserStatus struct {
				Username   string `json:"username"`
				IsSignedIn bool   `json:"isSignedIn"`
			} `json:"userStatus"`
		} `json:"data"`
	}
	if err := c.query(ctx, token, userStatusQuery, nil, &payload); err != nil {
		return "", err
	}
	if !payload.Data.UserStatus.IsSignedIn || payload.Data.UserStatus.Username == "" {
		return "", fmt.Errorf("session not signed in: %w", apperrors.ErrProviderUnavailable)
	}
	return payload.Data.UserStatus.Username, nil
}

func (c *LeetCodeClient) query(ctx context.Context, token, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("encode query: %w", apperrors.ErrProviderUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", apperrors.ErrProviderUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", c.baseURL)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("query provider: %w", apperrors.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned %d: %w", resp.StatusCode, apperrors.ErrProviderUnavailable)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", apperrors.ErrProviderUnavailable)
	}
	return nil
}
