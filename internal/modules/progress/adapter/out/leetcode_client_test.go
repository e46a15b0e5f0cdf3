package out_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grindlock/internal/modules/progress/adapter/out"
	apperrors "grindlock/internal/platform/errors"
)

type fakeCredentials struct {
	token string
	err   error
}

func (f *fakeCredentials) SessionToken() (string, error) {
	return f.token, f.err
}

func (f *fakeCredentials) SetSessionToken(token string) error {
	f.token = token
	return nil
}

func TestRecentAcceptedParsesSubmissions(t *testing.T) {
	t.Parallel()
	var gotCookie string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("LEETCODE_SESSION"); err == nil {
			gotCookie = cookie.Value
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"data":{"recentAcSubmissionList":[
			{"titleSlug":"two-sum","timestamp":"1767772800"},
			{"titleSlug":"3sum","timestamp":"1767686400"}
		]}}`))
	}))
	defer server.Close()

	client := out.NewLeetCodeClient(server.URL, "grinder", &fakeCredentials{token: "s3ss10n"})
	submissions, err := client.RecentAccepted(context.Background(), 50)
	if err != nil {
		t.Fatalf("recent accepted: %v", err)
	}
	if len(submissions) != 2 || submissions[0].TitleSlug != "two-sum" {
		t.Fatalf("submissions: %+v", submissions)
	}
	if submissions[0].AcceptedAt.Unix() != 1767772800 {
		t.Fatalf("timestamp: %v", submissions[0].AcceptedAt)
	}
	if gotCookie != "s3ss10n" {
		t.Fatalf("session cookie not sent, got %q", gotCookie)
	}
	variables, _ := gotBody["variables"].(map[string]any)
	if variables["username"] != "grinder" {
		t.Fatalf("username not forwarded: %v", gotBody)
	}
}

func TestRecentAcceptedResolvesUsernameWhenUnset(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query string `json:"query"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Query == "" {
			t.Error("empty query")
		}
		if strings.Contains(body.Query, "userStatus") {
			_, _ = w.Write([]byte(`{"data":{"userStatus":{"username":"autodetected","isSignedIn":true}}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"recentAcSubmissionList":[]}}`))
	}))
	defer server.Close()

	client := out.NewLeetCodeClient(server.URL, "", &fakeCredentials{token: "tok"})
	if _, err := client.RecentAccepted(context.Background(), 10); err != nil {
		t.Fatalf("recent accepted: %v", err)
	}
}

func TestRecentAcceptedWrapsServerErrors(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := out.NewLeetCodeClient(server.URL, "grinder", &fakeCredentials{token: "expired"})
	_, err := client.RecentAccepted(context.Background(), 10)
	if !errors.Is(err, apperrors.ErrProviderUnavailable) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
}

func TestRecentAcceptedWrapsMissingCredentials(t *testing.T) {
	t.Parallel()
	client := out.NewLeetCodeClient("http://unused.invalid", "grinder", &fakeCredentials{err: apperrors.ErrNoCredentials})
	_, err := client.RecentAccepted(context.Background(), 10)
	if !errors.Is(err, apperrors.ErrProviderUnavailable) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
}
