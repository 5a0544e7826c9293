package pokemontcg

import (
	"net/http"
	"testing"
	"time"
)

func TestNormalizeBaseURL(t *testing.T) {
	if got := normalizeBaseURL(""); got != defaultBaseURL {
		t.Fatalf("expected default base URL, got %s", got)
	}
	if got := normalizeBaseURL("http://example.com/"); got != "http://example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
}

func TestResolvePageSize(t *testing.T) {
	if got := resolvePageSize(0); got != defaultPageSize {
		t.Fatalf("expected default page size, got %d", got)
	}
	if got := resolvePageSize(500); got != defaultPageSize {
		t.Fatalf("expected oversize clamped to default, got %d", got)
	}
	if got := resolvePageSize(50); got != 50 {
		t.Fatalf("expected explicit page size kept, got %d", got)
	}
}

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	doer := resolveHTTPClient(nil)
	client, ok := doer.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", doer)
	}
	if client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %v", client.Timeout)
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("5"); got != 5*time.Second {
		t.Fatalf("expected 5s, got %v", got)
	}
	if got := parseRetryAfter(""); got != 0 {
		t.Fatalf("expected zero for empty header, got %v", got)
	}
	if got := parseRetryAfter("garbage"); got != 0 {
		t.Fatalf("expected zero for unparseable header, got %v", got)
	}
	future := time.Now().Add(30 * time.Second).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(future); got <= 0 || got > 31*time.Second {
		t.Fatalf("expected near-30s delay from HTTP date, got %v", got)
	}
}

func TestLastPage(t *testing.T) {
	cases := []struct {
		name                                     string
		page, received, count, totalCount, psize int
		want                                     bool
	}{
		{"empty page", 1, 0, 0, 100, 250, true},
		{"mid pagination", 1, 250, 250, 600, 250, false},
		{"final page by total", 3, 100, 250, 600, 250, true},
		{"short page without totals", 1, 10, 0, 0, 250, true},
		{"full page without totals", 1, 250, 0, 0, 250, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := lastPage(tc.page, tc.received, tc.count, tc.totalCount, tc.psize)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
