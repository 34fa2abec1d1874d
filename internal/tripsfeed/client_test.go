package tripsfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func feedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/posts" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "6" {
			t.Errorf("limit = %q, want 6", got)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRecentSuccess(t *testing.T) {
	srv := feedServer(t, http.StatusOK, `{"posts":[{"title":"Goa Trip","from":"Pune","to":"Goa"}]}`)

	res := NewClient(srv.URL).Recent(context.Background())
	if res.Err != nil {
		t.Fatalf("unexpected err: %v", res.Err)
	}
	if len(res.Posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(res.Posts))
	}
	p := res.Posts[0]
	if p.Title == nil || *p.Title != "Goa Trip" {
		t.Fatalf("title = %v", p.Title)
	}
	if origin, ok := p.Origin(); !ok || origin != "Pune" {
		t.Fatalf("origin = %q/%v", origin, ok)
	}
}

func TestRecentMissingPostsField(t *testing.T) {
	for _, body := range []string{`{}`, `{"posts":null}`, `{"other":1}`} {
		srv := feedServer(t, http.StatusOK, body)
		res := NewClient(srv.URL).Recent(context.Background())
		if res.Err != nil {
			t.Fatalf("body %q: absent posts is not an error, got %v", body, res.Err)
		}
		if res.Posts == nil || len(res.Posts) != 0 {
			t.Fatalf("body %q: posts = %#v, want empty slice", body, res.Posts)
		}
	}
}

func TestRecentNonArrayPosts(t *testing.T) {
	for _, body := range []string{`{"posts":"nope"}`, `{"posts":{"a":1}}`, `{"posts":42}`} {
		srv := feedServer(t, http.StatusOK, body)
		res := NewClient(srv.URL).Recent(context.Background())
		if res.Posts == nil || len(res.Posts) != 0 {
			t.Fatalf("body %q: posts = %#v, want empty slice", body, res.Posts)
		}
	}
}

func TestRecentMalformedBody(t *testing.T) {
	srv := feedServer(t, http.StatusOK, `{"posts": [ broken`)
	res := NewClient(srv.URL).Recent(context.Background())
	if res.Err == nil {
		t.Fatal("malformed body should be recorded in Err")
	}
	if res.Posts == nil || len(res.Posts) != 0 {
		t.Fatalf("posts = %#v, want empty slice", res.Posts)
	}
}

func TestRecentServerError(t *testing.T) {
	srv := feedServer(t, http.StatusInternalServerError, `boom`)
	res := NewClient(srv.URL).Recent(context.Background())
	if res.Err == nil {
		t.Fatal("non-2xx should be recorded in Err")
	}
	if res.Posts == nil || len(res.Posts) != 0 {
		t.Fatalf("posts = %#v, want empty slice", res.Posts)
	}
}

func TestRecentTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	res := NewClient(srv.URL).Recent(context.Background())
	if res.Err == nil {
		t.Fatal("transport failure should be recorded in Err")
	}
	if res.Posts == nil || len(res.Posts) != 0 {
		t.Fatalf("posts = %#v, want empty slice", res.Posts)
	}
}

func TestRecentCancelledBeforeResponse(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"posts":[{"title":"late"}]}`))
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan FeedResult, 1)
	go func() {
		done <- NewClient(srv.URL).Recent(ctx)
	}()

	cancel()

	select {
	case res := <-done:
		// The request owner is gone; whatever arrives later is dropped.
		if len(res.Posts) != 0 {
			t.Fatalf("cancelled fetch leaked posts: %#v", res.Posts)
		}
		if res.Err == nil {
			t.Fatal("cancelled fetch should record the context error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled fetch did not return promptly")
	}
}
