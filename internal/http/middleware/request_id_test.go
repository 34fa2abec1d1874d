package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestIDRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		*seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequestIDPassthrough(t *testing.T) {
	var seen string
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-77")
	requestIDRouter(&seen).ServeHTTP(w, req)

	if seen != "upstream-77" {
		t.Fatalf("handler saw %q, want the supplied id", seen)
	}
	if got := w.Header().Get("X-Request-ID"); got != "upstream-77" {
		t.Fatalf("response header = %q, want the supplied id echoed", got)
	}
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	var seen string
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	requestIDRouter(&seen).ServeHTTP(w, req)

	if seen == "" {
		t.Fatal("an id should be generated when the client sends none")
	}
	if got := w.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("response header = %q, handler saw %q; they must match", got, seen)
	}
}

func TestRequestIDsDiffer(t *testing.T) {
	var first, second string

	w := httptest.NewRecorder()
	requestIDRouter(&first).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	w = httptest.NewRecorder()
	requestIDRouter(&second).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if first == second {
		t.Fatalf("two requests got the same generated id %q", first)
	}
}

func TestGetRequestIDOutsideMiddleware(t *testing.T) {
	if got := GetRequestID(nil); got != "" {
		t.Fatalf("nil context should yield empty id, got %q", got)
	}

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := GetRequestID(c); got != "" {
		t.Fatalf("context without middleware should yield empty id, got %q", got)
	}
}
