package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"tripmate/internal/http/middleware"
	"tripmate/internal/repositories"
	"tripmate/internal/tripsfeed"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

// Handlers serves the rendered marketing pages. The recent-trips section is
// fed over HTTP through the posts feed, even when the feed lives in the same
// process, so the page depends only on the feed contract.
type Handlers struct {
	FeedBase   string
	HTTPClient *http.Client
	Repo       repositories.TripRepository
}

func (h Handlers) feed(c *gin.Context) tripsfeed.Client {
	client := tripsfeed.NewClient(h.FeedBase)
	client.HTTPClient = h.HTTPClient
	client.RequestID = middleware.GetRequestID(c)
	return client
}

// Home renders the landing page. The feed fetch is bound to the request
// context: if the visitor disconnects mid-fetch the transport aborts and
// the late result is discarded, nothing is rendered from it.
func (h Handlers) Home(c *gin.Context) {
	result := h.feed(c).Recent(c.Request.Context())
	feed := LoadedFeed(NormalizeTrips(result.Posts))
	renderPage(c, http.StatusOK, LandingPage(feed, today()))
}

// SearchSubmit turns the search form into a shareable listing URL. Only
// filled-in fields survive into the query string.
func (h Handlers) SearchSubmit(c *gin.Context) {
	filters := ParseSearchFilters(c.Request.URL.Query())
	c.Redirect(http.StatusSeeOther, filters.ListingURL())
}

// Posts renders the listing page behind the search form.
func (h Handlers) Posts(c *gin.Context) {
	filters := ParseSearchFilters(c.Request.URL.Query())
	result := h.feed(c).Recent(c.Request.Context())
	trips := filterTrips(NormalizeTrips(result.Posts), filters)
	renderPage(c, http.StatusOK, PostsPage(LoadedFeed(trips), filters, today()))
}

// TripDetail shows one trip straight from the store.
func (h Handlers) TripDetail(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		renderPage(c, http.StatusNotFound, NotFoundPage())
		return
	}

	trip, err := h.Repo.GetByID(id)
	if err != nil {
		renderPage(c, http.StatusNotFound, NotFoundPage())
		return
	}
	renderPage(c, http.StatusOK, TripDetailPage(ViewModelFromTrip(trip)))
}

func (h Handlers) NewTrip(c *gin.Context) {
	renderPage(c, http.StatusOK, NewTripPage())
}

func (h Handlers) Signup(c *gin.Context) {
	renderPage(c, http.StatusOK, SignupPage())
}

func (h Handlers) NotFound(c *gin.Context) {
	renderPage(c, http.StatusNotFound, NotFoundPage())
}

// filterTrips narrows the listing by city, case-insensitively. Date stays a
// display concern; the feed is small enough that this runs on the page.
func filterTrips(trips []TripViewModel, f SearchFilters) []TripViewModel {
	if f.FromCity == "" && f.ToCity == "" {
		return trips
	}
	out := []TripViewModel{}
	for _, t := range trips {
		if f.FromCity != "" && !strings.EqualFold(t.FromCity, f.FromCity) {
			continue
		}
		if f.ToCity != "" && !strings.EqualFold(t.ToCity, f.ToCity) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func renderPage(c *gin.Context, status int, page g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	_ = page.Render(c.Writer)
}

func today() string {
	return time.Now().Format("2006-01-02")
}
