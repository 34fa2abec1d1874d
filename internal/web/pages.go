package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PostsPage lists trips matching the visitor's search, or everything recent.
func PostsPage(feed FeedState, filters SearchFilters, minDate string) g.Node {
	return Layout(
		"Trips — TripMate",
		Div(
			Class("section container"),
			H1(g.Text(postsHeading(filters))),
			SearchForm(filters, minDate),
		),
		Div(
			Class("section container"),
			recentTripsListing(feed),
		),
	)
}

func postsHeading(f SearchFilters) string {
	switch {
	case f.FromCity != "" && f.ToCity != "":
		return "Trips from " + f.FromCity + " to " + f.ToCity
	case f.FromCity != "":
		return "Trips from " + f.FromCity
	case f.ToCity != "":
		return "Trips to " + f.ToCity
	default:
		return "All trips"
	}
}

func recentTripsListing(feed FeedState) g.Node {
	if feed.Empty() {
		return P(
			Class("muted"),
			g.Text("No trips match right now. Try widening your search or "),
			A(Href("/trips/new"), g.Text("post your own")),
			g.Text("."),
		)
	}
	return TripGrid(feed.Trips)
}

// TripDetailPage shows one trip card at full width.
func TripDetailPage(vm TripViewModel) g.Node {
	return Layout(
		vm.Title+" — TripMate",
		Div(
			Class("section container"),
			H1(g.Text(vm.Title)),
			Div(
				Class("card"),
				P(g.Text(vm.FromCity+" → "+vm.ToCity)),
				P(Class("muted"), g.Text(vm.Date+" · "+vm.Time)),
				P(Class("muted"), g.Text("Posted by "+vm.CreatorName)),
				P(
					Span(Class("badge "+statusBadgeClass(vm.Category)), g.Text(vm.Status)),
					g.Text(" "+vm.Seats()),
				),
				P(A(Class("btn"), Href("/signup"), g.Text("Join this trip"))),
			),
			P(A(Href("/posts"), g.Text("← Back to all trips"))),
		),
	)
}

// NewTripPage and SignupPage are thin marketing surfaces; the actual flows
// live in the main application.
func NewTripPage() g.Node {
	return Layout(
		"Post a trip — TripMate",
		Div(
			Class("section container"),
			H1(g.Text("Post a trip")),
			P(Class("muted"), g.Text("Tell fellow travellers where you are going. You need an account to post.")),
			P(A(Class("btn"), Href("/signup"), g.Text("Sign up to continue"))),
		),
	)
}

func SignupPage() g.Node {
	return Layout(
		"Sign up — TripMate",
		Div(
			Class("section container"),
			H1(g.Text("Create your account")),
			P(Class("muted"), g.Text("Signing up takes a minute. Post trips, join rides, and message companions.")),
			P(A(Class("btn"), Href("/app/register"), g.Text("Continue to registration"))),
		),
	)
}

func NotFoundPage() g.Node {
	return Layout(
		"Not found — TripMate",
		Div(
			Class("section container"),
			H1(g.Text("Page not found")),
			P(Class("muted"), g.Text("The page you are looking for does not exist.")),
			P(A(Class("btn btn-outline"), Href("/"), g.Text("Back to the front page"))),
		),
	)
}
