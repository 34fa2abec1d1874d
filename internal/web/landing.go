package web

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type feature struct {
	Title       string
	Description string
}

type testimonial struct {
	Quote  string
	Author string
}

// LandingPage assembles the marketing front page.
func LandingPage(feed FeedState, minDate string) g.Node {
	return Layout(
		"TripMate — Find your travel companions",
		Hero(minDate),
		Features(),
		RecentTripsSection(feed),
		Testimonials(),
		CTA(),
	)
}

func Hero(minDate string) g.Node {
	return Div(
		Class("hero"),
		H1(g.Text("Travel together. Spend less.")),
		P(
			Class("muted"),
			g.Text("Share rides, split costs, and make friends on the road. Find people heading your way."),
		),
		SearchForm(SearchFilters{}, minDate),
	)
}

// SearchForm submits as a plain GET so the listing URL is shareable.
// Only filled-in fields end up in the query string.
func SearchForm(f SearchFilters, minDate string) g.Node {
	return Form(
		Class("search-form"),
		Action("/search"),
		Method("get"),
		Input(
			Type("text"),
			Name("fromCity"),
			Placeholder("From city"),
			Value(f.FromCity),
		),
		Input(
			Type("text"),
			Name("toCity"),
			Placeholder("To city"),
			Value(f.ToCity),
		),
		Input(
			Type("date"),
			Name("date"),
			Min(minDate),
			Value(f.Date),
		),
		Button(Class("btn"), Type("submit"), g.Text("Search trips")),
	)
}

func Features() g.Node {
	items := []feature{
		{"Post your trip", "Tell others where you are headed and when. Your trip shows up for everyone going the same way."},
		{"Find companions", "Search by route and date. See who is driving, who needs a seat, and how many spots are left."},
		{"Split the costs", "Fuel, tolls, tickets — agree up front and everyone pays their share."},
	}

	return Div(
		Class("section container"),
		H2(g.Text("How it works")),
		Div(
			Class("grid"),
			g.Group(g.Map(items, func(it feature) g.Node {
				return Div(
					Class("card"),
					H3(g.Text(it.Title)),
					P(Class("muted"), g.Text(it.Description)),
				)
			})),
		),
	)
}

// RecentTripsSection renders the tri-state feed: placeholders while pending,
// a friendly empty state, or the card grid.
func RecentTripsSection(feed FeedState) g.Node {
	return Div(
		ID("recent-trips"),
		Class("section container"),
		H2(g.Text("Recent trips")),
		recentTripsBody(feed),
		Div(
			A(Class("btn btn-outline"), Href("/posts"), g.Text("See all trips")),
		),
	)
}

func recentTripsBody(feed FeedState) g.Node {
	if feed.Loading {
		return Div(
			Class("grid"),
			Div(Class("card-placeholder")),
			Div(Class("card-placeholder")),
			Div(Class("card-placeholder")),
		)
	}
	if feed.Empty() {
		return P(
			Class("muted"),
			g.Text("No trips available right now. Be the first to "),
			A(Href("/trips/new"), g.Text("post one")),
			g.Text("."),
		)
	}
	return TripGrid(feed.Trips)
}

func TripGrid(trips []TripViewModel) g.Node {
	return Div(
		Class("grid"),
		g.Group(g.Map(trips, TripCard)),
	)
}

// TripCard renders one display-safe trip. The view model is fully
// defaulted, so there are no conditionals here beyond the status badge.
func TripCard(vm TripViewModel) g.Node {
	return Div(
		Class("card"),
		ID("trip-"+vm.Key),
		H3(A(Href("/trips/"+url.PathEscape(vm.Key)), g.Text(vm.Title))),
		P(g.Text(vm.FromCity + " → " + vm.ToCity)),
		P(Class("muted"), g.Text(vm.Date+" · "+vm.Time)),
		P(Class("muted"), g.Text("by "+vm.CreatorName)),
		P(
			Span(Class("badge "+statusBadgeClass(vm.Category)), g.Text(vm.Status)),
			g.Text(" "+vm.Seats()),
		),
	)
}

func statusBadgeClass(cat StatusCategory) string {
	switch cat {
	case StatusActive:
		return "badge-active"
	case StatusFull:
		return "badge-full"
	default:
		return "badge-other"
	}
}

func Testimonials() g.Node {
	items := []testimonial{
		{"Found two people for my Pune to Goa drive within a day. Fuel split three ways!", "Ananya, Pune"},
		{"I travel for work every month and never ride alone anymore.", "Marko, Zagreb"},
		{"Posted my trip in the morning, had company by lunch.", "Sofia, Lisbon"},
	}

	return Div(
		Class("section container"),
		H2(g.Text("What travellers say")),
		Div(
			Class("grid"),
			g.Group(g.Map(items, func(it testimonial) g.Node {
				return Div(
					Class("card"),
					P(Class("quote"), g.Text("“"+it.Quote+"”")),
					P(Class("muted"), g.Text("— "+it.Author)),
				)
			})),
		),
	)
}

func CTA() g.Node {
	return Div(
		Class("hero"),
		H2(g.Text("Ready to hit the road?")),
		P(Class("muted"), g.Text("Create an account and post your first trip in minutes.")),
		P(
			A(Class("btn"), Href("/signup"), g.Text("Sign up free")),
			g.Text(" "),
			A(Class("btn btn-outline"), Href("/trips/new"), g.Text("Post a trip")),
		),
	)
}
