package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const baseStyles = `
:root { --ink: #1f2933; --accent: #0b7a67; --muted: #6b7a8a; --paper: #f7f9fa; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; color: var(--ink); background: var(--paper); }
a { color: var(--accent); text-decoration: none; }
.container { max-width: 960px; margin: 0 auto; padding: 0 1rem; }
.topbar { display: flex; justify-content: space-between; align-items: center; padding: 1rem; background: #fff; border-bottom: 1px solid #e3e8ee; }
.btn { display: inline-block; padding: 0.6rem 1.2rem; border-radius: 6px; background: var(--accent); color: #fff; border: 0; cursor: pointer; }
.btn-outline { background: transparent; color: var(--accent); border: 1px solid var(--accent); }
.hero { padding: 4rem 1rem; text-align: center; background: linear-gradient(160deg, #e6f4f1, #f7f9fa); }
.section { padding: 3rem 1rem; }
.grid { display: grid; gap: 1.25rem; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); }
.card { background: #fff; border: 1px solid #e3e8ee; border-radius: 8px; padding: 1.25rem; }
.card-placeholder { min-height: 140px; background: #eef2f5; border-radius: 8px; }
.muted { color: var(--muted); }
.badge { display: inline-block; padding: 0.15rem 0.6rem; border-radius: 999px; font-size: 0.8rem; }
.badge-active { background: #e2f5ee; color: #0b7a67; }
.badge-full { background: #fdecec; color: #b3261e; }
.badge-other { background: #eef2f5; color: #6b7a8a; }
.search-form { display: flex; flex-wrap: wrap; gap: 0.75rem; justify-content: center; }
.search-form input { padding: 0.55rem 0.8rem; border: 1px solid #cfd8e0; border-radius: 6px; }
.quote { font-style: italic; }
.footer { padding: 2rem 1rem; background: #1f2933; color: #cfd8e0; }
.footer a { color: #cfd8e0; }
`

// Layout wraps page content in the shared document shell.
func Layout(title string, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content("Find travel companions for your next trip.")),
				TitleEl(g.Text(title)),
				StyleEl(g.Raw(baseStyles)),
			),
			Body(
				Topbar(),
				Main(children...),
				PageFooter(),
			),
		),
	)
}

func Topbar() g.Node {
	return Header(
		Class("topbar"),
		A(Href("/"), Strong(g.Text("TripMate"))),
		Nav(
			A(Href("/posts"), g.Text("Browse trips")),
			g.Text(" · "),
			A(Href("/trips/new"), g.Text("Post a trip")),
			g.Text(" · "),
			A(Class("btn btn-outline"), Href("/signup"), g.Text("Sign up")),
		),
	)
}

func PageFooter() g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container"),
			P(g.Text("TripMate — travel together, spend less.")),
			P(
				A(Href("/posts"), g.Text("Trips")),
				g.Text(" · "),
				A(Href("/trips/new"), g.Text("Post a trip")),
				g.Text(" · "),
				A(Href("/signup"), g.Text("Sign up")),
			),
		),
	)
}
