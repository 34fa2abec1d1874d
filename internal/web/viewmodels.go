package web

// StatusCategory drives badge styling only, never business logic.
type StatusCategory string

const (
	StatusActive StatusCategory = "active"
	StatusFull   StatusCategory = "full"
	StatusOther  StatusCategory = "other"
)

// TripViewModel is a display-safe trip card. Every field is populated;
// templates never need a nil check or a fallback of their own.
type TripViewModel struct {
	Key         string
	Title       string
	FromCity    string
	ToCity      string
	Date        string
	Time        string
	CreatorName string
	Status      string
	Category    StatusCategory
	Current     int
	Max         int
}

// FeedState is the tri-state the renderer sees: pending, loaded-but-empty,
// or populated. Trips is always a slice, never nil.
type FeedState struct {
	Loading bool
	Trips   []TripViewModel
}

// LoadingFeed is the pending state. Full-page renders resolve the fetch
// before rendering and never pass it, but the renderer stays total over
// all three states so a polled or partial render can reuse it as-is.
func LoadingFeed() FeedState {
	return FeedState{Loading: true, Trips: []TripViewModel{}}
}

func LoadedFeed(trips []TripViewModel) FeedState {
	if trips == nil {
		trips = []TripViewModel{}
	}
	return FeedState{Trips: trips}
}

// Empty reports loaded-with-nothing, distinct from still loading.
func (s FeedState) Empty() bool {
	return !s.Loading && len(s.Trips) == 0
}
