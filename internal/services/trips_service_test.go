package services

import (
	"testing"
	"time"

	"tripmate/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestClampPostLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 6},
		{-3, 6},
		{6, 6},
		{1, 1},
		{24, 24},
		{500, 24},
	}
	for _, tc := range cases {
		if got := ClampPostLimit(tc.in); got != tc.want {
			t.Fatalf("ClampPostLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestListPostsMapsTripsToFeedShape(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("information_schema\\.tables").WithArgs("trips").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("trips"))
	mock.ExpectQuery("FROM trips").WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "from_city", "to_city", "travel_date", "travel_time",
			"creator_name", "status", "current_participants", "max_participants", "created_at",
		}).AddRow(1, "Goa Trip", "Pune", "Goa", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), "08:00", "Ananya", "active", 2, 4, now))

	svc := TripsService{Repo: repositories.TripRepository{DB: db}}
	posts, err := svc.ListPosts(0) // zero falls back to the default limit
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(posts))
	}

	p := posts[0]
	if p.FromCity != "Pune" || p.ToCity != "Goa" {
		t.Fatalf("cities = %q/%q", p.FromCity, p.ToCity)
	}
	if p.Date != "2025-10-01" {
		t.Fatalf("date = %q", p.Date)
	}
	if p.Creator.Name != "Ananya" {
		t.Fatalf("creator = %q", p.Creator.Name)
	}
	if p.CurrentParticipants != 2 || p.MaxParticipants != 4 {
		t.Fatalf("participants = %d/%d", p.CurrentParticipants, p.MaxParticipants)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPostsEmptyStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("trips").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	svc := TripsService{Repo: repositories.TripRepository{DB: db}}
	posts, err := svc.ListPosts(6)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Fatalf("posts = %#v, want empty slice", posts)
	}
}
