package repositories

import (
	"fmt"
	"testing"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id=").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := TripRepository{DB: db}
	_, err = repo.GetByID(42, false)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGenerateTripNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	year := time.Now().UTC().Year()
	prefix := fmt.Sprintf("TR-%d-", year)

	mock.ExpectQuery("SELECT trip_number FROM trips").WithArgs(prefix + "%").
		WillReturnRows(sqlmock.NewRows([]string{"trip_number"}).AddRow(prefix + "007"))

	repo := TripRepository{DB: db}
	got, err := repo.GenerateTripNumber()
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if want := prefix + "008"; got != want {
		t.Fatalf("trip number = %q, want %q", got, want)
	}
}

func TestGenerateTripNumberFirstOfYear(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	year := time.Now().UTC().Year()
	prefix := fmt.Sprintf("TR-%d-", year)

	mock.ExpectQuery("SELECT trip_number FROM trips").WithArgs(prefix + "%").
		WillReturnRows(sqlmock.NewRows([]string{"trip_number"}))

	repo := TripRepository{DB: db}
	got, err := repo.GenerateTripNumber()
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if want := prefix + "001"; got != want {
		t.Fatalf("trip number = %q, want %q", got, want)
	}
}

func TestUpdateReplacesChildRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE trips SET").WillReturnResult(sqlmock.NewResult(0, 1))
	for _, table := range []string{
		"trip_programs", "trip_transport_legs", "trip_accommodations",
		"trip_guides", "trip_expenses", "trip_optional_tours",
	} {
		mock.ExpectExec("DELETE FROM " + table).WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("INSERT INTO trip_programs").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO trip_expenses").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	trip := models.Trip{
		ID:        5,
		TripName:  "Nile Classic",
		TripType:  models.TripDomestic,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Programs: []models.ProgramDay{
			{DayNumber: 1, Visits: "Pyramids", VisitsCost: 50, ParticipantCount: 10, PassengerClass: models.PassengerAdult},
		},
		Expenses: []models.Expense{
			{Category: "permits", Description: "Site permits", Amount: 300},
		},
	}

	repo := TripRepository{DB: db}
	if err := repo.Update(&trip); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if trip.Programs[0].TripID != 5 || trip.Expenses[0].TripID != 5 {
		t.Fatalf("child trip ids not set: %+v", trip)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	trip := models.Trip{TripName: "Red Sea Escape", TripType: models.TripDomestic}
	repo := TripRepository{DB: db}
	if err := repo.Create(&trip); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if trip.ID != 9 {
		t.Fatalf("trip id = %d, want 9", trip.ID)
	}
}

func TestDeleteLockedTripRefused(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "trip_number", "trip_name", "start_destination", "end_destination", "trip_type", "description",
		"start_date", "end_date", "adult_count", "child_count", "total_capacity",
		"profit_margin_percent", "selling_price_per_person", "expected_revenue",
		"expected_profit", "actual_profit_margin_percent", "is_locked_for_trips",
		"created_by", "created_at", "updated_by", "updated_at",
	}).AddRow(
		3, "TR-2026-001", "Luxor Heritage", "Cairo", "Luxor", "domestic", "",
		time.Now(), time.Now(), 40, 10, 50,
		20.0, 0.0, 0.0,
		0.0, 0.0, true,
		0, time.Now(), 0, time.Now(),
	)
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id=").WithArgs(int64(3)).WillReturnRows(rows)

	repo := TripRepository{DB: db}
	err = repo.Delete(3)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
