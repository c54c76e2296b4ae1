package services

import (
	"testing"

	"backoffice/internal/repositories"
	"backoffice/internal/wizard"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSaveFromWizardAssignsTripNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("INSERT INTO trip_programs").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	sess, err := wizard.NewSession(nil, "")
	if err != nil {
		t.Fatalf("new session error: %v", err)
	}
	*sess.BasicInfo() = wizard.BasicInfoForm{
		TripName:         "Cairo Classic",
		StartDestination: "Cairo",
		EndDestination:   "Luxor",
		TripType:         "domestic",
		StartDate:        "2026-03-01",
		EndDate:          "2026-03-05",
		AdultCount:       "10",
	}
	if err := sess.Next(); err != nil {
		t.Fatalf("next error: %v", err)
	}
	sess.Program().Adult = []wizard.ProgramRow{
		{Visits: "Museum", VisitsCost: "100", ParticipantCount: "10"},
	}

	svc := TripService{
		Repo:           repositories.TripRepository{DB: db},
		GenerateNumber: func() (string, error) { return "TR-2026-042", nil },
	}
	summary, err := svc.SaveFromWizard(sess)
	if err != nil {
		t.Fatalf("save error: %v", err)
	}
	if sess.Trip().TripNumber != "TR-2026-042" {
		t.Fatalf("trip number = %q, want TR-2026-042", sess.Trip().TripNumber)
	}
	if sess.Trip().ID != 3 {
		t.Fatalf("trip id = %d, want 3", sess.Trip().ID)
	}
	if summary.Totals.GrandTotal != 1000.00 {
		t.Fatalf("grand total = %v, want 1000.00", summary.Totals.GrandTotal)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveFromWizardKeepsExistingNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	sess, err := wizard.NewSession(nil, "")
	if err != nil {
		t.Fatalf("new session error: %v", err)
	}
	*sess.BasicInfo() = wizard.BasicInfoForm{
		TripNumber:       "TR-2025-911",
		TripName:         "Red Sea Escape",
		StartDestination: "Cairo",
		EndDestination:   "Hurghada",
		TripType:         "domestic",
		StartDate:        "2026-04-01",
		EndDate:          "2026-04-03",
		AdultCount:       "6",
	}
	if err := sess.Next(); err != nil {
		t.Fatalf("next error: %v", err)
	}

	called := false
	svc := TripService{
		Repo:           repositories.TripRepository{DB: db},
		GenerateNumber: func() (string, error) { called = true; return "TR-2026-001", nil },
	}
	if _, err := svc.SaveFromWizard(sess); err != nil {
		t.Fatalf("save error: %v", err)
	}
	if called {
		t.Fatal("number generated despite an explicit trip number")
	}
	if sess.Trip().TripNumber != "TR-2025-911" {
		t.Fatalf("trip number = %q, want TR-2025-911", sess.Trip().TripNumber)
	}
}
