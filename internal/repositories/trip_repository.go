package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// TripRepository persists the trip aggregate. Child collections are
// replaced wholesale (delete + re-insert) inside one transaction on
// every save; nothing is diffed.
type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// TripSummary is the listing row; totals are recomputed elsewhere.
type TripSummary struct {
	ID                    int64     `json:"id"`
	TripNumber            string    `json:"tripNumber"`
	TripName              string    `json:"tripName"`
	StartDestination      string    `json:"startDestination"`
	EndDestination        string    `json:"endDestination"`
	TripType              string    `json:"tripType"`
	StartDate             time.Time `json:"startDate"`
	EndDate               time.Time `json:"endDate"`
	TotalCapacity         int       `json:"totalCapacity"`
	SellingPricePerPerson float64   `json:"sellingPricePerPerson"`
	IsLockedForTrips      bool      `json:"isLockedForTrips"`
}

// List returns all trips, newest first.
func (r TripRepository) List() ([]TripSummary, error) {
	rows, err := r.db().Query(`
		SELECT id, trip_number, trip_name, start_destination, end_destination, trip_type,
		       start_date, end_date, total_capacity, selling_price_per_person, is_locked_for_trips
		FROM trips
		ORDER BY id DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list trips", Err: err}
	}
	defer rows.Close()

	out := []TripSummary{}
	for rows.Next() {
		var t TripSummary
		if err := rows.Scan(
			&t.ID, &t.TripNumber, &t.TripName, &t.StartDestination, &t.EndDestination, &t.TripType,
			&t.StartDate, &t.EndDate, &t.TotalCapacity, &t.SellingPricePerPerson, &t.IsLockedForTrips,
		); err != nil {
			return out, domain.InternalError{Msg: "scan trip row", Err: err}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID loads one trip; includeDetails pulls all six child
// collections in their stored order.
func (r TripRepository) GetByID(id int64, includeDetails bool) (models.Trip, error) {
	var t models.Trip
	var tripType string
	err := r.db().QueryRow(`
		SELECT id, trip_number, trip_name, start_destination, end_destination, trip_type, COALESCE(description,''),
		       start_date, end_date, adult_count, child_count, total_capacity,
		       profit_margin_percent, selling_price_per_person, expected_revenue,
		       expected_profit, actual_profit_margin_percent, is_locked_for_trips,
		       created_by, created_at, updated_by, updated_at
		FROM trips WHERE id=?`, id).Scan(
		&t.ID, &t.TripNumber, &t.TripName, &t.StartDestination, &t.EndDestination, &tripType, &t.Description,
		&t.StartDate, &t.EndDate, &t.AdultCount, &t.ChildCount, &t.TotalCapacity,
		&t.ProfitMarginPercent, &t.SellingPricePerPerson, &t.ExpectedRevenue,
		&t.ExpectedProfit, &t.ActualProfitMarginPercent, &t.IsLockedForTrips,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedBy, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return t, domain.InternalError{Msg: "load trip", Err: err}
	}
	t.TripType = models.TripType(tripType)

	if !includeDetails {
		return t, nil
	}
	if err := r.loadDetails(&t); err != nil {
		return t, err
	}
	return t, nil
}

func (r TripRepository) loadDetails(t *models.Trip) error {
	db := r.db()

	rows, err := db.Query(`
		SELECT id, day_number, day_date, COALESCE(visits,''), visits_cost, guide_cost,
		       participant_count, passenger_class, COALESCE(notes,'')
		FROM trip_programs WHERE trip_id=? ORDER BY passenger_class, day_number, id`, t.ID)
	if err != nil {
		return domain.InternalError{Msg: "load trip programs", Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var d models.ProgramDay
		var class string
		if err := rows.Scan(&d.ID, &d.DayNumber, &d.DayDate, &d.Visits, &d.VisitsCost,
			&d.GuideCost, &d.ParticipantCount, &class, &d.Notes); err != nil {
			return domain.InternalError{Msg: "scan trip program", Err: err}
		}
		d.TripID = t.ID
		d.PassengerClass = models.PassengerClass(class)
		t.Programs = append(t.Programs, d)
	}
	if err := rows.Err(); err != nil {
		return domain.InternalError{Msg: "load trip programs", Err: err}
	}

	legRows, err := db.Query(`
		SELECT id, type, transport_date, COALESCE(route,''), vehicle_count, seats_per_vehicle,
		       participant_count, cost_per_vehicle, tour_leader_tip, driver_tip,
		       COALESCE(visit_name,''), program_day_number
		FROM trip_transport_legs WHERE trip_id=? ORDER BY program_day_number, id`, t.ID)
	if err != nil {
		return domain.InternalError{Msg: "load transport legs", Err: err}
	}
	defer legRows.Close()
	for legRows.Next() {
		var l models.TransportLeg
		var typ string
		var date sql.NullTime
		if err := legRows.Scan(&l.ID, &typ, &date, &l.Route, &l.VehicleCount, &l.SeatsPerVehicle,
			&l.ParticipantCount, &l.CostPerVehicle, &l.TourLeaderTip, &l.DriverTip,
			&l.VisitName, &l.ProgramDayNumber); err != nil {
			return domain.InternalError{Msg: "scan transport leg", Err: err}
		}
		l.TripID = t.ID
		l.Type = models.TransportType(typ)
		if date.Valid {
			l.TransportDate = date.Time
		}
		t.TransportLegs = append(t.TransportLegs, l)
	}
	if err := legRows.Err(); err != nil {
		return domain.InternalError{Msg: "load transport legs", Err: err}
	}

	accRows, err := db.Query(`
		SELECT id, type, name, rating, COALESCE(cruise_level,''), room_type, room_count,
		       night_count, participant_count, COALESCE(meal_plan,''), currency, exchange_rate,
		       price_per_night, guide_cost, check_in_date, check_out_date
		FROM trip_accommodations WHERE trip_id=? ORDER BY id`, t.ID)
	if err != nil {
		return domain.InternalError{Msg: "load accommodations", Err: err}
	}
	defer accRows.Close()
	for accRows.Next() {
		var a models.AccommodationLine
		var typ, roomType, cruise string
		if err := accRows.Scan(&a.ID, &typ, &a.Name, &a.Rating, &cruise, &roomType, &a.RoomCount,
			&a.NightCount, &a.ParticipantCount, &a.MealPlan, &a.Currency, &a.ExchangeRate,
			&a.PricePerNight, &a.GuideCost, &a.CheckInDate, &a.CheckOutDate); err != nil {
			return domain.InternalError{Msg: "scan accommodation", Err: err}
		}
		a.TripID = t.ID
		a.Type = models.AccommodationType(typ)
		a.RoomType = models.RoomType(roomType)
		a.CruiseLevel = models.CruiseLevel(cruise)
		t.Accommodations = append(t.Accommodations, a)
	}
	if err := accRows.Err(); err != nil {
		return domain.InternalError{Msg: "load accommodations", Err: err}
	}

	guideRows, err := db.Query(`
		SELECT id, guide_name, COALESCE(phone,''), COALESCE(email,''), COALESCE(languages,''),
		       base_fee, commission_amount, driver_tip, COALESCE(notes,'')
		FROM trip_guides WHERE trip_id=? ORDER BY id`, t.ID)
	if err != nil {
		return domain.InternalError{Msg: "load guides", Err: err}
	}
	defer guideRows.Close()
	for guideRows.Next() {
		var g models.GuideAssignment
		if err := guideRows.Scan(&g.ID, &g.GuideName, &g.Phone, &g.Email, &g.Languages,
			&g.BaseFee, &g.CommissionAmount, &g.DriverTip, &g.Notes); err != nil {
			return domain.InternalError{Msg: "scan guide", Err: err}
		}
		g.TripID = t.ID
		t.Guides = append(t.Guides, g)
	}
	if err := guideRows.Err(); err != nil {
		return domain.InternalError{Msg: "load guides", Err: err}
	}

	expRows, err := db.Query(`
		SELECT id, category, COALESCE(description,''), amount, COALESCE(notes,'')
		FROM trip_expenses WHERE trip_id=? ORDER BY id`, t.ID)
	if err != nil {
		return domain.InternalError{Msg: "load expenses", Err: err}
	}
	defer expRows.Close()
	for expRows.Next() {
		var e models.Expense
		if err := expRows.Scan(&e.ID, &e.Category, &e.Description, &e.Amount, &e.Notes); err != nil {
			return domain.InternalError{Msg: "scan expense", Err: err}
		}
		e.TripID = t.ID
		t.Expenses = append(t.Expenses, e)
	}
	if err := expRows.Err(); err != nil {
		return domain.InternalError{Msg: "load expenses", Err: err}
	}

	tourRows, err := db.Query(`
		SELECT id, tour_name, selling_price, purchase_price, guide_commission,
		       sales_rep_commission, participant_count
		FROM trip_optional_tours WHERE trip_id=? ORDER BY id`, t.ID)
	if err != nil {
		return domain.InternalError{Msg: "load optional tours", Err: err}
	}
	defer tourRows.Close()
	for tourRows.Next() {
		var o models.OptionalTour
		if err := tourRows.Scan(&o.ID, &o.TourName, &o.SellingPrice, &o.PurchasePrice,
			&o.GuideCommission, &o.SalesRepCommission, &o.ParticipantCount); err != nil {
			return domain.InternalError{Msg: "scan optional tour", Err: err}
		}
		o.TripID = t.ID
		t.OptionalTours = append(t.OptionalTours, o)
	}
	if err := tourRows.Err(); err != nil {
		return domain.InternalError{Msg: "load optional tours", Err: err}
	}

	return nil
}

// GenerateTripNumber issues the next TR-<year>-NNN for the current year.
func (r TripRepository) GenerateTripNumber() (string, error) {
	year := time.Now().UTC().Year()
	prefix := fmt.Sprintf("TR-%d-", year)

	var last string
	err := r.db().QueryRow(`
		SELECT trip_number FROM trips
		WHERE trip_number LIKE ?
		ORDER BY trip_number DESC LIMIT 1`, prefix+"%").Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Sprintf("%s%03d", prefix, 1), nil
	}
	if err != nil {
		return "", domain.InternalError{Msg: "generate trip number", Err: err}
	}

	next := 1
	if parts := strings.Split(last, "-"); len(parts) == 3 {
		if n, err := strconv.Atoi(parts[2]); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", prefix, next), nil
}

// Create inserts the trip and all child rows in one transaction. The
// aggregate keeps its zero ID on failure.
func (r TripRepository) Create(t *models.Trip) error {
	tx, err := r.db().Begin()
	if err != nil {
		return domain.InternalError{Msg: "begin create trip", Err: err}
	}

	res, err := tx.Exec(`
		INSERT INTO trips (trip_number, trip_name, start_destination, end_destination, trip_type, description,
			start_date, end_date, adult_count, child_count, total_capacity,
			profit_margin_percent, selling_price_per_person, expected_revenue,
			expected_profit, actual_profit_margin_percent, is_locked_for_trips,
			created_by, created_at, updated_by, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		t.TripNumber, t.TripName, t.StartDestination, t.EndDestination, string(t.TripType), t.Description,
		t.StartDate, t.EndDate, t.AdultCount, t.ChildCount, t.TotalCapacity,
		t.ProfitMarginPercent, t.SellingPricePerPerson, t.ExpectedRevenue,
		t.ExpectedProfit, t.ActualProfitMarginPercent, t.IsLockedForTrips,
		t.CreatedBy, t.CreatedAt, t.UpdatedBy, t.UpdatedAt,
	)
	if err != nil {
		tx.Rollback()
		return domain.InternalError{Msg: "insert trip", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return domain.InternalError{Msg: "trip insert id", Err: err}
	}

	if err := insertChildren(tx, id, t); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "commit create trip", Err: err}
	}

	t.ID = id
	setChildTripIDs(t)
	return nil
}

// Update rewrites the trip row and replaces every child collection.
func (r TripRepository) Update(t *models.Trip) error {
	tx, err := r.db().Begin()
	if err != nil {
		return domain.InternalError{Msg: "begin update trip", Err: err}
	}

	_, err = tx.Exec(`
		UPDATE trips SET trip_number=?, trip_name=?, start_destination=?, end_destination=?, trip_type=?, description=?,
			start_date=?, end_date=?, adult_count=?, child_count=?, total_capacity=?,
			profit_margin_percent=?, selling_price_per_person=?, expected_revenue=?,
			expected_profit=?, actual_profit_margin_percent=?,
			updated_by=?, updated_at=?
		WHERE id=?`,
		t.TripNumber, t.TripName, t.StartDestination, t.EndDestination, string(t.TripType), t.Description,
		t.StartDate, t.EndDate, t.AdultCount, t.ChildCount, t.TotalCapacity,
		t.ProfitMarginPercent, t.SellingPricePerPerson, t.ExpectedRevenue,
		t.ExpectedProfit, t.ActualProfitMarginPercent,
		t.UpdatedBy, t.UpdatedAt, t.ID,
	)
	if err != nil {
		tx.Rollback()
		return domain.InternalError{Msg: "update trip", Err: err}
	}

	for _, table := range []string{
		"trip_programs", "trip_transport_legs", "trip_accommodations",
		"trip_guides", "trip_expenses", "trip_optional_tours",
	} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE trip_id=?", t.ID); err != nil {
			tx.Rollback()
			return domain.InternalError{Msg: "clear " + table, Err: err}
		}
	}

	if err := insertChildren(tx, t.ID, t); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "commit update trip", Err: err}
	}

	setChildTripIDs(t)
	return nil
}

// Delete removes a trip and its children. Locked trips stay put.
func (r TripRepository) Delete(id int64) error {
	t, err := r.GetByID(id, false)
	if err != nil {
		return err
	}
	if t.IsLockedForTrips {
		return domain.ConflictError{Resource: "trip", Msg: "locked by the booking subsystem"}
	}

	tx, err := r.db().Begin()
	if err != nil {
		return domain.InternalError{Msg: "begin delete trip", Err: err}
	}
	for _, table := range []string{
		"trip_programs", "trip_transport_legs", "trip_accommodations",
		"trip_guides", "trip_expenses", "trip_optional_tours",
	} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE trip_id=?", id); err != nil {
			tx.Rollback()
			return domain.InternalError{Msg: "clear " + table, Err: err}
		}
	}
	if _, err := tx.Exec("DELETE FROM trips WHERE id=?", id); err != nil {
		tx.Rollback()
		return domain.InternalError{Msg: "delete trip", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "commit delete trip", Err: err}
	}
	return nil
}

func insertChildren(tx *sql.Tx, tripID int64, t *models.Trip) error {
	for _, d := range t.Programs {
		_, err := tx.Exec(`
			INSERT INTO trip_programs (trip_id, day_number, day_date, visits, visits_cost,
				guide_cost, participant_count, passenger_class, notes)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			tripID, d.DayNumber, d.DayDate, intdb.NullIfEmpty(d.Visits), d.VisitsCost,
			d.GuideCost, d.ParticipantCount, string(d.PassengerClass), intdb.NullIfEmpty(d.Notes))
		if err != nil {
			return domain.InternalError{Msg: "insert trip program", Err: err}
		}
	}

	for _, l := range t.TransportLegs {
		var date any
		if !l.TransportDate.IsZero() {
			date = l.TransportDate
		}
		_, err := tx.Exec(`
			INSERT INTO trip_transport_legs (trip_id, type, transport_date, route, vehicle_count,
				seats_per_vehicle, participant_count, cost_per_vehicle, tour_leader_tip,
				driver_tip, visit_name, program_day_number)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			tripID, string(l.Type), date, intdb.NullIfEmpty(l.Route), l.VehicleCount,
			l.SeatsPerVehicle, l.ParticipantCount, l.CostPerVehicle, l.TourLeaderTip,
			l.DriverTip, intdb.NullIfEmpty(l.VisitName), l.ProgramDayNumber)
		if err != nil {
			return domain.InternalError{Msg: "insert transport leg", Err: err}
		}
	}

	for _, a := range t.Accommodations {
		_, err := tx.Exec(`
			INSERT INTO trip_accommodations (trip_id, type, name, rating, cruise_level,
				room_type, room_count, night_count, participant_count, meal_plan,
				currency, exchange_rate, price_per_night, guide_cost, check_in_date, check_out_date)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			tripID, string(a.Type), a.Name, a.Rating, intdb.NullIfEmpty(string(a.CruiseLevel)),
			string(a.RoomType), a.RoomCount, a.NightCount, a.ParticipantCount, intdb.NullIfEmpty(a.MealPlan),
			a.Currency, a.ExchangeRate, a.PricePerNight, a.GuideCost, a.CheckInDate, a.CheckOutDate)
		if err != nil {
			return domain.InternalError{Msg: "insert accommodation", Err: err}
		}
	}

	for _, g := range t.Guides {
		_, err := tx.Exec(`
			INSERT INTO trip_guides (trip_id, guide_name, phone, email, languages,
				base_fee, commission_amount, driver_tip, notes)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			tripID, g.GuideName, intdb.NullIfEmpty(g.Phone), intdb.NullIfEmpty(g.Email), intdb.NullIfEmpty(g.Languages),
			g.BaseFee, g.CommissionAmount, g.DriverTip, intdb.NullIfEmpty(g.Notes))
		if err != nil {
			return domain.InternalError{Msg: "insert guide", Err: err}
		}
	}

	for _, e := range t.Expenses {
		_, err := tx.Exec(`
			INSERT INTO trip_expenses (trip_id, category, description, amount, notes)
			VALUES (?,?,?,?,?)`,
			tripID, e.Category, e.Description, e.Amount, intdb.NullIfEmpty(e.Notes))
		if err != nil {
			return domain.InternalError{Msg: "insert expense", Err: err}
		}
	}

	for _, o := range t.OptionalTours {
		_, err := tx.Exec(`
			INSERT INTO trip_optional_tours (trip_id, tour_name, selling_price, purchase_price,
				guide_commission, sales_rep_commission, participant_count)
			VALUES (?,?,?,?,?,?,?)`,
			tripID, o.TourName, o.SellingPrice, o.PurchasePrice,
			o.GuideCommission, o.SalesRepCommission, o.ParticipantCount)
		if err != nil {
			return domain.InternalError{Msg: "insert optional tour", Err: err}
		}
	}

	return nil
}

func setChildTripIDs(t *models.Trip) {
	for i := range t.Programs {
		t.Programs[i].TripID = t.ID
	}
	for i := range t.TransportLegs {
		t.TransportLegs[i].TripID = t.ID
	}
	for i := range t.Accommodations {
		t.Accommodations[i].TripID = t.ID
	}
	for i := range t.Guides {
		t.Guides[i].TripID = t.ID
	}
	for i := range t.Expenses {
		t.Expenses[i].TripID = t.ID
	}
	for i := range t.OptionalTours {
		t.OptionalTours[i].TripID = t.ID
	}
}
