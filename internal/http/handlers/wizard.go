package handlers

import (
	"net/http"
	"strconv"

	"backoffice/internal/http/middleware"
	"backoffice/internal/wizard"

	"github.com/gin-gonic/gin"
)

var wizardSessions = wizard.NewManager()

// StartWizard opens a session over a fresh trip, or over an existing one
// when tripId is given. Locked trips are rejected before any form shows.
func StartWizard(c *gin.Context) {
	var req struct {
		TripID int64 `json:"tripId"`
	}
	if c.Request.ContentLength > 0 && !BindJSONOrError(c, &req) {
		return
	}

	var sess *wizard.Session
	var err error
	if req.TripID > 0 {
		trip, loadErr := tripService.Repo.GetByID(req.TripID, true)
		if loadErr != nil {
			RespondDomainError(c, loadErr)
			return
		}
		sess, err = wizard.NewSession(&trip, middleware.GetRequestID(c))
	} else {
		sess, err = wizard.NewSession(nil, middleware.GetRequestID(c))
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	sid := wizardSessions.Add(sess)
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sid,
		"step":      sess.Step().String(),
		"form":      currentForm(sess),
	})
}

// GetWizardState returns the active step and its form.
func GetWizardState(c *gin.Context) {
	sess, ok := findSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"step": sess.Step().String(),
		"form": currentForm(sess),
	})
}

// UpdateWizardForm replaces the active step's form with the request
// body. Nothing is validated or parsed here; that happens on Next.
func UpdateWizardForm(c *gin.Context) {
	sess, ok := findSession(c)
	if !ok {
		return
	}
	if !bindCurrentForm(c, sess) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"step": sess.Step().String(),
		"form": currentForm(sess),
	})
}

// WizardNext validates and advances; on validation failure the step
// stays put and the error names the offending field.
func WizardNext(c *gin.Context) {
	sess, ok := findSession(c)
	if !ok {
		return
	}
	if err := sess.Next(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"step": sess.Step().String(),
		"form": currentForm(sess),
	})
}

// WizardPrevious moves back, preserving the current step's entries.
func WizardPrevious(c *gin.Context) {
	sess, ok := findSession(c)
	if !ok {
		return
	}
	if err := sess.Previous(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"step": sess.Step().String(),
		"form": currentForm(sess),
	})
}

// ImportWizardTransport re-seeds the transportation grid from the daily
// program, keeping rows the user already filled.
func ImportWizardTransport(c *gin.Context) {
	sess, ok := findSession(c)
	if !ok {
		return
	}
	count := sess.ImportTransportLegs()
	c.JSON(http.StatusOK, gin.H{
		"rows": count,
		"form": sess.Transport(),
	})
}

// SetWizardCurrency switches an accommodation row's currency; the
// default rate applies only when the user has not typed one.
func SetWizardCurrency(c *gin.Context) {
	sess, ok := findSession(c)
	if !ok {
		return
	}
	index, ok := parseIndexParam(c)
	if !ok {
		return
	}
	var req struct {
		Currency string `json:"currency"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	sess.Accommodation().SetCurrency(index, req.Currency)
	c.JSON(http.StatusOK, gin.H{"form": sess.Accommodation()})
}

// SetWizardExchangeRate records an explicit exchange rate entry.
func SetWizardExchangeRate(c *gin.Context) {
	sess, ok := findSession(c)
	if !ok {
		return
	}
	index, ok := parseIndexParam(c)
	if !ok {
		return
	}
	var req struct {
		ExchangeRate string `json:"exchangeRate"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	sess.Accommodation().SetExchangeRate(index, req.ExchangeRate)
	c.JSON(http.StatusOK, gin.H{"form": sess.Accommodation()})
}

// GetWizardSummary recomputes the review figures without saving.
func GetWizardSummary(c *gin.Context) {
	sess, ok := findSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Summary())
}

// SaveWizard persists the trip and returns the final figures. The
// session stays open so a failed save can be retried.
func SaveWizard(c *gin.Context) {
	sess, ok := findSession(c)
	if !ok {
		return
	}
	summary, err := tripService.SaveFromWizard(sess)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tripId":     sess.Trip().ID,
		"tripNumber": sess.Trip().TripNumber,
		"summary":    summary,
	})
}

// CancelWizard drops the session; nothing entered is persisted.
func CancelWizard(c *gin.Context) {
	wizardSessions.Remove(c.Param("sid"))
	c.JSON(http.StatusOK, gin.H{"message": "wizard cancelled"})
}

func findSession(c *gin.Context) (*wizard.Session, bool) {
	sess, err := wizardSessions.Get(c.Param("sid"))
	if err != nil {
		RespondDomainError(c, err)
		return nil, false
	}
	return sess, true
}

func currentForm(sess *wizard.Session) any {
	switch sess.Step() {
	case wizard.StepBasicInfo:
		return sess.BasicInfo()
	case wizard.StepDailyProgram:
		return sess.Program()
	case wizard.StepTransportation:
		return sess.Transport()
	case wizard.StepAccommodation:
		return sess.Accommodation()
	case wizard.StepGuide:
		return sess.Guide()
	case wizard.StepExpenses:
		return sess.Expenses()
	case wizard.StepOptionalTours:
		return sess.OptionalTours()
	case wizard.StepReview:
		return sess.Summary()
	}
	return nil
}

func bindCurrentForm(c *gin.Context, sess *wizard.Session) bool {
	switch sess.Step() {
	case wizard.StepBasicInfo:
		return BindJSONOrError(c, sess.BasicInfo())
	case wizard.StepDailyProgram:
		return BindJSONOrError(c, sess.Program())
	case wizard.StepTransportation:
		return BindJSONOrError(c, sess.Transport())
	case wizard.StepAccommodation:
		return BindJSONOrError(c, sess.Accommodation())
	case wizard.StepGuide:
		return BindJSONOrError(c, sess.Guide())
	case wizard.StepExpenses:
		return BindJSONOrError(c, sess.Expenses())
	case wizard.StepOptionalTours:
		return BindJSONOrError(c, sess.OptionalTours())
	}
	RespondError(c, http.StatusBadRequest, "review step has no editable form", nil)
	return false
}

func parseIndexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		RespondError(c, http.StatusBadRequest, "invalid row index", err)
		return 0, false
	}
	return index, true
}
