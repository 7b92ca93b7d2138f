//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"slotly/internal/handler/api"
	reqdto "slotly/internal/handler/dto/request"
	resdto "slotly/internal/handler/dto/response"
	"slotly/internal/usecase/commands"
	"slotly/internal/usecase/queries"
	"slotly/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubAvailabilityQueries struct {
	views []queries.RuleView
	err   error
}

func (s *stubAvailabilityQueries) GetWeek(_ context.Context, _ uuid.UUID) ([]queries.RuleView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.views, nil
}

type stubAvailabilityCommands struct {
	updateErr error
	seeded    int
	onSeed    func()
}

func (s *stubAvailabilityCommands) UpdateRules(_ context.Context, _ uuid.UUID, _ []commands.RuleChange) error {
	return s.updateErr
}

func (s *stubAvailabilityCommands) SeedDefaults(_ context.Context, _ uuid.UUID) error {
	s.seeded++
	if s.onSeed != nil {
		s.onSeed()
	}
	return nil
}

func defaultWeekViews() []queries.RuleView {
	views := make([]queries.RuleView, 0, 7)
	for i := 0; i < 7; i++ {
		weekday := time.Weekday((i + 1) % 7) // Monday first
		views = append(views, queries.RuleView{
			Weekday:  weekday.String(),
			IsActive: true,
			Open:     "08:00",
			Close:    "18:00",
		})
	}
	return views
}

func fullWeekRequest() reqdto.UpdateAvailabilityRequest {
	rules := make([]reqdto.DayRuleRequest, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		rules = append(rules, reqdto.DayRuleRequest{
			Weekday:  d.String(),
			IsActive: d != time.Saturday && d != time.Sunday,
			Open:     "09:00",
			Close:    "17:00",
		})
	}
	return reqdto.UpdateAvailabilityRequest{Rules: rules}
}

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	queries *stubAvailabilityQueries
	cmds    *stubAvailabilityCommands
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.queries = &stubAvailabilityQueries{}
	s.cmds = &stubAvailabilityCommands{}
	handler := api.NewAvailabilityHandler(s.queries, s.cmds)

	s.router = gin.New()
	group := s.router.Group("", func(c *gin.Context) {
		c.Set("host_id", uuid.New())
		c.Next()
	})
	group.GET("/availability", handler.GetAvailability)
	group.PUT("/availability", handler.UpdateAvailability)
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	s.Run("returns the stored week", func() {
		s.queries.views = defaultWeekViews()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability", nil, "")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Rules, 7)
		s.Equal("Monday", resp.Rules[0].Weekday)
		s.Equal(0, s.cmds.seeded)
	})

	s.Run("first access seeds the default week and retries", func() {
		s.queries.err = queries.ErrAvailabilityNotFound
		s.cmds.onSeed = func() {
			s.queries.err = nil
			s.queries.views = defaultWeekViews()
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability", nil, "")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(1, s.cmds.seeded)
		s.Len(resp.Rules, 7)
	})
}

func (s *AvailabilityHandlerTestSuite) TestUpdateAvailability() {
	s.Run("success: returns the stored week", func() {
		s.queries.views = defaultWeekViews()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/availability", fullWeekRequest(), "")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Rules, 7)
	})

	s.Run("fewer than seven days returns 400", func() {
		req := fullWeekRequest()
		req.Rules = req.Rules[:6]
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/availability", req, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown weekday name returns 400", func() {
		req := fullWeekRequest()
		req.Rules[0].Weekday = "Funday"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/availability", req, "")
		httptest.AssertErrorContains(s.T(), rec, http.StatusBadRequest, "Unknown weekday")
	})

	s.Run("invalid rules return 422", func() {
		s.cmds.updateErr = commands.ErrInvalidAvailability
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/availability", fullWeekRequest(), "")
		httptest.AssertErrorContains(s.T(), rec, http.StatusUnprocessableEntity, "Invalid availability")
	})
}
