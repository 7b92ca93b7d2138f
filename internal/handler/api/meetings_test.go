//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"slotly/internal/handler/api"
	resdto "slotly/internal/handler/dto/response"
	"slotly/internal/usecase/commands"
	"slotly/internal/usecase/queries"
	"slotly/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubMeetingQueries struct {
	views []*queries.MeetingView
	err   error
}

func (s *stubMeetingQueries) ListUpcoming(_ context.Context, _ uuid.UUID) ([]*queries.MeetingView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.views, nil
}

type stubCancellationCommands struct {
	err     error
	eventID string
}

func (s *stubCancellationCommands) Cancel(_ context.Context, _ uuid.UUID, remoteEventID string) error {
	s.eventID = remoteEventID
	return s.err
}

type MeetingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	queries       *stubMeetingQueries
	cancellations *stubCancellationCommands
}

func (s *MeetingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.queries = &stubMeetingQueries{}
	s.cancellations = &stubCancellationCommands{}
	handler := api.NewMeetingHandler(s.queries, s.cancellations)

	s.router = gin.New()
	group := s.router.Group("", func(c *gin.Context) {
		c.Set("host_id", uuid.New())
		c.Next()
	})
	group.GET("/meetings", handler.ListMeetings)
	group.DELETE("/meetings/:eventId", handler.CancelMeeting)
}

func TestMeetingHandlerSuite(t *testing.T) {
	suite.Run(t, new(MeetingHandlerTestSuite))
}

func (s *MeetingHandlerTestSuite) TestListMeetings() {
	s.Run("returns upcoming meetings", func() {
		start := time.Date(2025, time.June, 3, 14, 0, 0, 0, time.UTC)
		s.queries.views = []*queries.MeetingView{{
			RemoteEventID: "evt-1",
			Title:         "Intro call",
			Start:         start,
			End:           start.Add(30 * time.Minute),
			JoinURL:       "https://meet.example.com/evt-1",
		}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/meetings", nil, "")

		var resp []resdto.MeetingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal("evt-1", resp[0].RemoteEventID)
	})

	s.Run("no linked calendar returns 409", func() {
		s.queries.err = queries.ErrProviderNotLinked
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/meetings", nil, "")
		httptest.AssertErrorContains(s.T(), rec, http.StatusConflict, "No linked calendar")
	})

	s.Run("provider unavailable returns 502", func() {
		s.queries.err = queries.ErrProviderUnavailable
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/meetings", nil, "")
		s.Equal(http.StatusBadGateway, rec.Code)
	})
}

func (s *MeetingHandlerTestSuite) TestCancelMeeting() {
	s.Run("success: returns 204 and passes the event id through", func() {
		s.cancellations.err = nil
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/meetings/evt-1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal("evt-1", s.cancellations.eventID)
	})

	s.Run("blank event id returns 400", func() {
		s.cancellations.err = commands.ErrInvalidBookingRequest
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/meetings/%20", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("provider timeout returns 504", func() {
		s.cancellations.err = commands.ErrProviderTimeout
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/meetings/evt-1", nil, "")
		s.Equal(http.StatusGatewayTimeout, rec.Code)
	})
}
