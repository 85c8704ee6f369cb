//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"reserva/internal/domain/booking"
	"reserva/internal/handler/api"
	resdto "reserva/internal/handler/dto/response"
	"reserva/internal/usecase"
	"reserva/internal/usecase/readmodel"
	"reserva/tests/common/builder"
	"reserva/tests/common/httptest"
	"reserva/tests/common/testutil"
	usecasemock "reserva/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockUseCase)

	s.router.GET("/bookings", s.handler.List)
	s.router.POST("/bookings", s.handler.Create)
	s.router.POST("/bookings/:id/start", s.handler.Start)
	s.router.POST("/bookings/:id/finish", s.handler.Finish)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns bookings", func() {
		items := []*readmodel.BookingRM{builder.NewBookingBuilder().BuildReadModel()}
		s.mockUseCase.EXPECT().List(gomock.Any(), int32(0)).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(items[0].ID.String(), response[0].ID)
	})

	s.Run("success: limit is forwarded", func() {
		s.mockUseCase.EXPECT().List(gomock.Any(), int32(20)).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=20", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateDTO()

	s.Run("success: returns 201 Created", func() {
		created := builder.NewBookingBuilder().BuildReadModel()
		s.mockUseCase.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("REQUEST", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing kind", mutate: testutil.Field("kind", nil)},
			{name: "missing resource_id", mutate: testutil.Field("resource_id", nil)},
			{name: "missing resource_name", mutate: testutil.Field("resource_name", nil)},
			{name: "missing start_dt", mutate: testutil.Field("start_dt", nil)},
			{name: "missing end_dt", mutate: testutil.Field("end_dt", nil)},
			{name: "malformed start_dt", mutate: testutil.Field("start_dt", "not-a-time")},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := builder.NewBookingBuilder().BuildCreateDTO()
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for an inverted window", func() {
		s.mockUseCase.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidBookingInput).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})

	s.Run("error: 400 Bad Request for an unknown resource", func() {
		s.mockUseCase.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrUnknownResource).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown resource")
	})

	s.Run("error: 409 Conflict for an overlapping window", func() {
		s.mockUseCase.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrBookingConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "overlaps")
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	s.Run("success: each path maps to its transition", func() {
		cases := []struct {
			path       string
			transition booking.Transition
			status     string
		}{
			{path: "start", transition: booking.TransitionStart, status: "ONGOING"},
			{path: "finish", transition: booking.TransitionFinish, status: "SUCCESS"},
			{path: "cancel", transition: booking.TransitionCancel, status: "CANCEL"},
		}

		for _, tc := range cases {
			s.Run(tc.path, func() {
				updated := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.Status = tc.status
				}).BuildReadModel()

				s.mockUseCase.EXPECT().Transition(gomock.Any(), id, tc.transition).
					Return(updated, nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/"+tc.path, nil, "")

				var response resdto.BookingResponse
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
				s.Equal(tc.status, response.Status)
			})
		}
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/start", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: 404 Not Found for a missing booking", func() {
		s.mockUseCase.EXPECT().Transition(gomock.Any(), id, booking.TransitionStart).
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/start", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 Conflict for a terminal booking", func() {
		s.mockUseCase.EXPECT().Transition(gomock.Any(), id, booking.TransitionCancel).
			Return(nil, usecase.ErrBookingFinalized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "terminal state")
	})
}
