package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/mocks"
	"github.com/metinatakli/cinema-booking-system/internal/validator"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ScreeningsTestSuite struct {
	suite.Suite
	app           *Application
	hallRepo      *mocks.MockHallRepo
	movieRepo     *mocks.MockMovieRepo
	screeningRepo *mocks.MockScreeningRepo
	bookingRepo   *mocks.MockBookingRepo
}

func (s *ScreeningsTestSuite) SetupTest() {
	s.hallRepo = new(mocks.MockHallRepo)
	s.screeningRepo = new(mocks.MockScreeningRepo)
	s.bookingRepo = new(mocks.MockBookingRepo)
	s.movieRepo = &mocks.MockMovieRepo{
		GetByIdFunc: func(ctx context.Context, id int) (*domain.Movie, error) {
			if id != 1 {
				return nil, domain.ErrRecordNotFound
			}
			return &domain.Movie{ID: 1, Title: "Inception", Duration: 148}, nil
		},
	}

	s.app = newTestApplication(func(a *Application) {
		a.hallRepo = s.hallRepo
		a.movieRepo = s.movieRepo
		a.screeningRepo = s.screeningRepo
		a.bookingRepo = s.bookingRepo
	})
}

func TestScreeningsSuite(t *testing.T) {
	suite.Run(t, new(ScreeningsTestSuite))
}

var screeningDate = types.Date{Time: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)}

func (s *ScreeningsTestSuite) TestCreateScreening() {
	tests := []struct {
		name           string
		body           any
		setupMock      func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "slot already taken",
			body: api.CreateScreeningRequest{MovieId: 1, CinemaHallId: 1, Date: screeningDate, StartTime: "18:00"},
			setupMock: func() {
				s.hallRepo.On("GetById", mock.Anything, 1).Return(testHall(), nil)
				s.screeningRepo.On("SlotTaken", mock.Anything, 1, mock.Anything, "18:00", 0).Return(true, nil)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: ErrScheduleConflict,
		},
		{
			name: "one minute later is a different slot",
			body: api.CreateScreeningRequest{MovieId: 1, CinemaHallId: 1, Date: screeningDate, StartTime: "18:01"},
			setupMock: func() {
				s.hallRepo.On("GetById", mock.Anything, 1).Return(testHall(), nil)
				s.screeningRepo.On("SlotTaken", mock.Anything, 1, mock.Anything, "18:01", 0).Return(false, nil)
				s.screeningRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Screening")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.Screening).ID = 2
					}).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "insert races with another screening",
			body: api.CreateScreeningRequest{MovieId: 1, CinemaHallId: 1, Date: screeningDate, StartTime: "20:00"},
			setupMock: func() {
				s.hallRepo.On("GetById", mock.Anything, 1).Return(testHall(), nil)
				s.screeningRepo.On("SlotTaken", mock.Anything, 1, mock.Anything, "20:00", 0).Return(false, nil)
				s.screeningRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrScheduleConflict)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: ErrScheduleConflict,
		},
		{
			name: "unknown movie",
			body: api.CreateScreeningRequest{MovieId: 99, CinemaHallId: 1, Date: screeningDate, StartTime: "18:00"},
			setupMock: func() {
				s.hallRepo.On("GetById", mock.Anything, 1).Return(testHall(), nil)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: ErrDoesNotExist,
		},
		{
			name: "unknown hall",
			body: api.CreateScreeningRequest{MovieId: 1, CinemaHallId: 99, Date: screeningDate, StartTime: "18:00"},
			setupMock: func() {
				s.hallRepo.On("GetById", mock.Anything, 99).Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: ErrDoesNotExist,
		},
		{
			name:           "invalid start time",
			body:           api.CreateScreeningRequest{MovieId: 1, CinemaHallId: 1, Date: screeningDate, StartTime: "25:00"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrTimeOfDay,
		},
		{
			name:           "missing movie",
			body:           api.CreateScreeningRequest{CinemaHallId: 1, Date: screeningDate, StartTime: "18:00"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:       "malformed date",
			body:       `{"movie_id": 1, "cinema_hall_id": 1, "date": "01/12/2025", "start_time": "18:00"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/screenings", tt.body)
			s.app.CreateScreening(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusCreated {
				checkErrorResponse(s.T(), w, struct {
					wantStatus     int
					wantErrMessage string
				}{tt.wantStatus, tt.wantErrMessage})
				return
			}

			var got api.ScreeningResponse
			decodeData(s.T(), w, &got)

			want := api.ScreeningResponse{
				Id:           2,
				MovieId:      1,
				CinemaHallId: 1,
				Date:         screeningDate,
				StartTime:    "18:01",
				Movie:        &api.ScreeningMovie{Id: 1, Title: "Inception", Duration: 148},
				CinemaHall:   &api.ScreeningHall{Id: 1, Name: "Hall 1"},
			}

			if diff := cmp.Diff(want, got); diff != "" {
				s.T().Errorf("screening mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func (s *ScreeningsTestSuite) TestUpdateScreening() {
	s.Run("moving onto its own slot is allowed", func() {
		s.SetupTest()

		s.screeningRepo.On("GetById", mock.Anything, 1).Return(testScreening(), nil)
		s.hallRepo.On("GetById", mock.Anything, 1).Return(testHall(), nil)
		s.screeningRepo.On("SlotTaken", mock.Anything, 1, mock.Anything, "18:00", 1).Return(false, nil)
		s.screeningRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Screening")).Return(nil)

		w, r := executeRequest(s.T(), http.MethodPut, "/screenings/1", api.UpdateScreeningRequest{StartTime: ptr("18:00")})
		s.app.UpdateScreening(w, r, 1)

		s.Equal(http.StatusOK, w.Code)
		s.screeningRepo.AssertExpectations(s.T())
	})

	s.Run("moving onto a taken slot", func() {
		s.SetupTest()

		s.screeningRepo.On("GetById", mock.Anything, 1).Return(testScreening(), nil)
		s.hallRepo.On("GetById", mock.Anything, 1).Return(testHall(), nil)
		s.screeningRepo.On("SlotTaken", mock.Anything, 1, mock.Anything, "21:00", 1).Return(true, nil)

		w, r := executeRequest(s.T(), http.MethodPatch, "/screenings/1", api.UpdateScreeningRequest{StartTime: ptr("21:00")})
		s.app.UpdateScreening(w, r, 1)

		s.Equal(http.StatusUnprocessableEntity, w.Code)
		s.screeningRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	})

	s.Run("unknown screening", func() {
		s.SetupTest()

		s.screeningRepo.On("GetById", mock.Anything, 9).Return(nil, domain.ErrRecordNotFound)

		w, r := executeRequest(s.T(), http.MethodPut, "/screenings/9", api.UpdateScreeningRequest{StartTime: ptr("21:00")})
		s.app.UpdateScreening(w, r, 9)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *ScreeningsTestSuite) TestDeleteScreening() {
	tests := []struct {
		name       string
		repoErr    error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "unknown screening", repoErr: domain.ErrRecordNotFound, wantStatus: http.StatusNotFound},
		{name: "database error", repoErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.screeningRepo.On("Delete", mock.Anything, 5).Return(tt.repoErr)

			w, r := executeRequest(s.T(), http.MethodDelete, "/screenings/5", nil)
			s.app.DeleteScreening(w, r, 5)

			s.Equal(tt.wantStatus, w.Code)
		})
	}
}

func (s *ScreeningsTestSuite) TestListScreenings() {
	want := domain.ScreeningFilters{Date: &screeningDate.Time, HallID: 1}

	s.screeningRepo.On("GetAll", mock.Anything, want).Return([]*domain.Screening{testScreening()}, nil)

	w, r := executeRequest(s.T(), http.MethodGet, "/screenings?date=2025-12-01&hall_id=1", nil)
	s.app.ListScreenings(w, r, api.ListScreeningsParams{Date: &screeningDate, HallId: ptr(1)})

	s.Equal(http.StatusOK, w.Code)

	var got []api.ScreeningResponse
	decodeData(s.T(), w, &got)

	s.Len(got, 1)
	s.Equal("18:00", got[0].StartTime)
	s.Nil(got[0].Movie)
}

type listScreeningsRecorder struct {
	api.Unimplemented
	params *api.ListScreeningsParams
}

func (h *listScreeningsRecorder) ListScreenings(w http.ResponseWriter, r *http.Request, params api.ListScreeningsParams) {
	h.params = &params
	w.WriteHeader(http.StatusOK)
}

func (s *ScreeningsTestSuite) TestScreeningQueryBinding() {
	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantParams *api.ListScreeningsParams
	}{
		{name: "no filters", url: "/screenings", wantStatus: http.StatusOK, wantParams: &api.ListScreeningsParams{}},
		{
			name:       "valid date",
			url:        "/screenings?date=2025-12-01&hall_id=2",
			wantStatus: http.StatusOK,
			wantParams: &api.ListScreeningsParams{
				Date:   &types.Date{Time: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
				HallId: ptr(2),
			},
		},
		{name: "invalid date", url: "/screenings?date=tomorrow", wantStatus: http.StatusBadRequest},
		{name: "non numeric hall", url: "/screenings?hall_id=one", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			recorder := &listScreeningsRecorder{}
			handler := api.HandlerWithOptions(recorder, api.ChiServerOptions{ErrorHandlerFunc: s.app.badRequestResponse})

			w, r := executeRequest(s.T(), http.MethodGet, tt.url, nil)
			handler.ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)
			s.Equal(tt.wantParams, recorder.params)

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, ""})
		})
	}
}

func (s *ScreeningsTestSuite) TestGetBookedSeats() {
	s.Run("unknown screening", func() {
		s.SetupTest()
		s.screeningRepo.On("GetById", mock.Anything, 9).Return(nil, domain.ErrRecordNotFound)

		w, r := executeRequest(s.T(), http.MethodGet, "/screenings/9/booked-seats", nil)
		s.app.GetBookedSeats(w, r, 9)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("no bookings yet", func() {
		s.SetupTest()
		s.screeningRepo.On("GetById", mock.Anything, 1).Return(testScreening(), nil)
		s.bookingRepo.On("GetBookedSeats", mock.Anything, 1).Return(nil, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/screenings/1/booked-seats", nil)
		s.app.GetBookedSeats(w, r, 1)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"success": true, "data": []}`, w.Body.String())
	})

	s.Run("seats of confirmed bookings", func() {
		s.SetupTest()
		s.screeningRepo.On("GetById", mock.Anything, 1).Return(testScreening(), nil)
		s.bookingRepo.On("GetBookedSeats", mock.Anything, 1).Return([]string{"1-1", "2-1"}, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/screenings/1/booked-seats", nil)
		s.app.GetBookedSeats(w, r, 1)

		var got []string
		decodeData(s.T(), w, &got)

		s.Equal([]string{"1-1", "2-1"}, got)
	})
}

func (s *ScreeningsTestSuite) TestGetSeatMap() {
	s.Run("booked seats are marked taken", func() {
		s.SetupTest()
		s.screeningRepo.On("GetById", mock.Anything, 1).Return(testScreening(), nil)
		s.hallRepo.On("GetById", mock.Anything, 1).Return(testHall(), nil)
		s.bookingRepo.On("GetBookedSeats", mock.Anything, 1).Return([]string{"1-1"}, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/screenings/1/seat-map", nil)
		s.app.GetSeatMap(w, r, 1)

		s.Equal(http.StatusOK, w.Code)

		var got api.SeatMapResponse
		decodeData(s.T(), w, &got)

		want := api.SeatMapResponse{
			ScreeningId: 1,
			HallId:      1,
			State:       "ready",
			BookedCount: 1,
			Rows: [][]api.SeatView{
				{
					{Type: "taken", Row: 1, Number: 1, Price: decimal.NewFromInt(800)},
					{Type: "vip", Row: 1, Number: 2, Price: decimal.NewFromInt(800)},
				},
				{
					{Type: "standard", Row: 2, Number: 1, Price: decimal.NewFromInt(500)},
					{Type: "standard", Row: 2, Number: 2, Price: decimal.NewFromInt(500)},
				},
			},
		}

		if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
			s.T().Errorf("seat map mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("malformed layout is not configured", func() {
		s.SetupTest()

		hall := testHall()
		hall.Layout = nil
		hall.LayoutMalformed = true

		s.screeningRepo.On("GetById", mock.Anything, 1).Return(testScreening(), nil)
		s.hallRepo.On("GetById", mock.Anything, 1).Return(hall, nil)
		s.bookingRepo.On("GetBookedSeats", mock.Anything, 1).Return([]string{}, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/screenings/1/seat-map", nil)
		s.app.GetSeatMap(w, r, 1)

		var got api.SeatMapResponse
		decodeData(s.T(), w, &got)

		s.Equal("not_configured", got.State)
		s.Empty(got.Rows)
	})
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})
