package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rater/internal/delivery/http/validator"
	"rater/internal/domain/entity"
	domainerrors "rater/internal/domain/errors"
	mockUsecase "rater/internal/mocks/usecase"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestContext builds an echo context with the platform validator attached.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// setCaller mirrors what the auth middleware does after token validation.
func setCaller(c echo.Context, caller usecase.Caller) {
	c.Set("caller", caller)
}

func TestRatingHandler_Submit(t *testing.T) {
	uc := mockUsecase.NewMockRatingUsecase(t)
	h := NewRatingHandler(uc, testLogger())

	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	storeID := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/api/ratings",
		`{"storeId":"`+storeID.String()+`","rating":4}`)
	setCaller(c, caller)

	uc.EXPECT().
		Submit(mock.Anything, caller, &usecase.SubmitRatingInput{StoreID: storeID, Value: 4}).
		Return(&entity.Rating{ID: uuid.New(), UserID: caller.UserID, StoreID: storeID, Value: 4}, nil)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rating":4`)
}

func TestRatingHandler_Submit_MissingCaller(t *testing.T) {
	h := NewRatingHandler(mockUsecase.NewMockRatingUsecase(t), testLogger())

	c, rec := newTestContext(t, http.MethodPost, "/api/ratings", `{"storeId":"`+uuid.New().String()+`","rating":4}`)

	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRatingHandler_Submit_ValueOutOfRange(t *testing.T) {
	h := NewRatingHandler(mockUsecase.NewMockRatingUsecase(t), testLogger())

	c, _ := newTestContext(t, http.MethodPost, "/api/ratings", `{"storeId":"`+uuid.New().String()+`","rating":9}`)
	setCaller(c, usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser})

	err := h.Submit(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestRatingHandler_Delete_InvalidID(t *testing.T) {
	h := NewRatingHandler(mockUsecase.NewMockRatingUsecase(t), testLogger())

	c, rec := newTestContext(t, http.MethodDelete, "/api/ratings/not-a-uuid", "")
	setCaller(c, usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRatingHandler_StoreRatings(t *testing.T) {
	uc := mockUsecase.NewMockRatingUsecase(t)
	h := NewRatingHandler(uc, testLogger())

	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}
	storeID := uuid.New()

	c, rec := newTestContext(t, http.MethodGet, "/api/ratings/store/"+storeID.String(), "")
	setCaller(c, caller)
	c.SetParamNames("storeId")
	c.SetParamValues(storeID.String())

	uc.EXPECT().
		StoreRatings(mock.Anything, caller, storeID).
		Return(&usecase.StoreRatingsOutput{
			Ratings: []*entity.Rating{
				{ID: uuid.New(), StoreID: storeID, Value: 4, User: &entity.User{Name: "First Rater With A Long Name"}},
				{ID: uuid.New(), StoreID: storeID, Value: 5},
			},
			Summary: entity.RatingSummary{Average: 4.5, Count: 2},
		}, nil)

	require.NoError(t, h.StoreRatings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"averageRating":4.5`)
	assert.Contains(t, rec.Body.String(), `"totalRatings":2`)
	assert.Contains(t, rec.Body.String(), "First Rater With A Long Name")
}

func TestRatingHandler_StoreRatings_ForbiddenPassesThrough(t *testing.T) {
	uc := mockUsecase.NewMockRatingUsecase(t)
	h := NewRatingHandler(uc, testLogger())

	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	storeID := uuid.New()

	c, _ := newTestContext(t, http.MethodGet, "/api/ratings/store/"+storeID.String(), "")
	setCaller(c, caller)
	c.SetParamNames("storeId")
	c.SetParamValues(storeID.String())

	uc.EXPECT().
		StoreRatings(mock.Anything, caller, storeID).
		Return(nil, domainerrors.ErrStoreRatingsForbidden)

	err := h.StoreRatings(c)
	assert.ErrorIs(t, err, domainerrors.ErrStoreRatingsForbidden)
}

func TestRatingHandler_UserRatings(t *testing.T) {
	uc := mockUsecase.NewMockRatingUsecase(t)
	h := NewRatingHandler(uc, testLogger())

	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}

	c, rec := newTestContext(t, http.MethodGet, "/api/ratings/user", "")
	setCaller(c, caller)

	uc.EXPECT().
		UserRatings(mock.Anything, caller).
		Return([]*entity.Rating{
			{ID: uuid.New(), UserID: caller.UserID, Value: 3, Store: &entity.Store{Name: "Corner Cafe"}},
		}, nil)

	require.NoError(t, h.UserRatings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Corner Cafe")
}
