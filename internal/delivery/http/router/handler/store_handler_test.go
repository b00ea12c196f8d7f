package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"rater/internal/domain/entity"
	domainerrors "rater/internal/domain/errors"
	mockUsecase "rater/internal/mocks/usecase"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreHandler_List_PassesFilters(t *testing.T) {
	uc := mockUsecase.NewMockStoreUsecase(t)
	h := NewStoreHandler(uc, testLogger())

	c, rec := newTestContext(t, http.MethodGet, "/api/stores?name=cafe&sortBy=name&sortOrder=desc", "")

	uc.EXPECT().
		List(mock.Anything, &usecase.ListStoresInput{Name: "cafe", SortBy: "name", SortOrder: "desc"}).
		Return([]*usecase.StoreView{
			{
				Store:   &entity.Store{ID: uuid.New(), Name: "Corner Cafe"},
				Summary: entity.RatingSummary{Average: 4.5, Count: 2},
			},
		}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"averageRating":4.5`)
	assert.Contains(t, rec.Body.String(), "Corner Cafe")
}

func TestStoreHandler_GetByID_AnonymousViewer(t *testing.T) {
	uc := mockUsecase.NewMockStoreUsecase(t)
	h := NewStoreHandler(uc, testLogger())

	storeID := uuid.New()

	c, rec := newTestContext(t, http.MethodGet, "/api/stores/"+storeID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(storeID.String())

	uc.EXPECT().
		GetByID(mock.Anything, storeID, (*uuid.UUID)(nil)).
		Return(&usecase.StoreDetail{
			StoreView: usecase.StoreView{
				Store:   &entity.Store{ID: storeID, Name: "Corner Cafe"},
				Summary: entity.RatingSummary{Average: 4.0, Count: 3},
			},
		}, nil)

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "userRating")
}

func TestStoreHandler_GetByID_AuthenticatedViewerSeesOwnRating(t *testing.T) {
	uc := mockUsecase.NewMockStoreUsecase(t)
	h := NewStoreHandler(uc, testLogger())

	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	storeID := uuid.New()
	own := 4

	c, rec := newTestContext(t, http.MethodGet, "/api/stores/"+storeID.String(), "")
	setCaller(c, caller)
	c.SetParamNames("id")
	c.SetParamValues(storeID.String())

	uc.EXPECT().
		GetByID(mock.Anything, storeID, &caller.UserID).
		Return(&usecase.StoreDetail{
			StoreView: usecase.StoreView{
				Store:   &entity.Store{ID: storeID, Name: "Corner Cafe"},
				Summary: entity.RatingSummary{Average: 4.0, Count: 1},
			},
			UserRating: &own,
		}, nil)

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userRating":4`)
}

func TestStoreHandler_Create_ForbiddenPassesThrough(t *testing.T) {
	uc := mockUsecase.NewMockStoreUsecase(t)
	h := NewStoreHandler(uc, testLogger())

	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}

	body := `{
		"name": "Corner Cafe",
		"email": "store@example.com",
		"address": "台北市",
		"ownerName": "An Owner With A Long Enough Name",
		"ownerEmail": "owner@example.com",
		"ownerPassword": "Sup3rSecret!",
		"ownerAddress": ""
	}`

	c, _ := newTestContext(t, http.MethodPost, "/api/stores", body)
	setCaller(c, caller)

	uc.EXPECT().
		CreateStoreWithOwner(mock.Anything, caller, mock.AnythingOfType("*usecase.CreateStoreInput")).
		Return(nil, domainerrors.ErrForbidden)

	err := h.Create(c)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStoreHandler_Create_RejectsShortStoreName(t *testing.T) {
	h := NewStoreHandler(mockUsecase.NewMockStoreUsecase(t), testLogger())

	body := `{
		"name": "C",
		"email": "store@example.com",
		"ownerName": "An Owner With A Long Enough Name",
		"ownerEmail": "owner@example.com",
		"ownerPassword": "Sup3rSecret!"
	}`

	c, _ := newTestContext(t, http.MethodPost, "/api/stores", body)
	setCaller(c, usecase.Caller{UserID: uuid.New(), Role: entity.RoleAdmin})

	err := h.Create(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
