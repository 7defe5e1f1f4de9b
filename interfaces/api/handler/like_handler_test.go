// interfaces/api/handler/like_handler_test.go
package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/altsora/SocialNetwork-sub000/domain/dto"
)

// MockLikeService is a mock implementation of service.LikeService.
type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) LikeExists(personID, itemID uuid.UUID, likeType dto.LikeType) (bool, error) {
	args := m.Called(personID, itemID, likeType)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeService) PutLike(personID, itemID uuid.UUID, likeType dto.LikeType) (bool, error) {
	args := m.Called(personID, itemID, likeType)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeService) RemoveLike(personID, itemID uuid.UUID, likeType dto.LikeType) error {
	args := m.Called(personID, itemID, likeType)
	return args.Error(0)
}

func (m *MockLikeService) GetUsersOfLike(itemID uuid.UUID, likeType dto.LikeType) ([]uuid.UUID, error) {
	args := m.Called(itemID, likeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockLikeService) GetCount(itemID uuid.UUID, likeType dto.LikeType) (int64, error) {
	args := m.Called(itemID, likeType)
	return args.Get(0).(int64), args.Error(1)
}

func newLikeTestApp(likeService *MockLikeService) *fiber.App {
	app := fiber.New()
	h := NewLikeHandler(likeService)
	app.Put("/likes", h.Put)
	app.Delete("/likes", h.Delete)
	return app
}

func putLikeRequest(itemID uuid.UUID, likeType dto.LikeType) *http.Request {
	body, _ := json.Marshal(dto.PutLikeRequest{ItemID: itemID, Type: likeType})
	req := httptest.NewRequest(http.MethodPut, "/likes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPutLikeDuplicateAnswers400(t *testing.T) {
	likeService := new(MockLikeService)
	app := newLikeTestApp(likeService)

	itemID := uuid.New()
	likeService.On("PutLike", mock.Anything, itemID, dto.LikeTypePost).Return(false, nil)

	resp, err := app.Test(putLikeRequest(itemID, dto.LikeTypePost))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var envelope dto.CommonResponse
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &envelope))
	assert.NotNil(t, envelope.Error)
	assert.Equal(t, "invalid_request", *envelope.Error)
	assert.Equal(t, "like already exists", envelope.Data)
	likeService.AssertNotCalled(t, "GetUsersOfLike", mock.Anything, mock.Anything)
}

func TestPutLikeCreatedAnswersSummary(t *testing.T) {
	likeService := new(MockLikeService)
	app := newLikeTestApp(likeService)

	itemID := uuid.New()
	personID := uuid.New()
	likeService.On("PutLike", mock.Anything, itemID, dto.LikeTypePost).Return(true, nil)
	likeService.On("GetUsersOfLike", itemID, dto.LikeTypePost).Return([]uuid.UUID{personID}, nil)

	resp, err := app.Test(putLikeRequest(itemID, dto.LikeTypePost))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope dto.CommonResponse
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Nil(t, envelope.Error)
}

func TestDeleteAbsentLikeAnswersSummary(t *testing.T) {
	likeService := new(MockLikeService)
	app := newLikeTestApp(likeService)

	itemID := uuid.New()
	likeService.On("RemoveLike", mock.Anything, itemID, dto.LikeTypeComment).Return(nil)
	likeService.On("GetUsersOfLike", itemID, dto.LikeTypeComment).Return([]uuid.UUID{}, nil)

	target := fmt.Sprintf("/likes?item_id=%s&type=%s", itemID, dto.LikeTypeComment)
	req := httptest.NewRequest(http.MethodDelete, target, nil)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
