package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ynaut/services/channel/internal/entity"
	"ynaut/services/channel/internal/repo/persistent"
	"ynaut/services/channel/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockChannelUseCase struct {
	mock.Mock
}

func (m *MockChannelUseCase) ListChannels() ([]*entity.Channel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Channel), args.Error(1)
}

func (m *MockChannelUseCase) GetChannel(channelID string) (*entity.Channel, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Channel), args.Error(1)
}

func (m *MockChannelUseCase) CreateChannel(ownerID, name, description string, isPrivate bool, avatarData, avatarType string) (*usecase.CreateChannelResult, error) {
	args := m.Called(ownerID, name, description, isPrivate, avatarData, avatarType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CreateChannelResult), args.Error(1)
}

func (m *MockChannelUseCase) ToggleSubscription(channelID, userID string) (*persistent.ToggleResult, error) {
	args := m.Called(channelID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistent.ToggleResult), args.Error(1)
}

func (m *MockChannelUseCase) GetChannelPosts(channelID string) ([]*entity.ChannelPost, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ChannelPost), args.Error(1)
}

var _ usecase.ChannelUseCase = (*MockChannelUseCase)(nil)

func setupTestRouter(handler *ChannelHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/channels", handler.ListChannels)
	r.POST("/channels", handler.HandleAction)
	return r
}

func postAction(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/channels", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestListChannels(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase)
	router := setupTestRouter(handler)

	channels := []*entity.Channel{
		{ID: "ch-1", Name: "golang", SubscribersCount: 12},
		{ID: "ch-2", Name: "music", SubscribersCount: 3},
	}
	mockUseCase.On("ListChannels").Return(channels, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/channels", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	assert.Len(t, response["channels"], 2)
}

func TestGetChannel_NotFound(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase)
	router := setupTestRouter(handler)

	mockUseCase.On("GetChannel", "missing").Return(nil, usecase.ErrChannelNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/channels?channel_id=missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "channel not found")
}

func TestCreateChannel_Success(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase)
	router := setupTestRouter(handler)

	mockUseCase.On("CreateChannel", "user-1", "golang", "all things go", false, "", "").
		Return(&usecase.CreateChannelResult{ChannelID: "ch-1", NewBalance: 150, Reward: 50}, nil)

	w := postAction(router, `{"action":"create","user_id":"user-1","name":"golang","description":"all things go"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "ch-1", response["channel_id"])
	assert.Equal(t, float64(50), response["reward"])
	assert.Equal(t, float64(150), response["yn_balance"])
}

func TestCreateChannel_MissingName(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase)
	router := setupTestRouter(handler)

	w := postAction(router, `{"action":"create","user_id":"user-1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateChannel")
}

func TestSubscribe_Toggle(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase)
	router := setupTestRouter(handler)

	mockUseCase.On("ToggleSubscription", "ch-1", "user-1").
		Return(&persistent.ToggleResult{Subscribed: true, SubscribersCount: 5}, nil).Once()
	mockUseCase.On("ToggleSubscription", "ch-1", "user-1").
		Return(&persistent.ToggleResult{Subscribed: false, SubscribersCount: 4}, nil).Once()

	w := postAction(router, `{"action":"subscribe","user_id":"user-1","channel_id":"ch-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var first map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &first)
	assert.Equal(t, true, first["subscribed"])
	assert.Equal(t, float64(5), first["subscribers_count"])

	w = postAction(router, `{"action":"subscribe","user_id":"user-1","channel_id":"ch-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var second map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &second)
	assert.Equal(t, false, second["subscribed"])
	assert.Equal(t, float64(4), second["subscribers_count"])
}

func TestSubscribe_ChannelNotFound(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase)
	router := setupTestRouter(handler)

	mockUseCase.On("ToggleSubscription", "missing", "user-1").Return(nil, usecase.ErrChannelNotFound)

	w := postAction(router, `{"action":"subscribe","user_id":"user-1","channel_id":"missing"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPosts_Success(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase)
	router := setupTestRouter(handler)

	posts := []*entity.ChannelPost{{ID: "post-1", Content: "hello"}}
	mockUseCase.On("GetChannelPosts", "ch-1").Return(posts, nil)

	w := postAction(router, `{"action":"get_posts","channel_id":"ch-1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "post-1")
}

func TestInvalidAction(t *testing.T) {
	mockUseCase := new(MockChannelUseCase)
	handler := NewChannelHandler(mockUseCase)
	router := setupTestRouter(handler)

	w := postAction(router, `{"action":"promote"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid action")
}
