package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ynaut/services/post/internal/entity"
	"ynaut/services/post/internal/repo/persistent"
	"ynaut/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) GetFeed() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) CreatePost(userID, content string, channelID *string, mediaData, mediaType string) (*usecase.CreatePostResult, error) {
	args := m.Called(userID, content, channelID, mediaData, mediaType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CreatePostResult), args.Error(1)
}

func (m *MockPostUseCase) ToggleLike(postID, userID string, isSuperLike bool) (*persistent.LikeResult, error) {
	args := m.Called(postID, userID, isSuperLike)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistent.LikeResult), args.Error(1)
}

func (m *MockPostUseCase) CreateComment(postID, userID, content string) (*usecase.CommentResult, error) {
	args := m.Called(postID, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CommentResult), args.Error(1)
}

func (m *MockPostUseCase) GetComments(postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func setupTestRouter(handler *PostHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/posts", handler.GetFeed)
	r.POST("/posts", handler.HandleAction)
	return r
}

func postAction(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGetFeed_BoostedFirst(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)
	router := setupTestRouter(handler)

	posts := []*entity.Post{
		{ID: "post-2", Content: "boosted", IsBoosted: true},
		{ID: "post-1", Content: "plain"},
	}
	mockUseCase.On("GetFeed").Return(posts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	feed := response["posts"].([]interface{})
	assert.Len(t, feed, 2)
	first := feed[0].(map[string]interface{})
	assert.Equal(t, true, first["is_boosted"])
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)
	router := setupTestRouter(handler)

	result := &usecase.CreatePostResult{
		Post:       &entity.Post{ID: "post-1", Content: "hello"},
		NewBalance: 120,
		Reward:     20,
	}
	mockUseCase.On("CreatePost", "user-1", "hello", (*string)(nil), "", "").Return(result, nil)

	w := postAction(router, `{"action":"create","user_id":"user-1","content":"hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, float64(20), response["reward"])
	assert.Equal(t, float64(120), response["yn_balance"])
}

func TestCreatePost_MissingContent(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)
	router := setupTestRouter(handler)

	w := postAction(router, `{"action":"create","user_id":"user-1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreatePost")
}

func TestLike_Toggle(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)
	router := setupTestRouter(handler)

	mockUseCase.On("ToggleLike", "post-1", "user-1", false).
		Return(&persistent.LikeResult{Liked: true, LikesCount: 1}, nil).Once()
	mockUseCase.On("ToggleLike", "post-1", "user-1", false).
		Return(&persistent.LikeResult{Liked: false, LikesCount: 0}, nil).Once()

	w := postAction(router, `{"action":"like","user_id":"user-1","post_id":"post-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var first map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &first)
	assert.Equal(t, true, first["liked"])
	assert.Equal(t, float64(1), first["likes_count"])

	w = postAction(router, `{"action":"like","user_id":"user-1","post_id":"post-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var second map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &second)
	assert.Equal(t, false, second["liked"])
	assert.Equal(t, float64(0), second["likes_count"])
}

func TestSuperLike_CountsThree(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)
	router := setupTestRouter(handler)

	mockUseCase.On("ToggleLike", "post-1", "user-1", true).
		Return(&persistent.LikeResult{Liked: true, LikesCount: 3}, nil)

	w := postAction(router, `{"action":"like","user_id":"user-1","post_id":"post-1","use_super_like":true}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(3), response["likes_count"])
}

func TestSuperLike_Exhausted(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)
	router := setupTestRouter(handler)

	mockUseCase.On("ToggleLike", "post-1", "user-1", true).Return(nil, usecase.ErrNoSuperLikes)

	w := postAction(router, `{"action":"like","user_id":"user-1","post_id":"post-1","use_super_like":true}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no super likes")
}

func TestLike_PostNotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)
	router := setupTestRouter(handler)

	mockUseCase.On("ToggleLike", "missing", "user-1", false).Return(nil, usecase.ErrPostNotFound)

	w := postAction(router, `{"action":"like","user_id":"user-1","post_id":"missing"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestComment_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)
	router := setupTestRouter(handler)

	result := &usecase.CommentResult{
		Comment:       &entity.Comment{ID: "c-1", PostID: "post-1", Content: "nice"},
		CommentsCount: 4,
		Reward:        10,
	}
	mockUseCase.On("CreateComment", "post-1", "user-1", "nice").Return(result, nil)

	w := postAction(router, `{"action":"comment","user_id":"user-1","post_id":"post-1","content":"nice"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(4), response["comments_count"])
	assert.Equal(t, float64(10), response["reward"])
}

func TestGetComments_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)
	router := setupTestRouter(handler)

	comments := []*entity.Comment{{ID: "c-1", Content: "first"}, {ID: "c-2", Content: "second"}}
	mockUseCase.On("GetComments", "post-1").Return(comments, nil)

	w := postAction(router, `{"action":"get_comments","post_id":"post-1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "c-2")
}

func TestInvalidAction(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase)
	router := setupTestRouter(handler)

	w := postAction(router, `{"action":"boost"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid action")
}
