package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/anjui2025/MyMediaTrek/internal/config"
	"github.com/anjui2025/MyMediaTrek/internal/handler"
	"github.com/anjui2025/MyMediaTrek/internal/model"
	"github.com/anjui2025/MyMediaTrek/internal/repository"
	"github.com/anjui2025/MyMediaTrek/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-jwt-secret"
	testAdminKey  = "test-admin-key"
)

// fakeUserStore 内存版用户存储，错误语义与 UserRepository 一致
type fakeUserStore struct {
	users  map[string]*model.User
	nextID int
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(username, password string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.users[username]; ok {
		return nil, repository.ErrDuplicateUsername
	}
	f.nextID++
	u := &model.User{
		UserID:       f.nextID,
		Username:     username,
		PasswordHash: "hash:" + password,
		CreatedAt:    time.Now(),
	}
	f.users[username] = u
	return u, nil
}

func (f *fakeUserStore) FindByUsername(username string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[username], nil
}

func (f *fakeUserStore) CheckPassword(user *model.User, password string) bool {
	if user == nil {
		return false
	}
	return user.PasswordHash == "hash:"+password
}

// fakeMediaStore 内存版片单存储，复刻 MediaRepository 的租户过滤语义
type fakeMediaStore struct {
	items  map[int]*model.MediaItem
	nextID int
	err    error
}

func newFakeMediaStore() *fakeMediaStore {
	return &fakeMediaStore{items: make(map[int]*model.MediaItem)}
}

func (f *fakeMediaStore) ListByUser(userID int, titleFilter string) ([]model.MediaItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.MediaItem, 0)
	for _, it := range f.items {
		if it.UserID != userID {
			continue
		}
		if titleFilter != "" && !strings.Contains(strings.ToLower(it.Title), strings.ToLower(titleFilter)) {
			continue
		}
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AddedDate.After(out[j].AddedDate)
	})
	return out, nil
}

func (f *fakeMediaStore) Create(item *model.MediaItem) error {
	if f.err != nil {
		return f.err
	}
	for _, it := range f.items {
		if it.UserID == item.UserID && it.Title == item.Title {
			return repository.ErrDuplicateTitle
		}
	}
	f.nextID++
	item.MediaID = f.nextID
	// 人为递增时间戳，保证倒序排序可断言
	item.AddedDate = time.Unix(1700000000, 0).Add(time.Duration(f.nextID) * time.Second)
	cp := *item
	f.items[item.MediaID] = &cp
	return nil
}

func (f *fakeMediaStore) Update(mediaID, userID int, item *model.MediaItem) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	existing, ok := f.items[mediaID]
	if !ok || existing.UserID != userID {
		return 0, nil
	}
	for id, it := range f.items {
		if id != mediaID && it.UserID == userID && it.Title == item.Title {
			return 0, repository.ErrDuplicateTitle
		}
	}
	existing.Title = item.Title
	existing.MediaType = item.MediaType
	existing.Status = item.Status
	existing.CurrentProgress = item.CurrentProgress
	existing.Rating = item.Rating
	existing.Comment = item.Comment
	return 1, nil
}

func (f *fakeMediaStore) Delete(mediaID, userID int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	existing, ok := f.items[mediaID]
	if !ok || existing.UserID != userID {
		return 0, nil
	}
	delete(f.items, mediaID)
	return 1, nil
}

// newTestServer 组装完整路由，存储层使用内存假对象
func newTestServer(t *testing.T) (*gin.Engine, *fakeUserStore, *fakeMediaStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newFakeUserStore()
	media := newFakeMediaStore()
	h := &handler.Handler{
		Users: users,
		Media: media,
		Config: &config.Config{
			JWTSecret:      testJWTSecret,
			AdminMasterKey: testAdminKey,
			JWTExpiry:      time.Hour,
		},
	}

	r := gin.New()
	router.RegisterRoutes(r, h)
	return r, users, media
}

// doJSON 发送 JSON 请求并返回响应
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody 解析响应体
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerAndLogin 注册用户并登录，返回可用的 Bearer Token
func registerAndLogin(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/admin/register",
		map[string]string{"username": username, "password": password},
		map[string]string{"X-Admin-Key": testAdminKey})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login",
		map[string]string{"username": username, "password": password}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeBody(t, w)["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
