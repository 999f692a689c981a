package post

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"social-service/internal/follower"
	"social-service/internal/user"
)

type fixture struct {
	router        *http.ServeMux
	repo          Repository
	users         user.Repository
	followers     follower.Repository
	userID        uint
	followerID    uint
	notFollowerID uint
}

// newFixture seeds one user with a post, one user following them, and
// one user who doesn't.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}, &follower.Follower{}, &Post{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	users := user.NewRepository(db)
	u := &user.User{Name: "Fulano", Age: 30}
	notF := &user.User{Name: "Outro", Age: 22}
	f := &user.User{Name: "Gin", Age: 23}
	for _, x := range []*user.User{u, notF, f} {
		if err := users.Create(t.Context(), x); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	followers := follower.NewRepository(db)
	edge := &follower.Follower{UserID: u.ID, FollowerID: f.ID, CreatedAt: time.Now()}
	if err := followers.Create(t.Context(), edge); err != nil {
		t.Fatalf("seed follower edge: %v", err)
	}

	repo := NewRepository(db)
	if err := repo.Create(t.Context(), &Post{UserID: u.ID, Text: "UEPAAAA", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	router := http.NewServeMux()
	NewHandler(router, NewService(repo, users, followers, nil))

	return &fixture{
		router:        router,
		repo:          repo,
		users:         users,
		followers:     followers,
		userID:        u.ID,
		followerID:    f.ID,
		notFollowerID: notF.ID,
	}
}

func (fx *fixture) listPosts(t *testing.T, userID uint, followerHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d/posts", userID), nil)
	if followerHeader != "" {
		req.Header.Set("followerId", followerHeader)
	}
	rr := httptest.NewRecorder()
	fx.router.ServeHTTP(rr, req)
	return rr
}

func TestCreatePost(t *testing.T) {
	fx := newFixture(t)

	req, _ := http.NewRequest(http.MethodPost,
		fmt.Sprintf("/users/%d/posts", fx.userID), strings.NewReader(`{"text":"OOi"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	fx.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp PostResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == 0 || resp.Text != "OOi" || resp.DateTime.IsZero() {
		t.Errorf("unexpected projection: %+v", resp)
	}
}

func TestCreatePostUserNotFound(t *testing.T) {
	fx := newFixture(t)

	req, _ := http.NewRequest(http.MethodPost, "/users/999/posts", strings.NewReader(`{"text":"OOi"}`))
	rr := httptest.NewRecorder()
	fx.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestListPostsUserNotFound(t *testing.T) {
	fx := newFixture(t)

	rr := fx.listPosts(t, 999, fmt.Sprint(fx.followerID))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestListPostsMissingHeader(t *testing.T) {
	fx := newFixture(t)

	rr := fx.listPosts(t, fx.userID, "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "You forgot the header followerId" {
		t.Errorf("unexpected body: %q", rr.Body.String())
	}
}

func TestListPostsNonexistentFollower(t *testing.T) {
	fx := newFixture(t)

	rr := fx.listPosts(t, fx.userID, "999")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "Nonexistent followerId" {
		t.Errorf("unexpected body: %q", rr.Body.String())
	}
}

func TestListPostsNotAFollower(t *testing.T) {
	fx := newFixture(t)

	rr := fx.listPosts(t, fx.userID, fmt.Sprint(fx.notFollowerID))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "You can't see these posts" {
		t.Errorf("unexpected body: %q", rr.Body.String())
	}
}

func TestListPosts(t *testing.T) {
	fx := newFixture(t)

	rr := fx.listPosts(t, fx.userID, fmt.Sprint(fx.followerID))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var posts []PostResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 1 || posts[0].Text != "UEPAAAA" {
		t.Errorf("expected the seeded post, got %+v", posts)
	}
}

func TestListPostsMostRecentFirst(t *testing.T) {
	fx := newFixture(t)

	base := time.Now()
	older := &Post{UserID: fx.userID, Text: "older", CreatedAt: base.Add(-2 * time.Hour)}
	newer := &Post{UserID: fx.userID, Text: "newer", CreatedAt: base.Add(time.Hour)}
	for _, p := range []*Post{older, newer} {
		if err := fx.repo.Create(t.Context(), p); err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}

	rr := fx.listPosts(t, fx.userID, fmt.Sprint(fx.followerID))
	var posts []PostResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].Text != "newer" || posts[2].Text != "older" {
		t.Errorf("expected most-recent-first order, got %q, %q, %q",
			posts[0].Text, posts[1].Text, posts[2].Text)
	}
}

// Full scenario from the behavior contract: A and B exist, B follows A,
// A posts, B can read, A cannot read their own posts without following.
func TestVisibilityScenario(t *testing.T) {
	fx := newFixture(t)

	a := &user.User{Name: "A", Age: 30}
	b := &user.User{Name: "B", Age: 30}
	for _, x := range []*user.User{a, b} {
		if err := fx.users.Create(t.Context(), x); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if err := fx.followers.Create(t.Context(), &follower.Follower{UserID: a.ID, FollowerID: b.ID, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("follow: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPost,
		fmt.Sprintf("/users/%d/posts", a.ID), strings.NewReader(`{"text":"hi"}`))
	rr := httptest.NewRecorder()
	fx.router.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create post: expected 201, got %d", rr.Code)
	}

	rr = fx.listPosts(t, a.ID, fmt.Sprint(b.ID))
	if rr.Code != http.StatusOK {
		t.Fatalf("list as follower: expected 200, got %d", rr.Code)
	}
	var posts []PostResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 1 || posts[0].Text != "hi" {
		t.Errorf("expected one post 'hi', got %+v", posts)
	}

	rr = fx.listPosts(t, a.ID, fmt.Sprint(a.ID))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("list as self: expected 403, got %d", rr.Code)
	}
}
