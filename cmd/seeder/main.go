package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = envOr("BASE_URL", "http://localhost:8080")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	// 1. Create a handful of users.
	userCount := 10
	ids := make([]uint, 0, userCount)
	for i := 0; i < userCount; i++ {
		id := createUser(gofakeit.Name(), gofakeit.Number(18, 80))
		ids = append(ids, id)
	}

	// 2. Everyone follows the first user, the first user follows a few back.
	for _, id := range ids[1:] {
		follow(ids[0], id)
	}
	for _, id := range ids[1:4] {
		follow(id, ids[0])
	}

	// 3. Posts for the first user.
	for i := 0; i < 5; i++ {
		createPost(ids[0], gofakeit.Sentence(8))
	}

	// 4. Read a few things back.
	listFollowers(ids[0])
	listPosts(ids[0], ids[1])

	log.Println("Seeding complete")
}

func createUser(name string, age int) uint {
	body := map[string]any{"name": name, "age": age}
	resp := post(fmt.Sprintf("%s/users", baseURL), body)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("create user: unexpected status %d", resp.StatusCode)
	}
	var out struct {
		ID uint `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("create user: decode: %v", err)
	}
	log.Printf("created user %d (%s)", out.ID, name)
	return out.ID
}

func follow(userID, followerID uint) {
	body := map[string]any{"followerId": followerID}
	req, _ := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/users/%d/followers", baseURL, userID), jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("follow: %v", err)
	}
	defer resp.Body.Close()
	log.Printf("follow %d -> %d: %d", followerID, userID, resp.StatusCode)
}

func createPost(userID uint, text string) {
	resp := post(fmt.Sprintf("%s/users/%d/posts", baseURL, userID), map[string]any{"text": text})
	defer resp.Body.Close()
	log.Printf("post for user %d: %d", userID, resp.StatusCode)
}

func listFollowers(userID uint) {
	resp, err := http.Get(fmt.Sprintf("%s/users/%d/followers", baseURL, userID))
	if err != nil {
		log.Fatalf("list followers: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	log.Printf("followers of %d: %s", userID, b)
}

func listPosts(userID, followerID uint) {
	req, _ := http.NewRequest(http.MethodGet,
		fmt.Sprintf("%s/users/%d/posts", baseURL, userID), nil)
	req.Header.Set("followerId", fmt.Sprintf("%d", followerID))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("list posts: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	log.Printf("posts of %d as %d: %s", userID, followerID, b)
}

func post(url string, body any) *http.Response {
	resp, err := http.Post(url, "application/json", jsonBody(body))
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func jsonBody(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}
