package follower

type FollowRequest struct {
	FollowerID uint `json:"followerId"`
}

type FollowerData struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type FollowersResponse struct {
	FollowerCount int64          `json:"followerCount"`
	Content       []FollowerData `json:"content"`
}
