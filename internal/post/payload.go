package post

import "time"

type CreatePostRequest struct {
	Text string `json:"text"`
}

type PostResponse struct {
	ID       uint      `json:"id"`
	Text     string    `json:"text"`
	DateTime time.Time `json:"dateTime"`
}

func toResponse(p *Post) PostResponse {
	return PostResponse{
		ID:       p.ID,
		Text:     p.Text,
		DateTime: p.CreatedAt,
	}
}
