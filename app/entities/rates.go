package entities

import "time"

// Rate is a guest review of a room type.
type RateRequest struct {
	RoomType string `json:"room_type" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required"`
}

type Rate struct {
	ID        int       `json:"id"`
	UserEmail string    `json:"userEmail"`
	UserName  string    `json:"userName"`
	RoomType  string    `json:"room_type"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
}
