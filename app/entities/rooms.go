package entities

// Request body untuk endpoint rooms
type RoomRequest struct {
	RoomNumber   int    `json:"room_number" validate:"required,min=1"`
	RoomType     string `json:"type" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Rate         int64  `json:"rate" validate:"required,min=1"` // minor units (cents) per night
	MaxOccupancy int    `json:"max_occupancy" validate:"required,min=1"`
	IsAvailable  bool   `json:"isAvailable"`
}

// Response struct untuk rooms
type Room struct {
	RoomNumber   int    `json:"room_number"`
	RoomType     string `json:"type"`
	Description  string `json:"description"`
	Rate         int64  `json:"rate"`
	MaxOccupancy int    `json:"max_occupancy"`
	IsAvailable  bool   `json:"isAvailable"`
}

// RoomCandidate is the room-directory projection the admission engine
// consumes: identity plus the operator-controlled availability flag.
// Date-based occupancy is resolved separately against reservations.
type RoomCandidate struct {
	RoomNumber  int  `json:"room_number"`
	IsAvailable bool `json:"isAvailable"`
}
