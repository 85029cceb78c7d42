package entities

import (
	"time"
)

// Extra services a reservation can carry. Each selected extra is billed
// per night on top of the room rate.
const (
	ExtraWiFi      = "WiFi"
	ExtraFullBoard = "Full-board"
	ExtraGym       = "Gym"
	ExtraSpa       = "Spa"
	ExtraParking   = "Parking"
)

type Extra struct {
	Name     string `json:"name" validate:"required,oneof=WiFi Full-board Gym Spa Parking"`
	Selected bool   `json:"value"`
}

// ==========================================
// 1. REQUEST MODELS
// ==========================================

type ReservationRequest struct {
	UserEmail string  `json:"userEmail"` // Diisi dari token, bukan body
	RoomType  string  `json:"roomType" validate:"required"`
	CheckIn   string  `json:"check_in_date" validate:"required"`
	CheckOut  string  `json:"check_out_date" validate:"required"`
	Occupancy int     `json:"occupancy" validate:"required,min=1"`
	Extras    []Extra `json:"extras" validate:"max=5,dive"`
}

// ==========================================
// 2. PERSISTED / RESPONSE MODELS
// ==========================================

type Reservation struct {
	ID               string     `json:"id"`
	UserEmail        string     `json:"userEmail"`
	RoomType         string     `json:"roomType"`
	RoomNumber       int        `json:"room_number"`
	CheckIn          time.Time  `json:"check_in_date"`
	CheckOut         time.Time  `json:"check_out_date"`
	Nights           int        `json:"nights"`
	Occupancy        int        `json:"occupancy"`
	Extras           []Extra    `json:"extras"`
	TotalPrice       int64      `json:"total_price"` // minor units (cents)
	CancellationDate *time.Time `json:"cancelation_date,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// BookedWindow is the overlap-query projection: which room is taken and
// for which window. Windows are half-open [check_in, check_out).
type BookedWindow struct {
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
}

// Overlaps reports whether two windows on the same room intersect.
// Strict inequalities: a 16:00 checkout still conflicts with a 14:00
// check-in on the same day because both stamps fall inside both windows.
func (w BookedWindow) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(w.CheckOut) && checkOut.After(w.CheckIn)
}
