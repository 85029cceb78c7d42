package usecases

import (
	"fmt"
	"time"

	"BE-Hotel-Booking/app/entities"
)

// Business-rule constants: every stay starts at 14:00 and ends at 16:00,
// and the earliest bookable check-in is today at 14:00.
const (
	checkInHour  = 14
	checkOutHour = 16
)

// The engine consumes read-only snapshots of the room directory, the
// reservation book and the price table. It never writes through them.
type RoomDirectory interface {
	ListRoomsByType(roomType string) ([]entities.RoomCandidate, error)
}

type OverlapFinder interface {
	FindOverlapping(roomNumbers []int, checkIn, checkOut time.Time, excludeID string) ([]entities.BookedWindow, error)
}

type PriceSource interface {
	GetPriceTable() (entities.PriceTable, error)
}

// AdmissionEngine decides whether a reservation request can be admitted:
// it validates the date window, detects overlaps on candidate rooms,
// allocates a concrete room number and computes the total price. It is a
// pure decision function: no persistence, no identity assignment.
type AdmissionEngine struct {
	rooms        RoomDirectory
	reservations OverlapFinder
	prices       PriceSource
	now          func() time.Time
}

func NewAdmissionEngine(rooms RoomDirectory, reservations OverlapFinder, prices PriceSource) *AdmissionEngine {
	return &AdmissionEngine{
		rooms:        rooms,
		reservations: reservations,
		prices:       prices,
		now:          time.Now,
	}
}

// Admit runs the full admission flow for a new reservation. The returned
// Reservation is unsaved; persisting it is the caller's commit point.
func (e *AdmissionEngine) Admit(req entities.ReservationRequest) (*entities.Reservation, error) {
	return e.admit(req, "")
}

// ReValidate runs the same flow for an edit, excluding the reservation's
// own prior booking from overlap consideration so it never conflicts with
// itself.
func (e *AdmissionEngine) ReValidate(existingID string, req entities.ReservationRequest) (*entities.Reservation, error) {
	return e.admit(req, existingID)
}

func (e *AdmissionEngine) admit(req entities.ReservationRequest, excludeID string) (*entities.Reservation, error) {
	if req.Occupancy < 1 {
		return nil, reject(RejectInvalidOccupancy, "occupancy must be at least 1")
	}

	window, err := e.validateWindow(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	prices, err := e.prices.GetPriceTable()
	if err != nil {
		return nil, fmt.Errorf("load price table: %w", err)
	}

	baseRate, ok := prices.Price(req.RoomType)
	if !ok {
		return nil, reject(RejectUnknownRoomType, fmt.Sprintf("no price entry for room type %q", req.RoomType))
	}

	candidates, err := e.candidateRooms(req.RoomType)
	if err != nil {
		return nil, err
	}

	overlapping, err := e.reservations.FindOverlapping(candidates, window.checkIn, window.checkOut, excludeID)
	if err != nil {
		return nil, fmt.Errorf("find overlapping reservations: %w", err)
	}

	roomNumber, err := allocateRoom(candidates, overlapping)
	if err != nil {
		return nil, err
	}

	total, err := totalPrice(prices, baseRate, window.nights, req.Occupancy, req.Extras)
	if err != nil {
		return nil, err
	}

	return &entities.Reservation{
		UserEmail:  req.UserEmail,
		RoomType:   req.RoomType,
		RoomNumber: roomNumber,
		CheckIn:    window.checkIn,
		CheckOut:   window.checkOut,
		Nights:     window.nights,
		Occupancy:  req.Occupancy,
		Extras:     req.Extras,
		TotalPrice: total,
	}, nil
}

// ---------- date window validation ----------

type dateWindow struct {
	checkIn  time.Time
	checkOut time.Time
	nights   int
}

// validateWindow parses and normalizes the raw dates and enforces the
// lead-time rules. Lead-time checks run before the ordering check so an
// ordering error never masks a lead-time error.
func (e *AdmissionEngine) validateWindow(checkInRaw, checkOutRaw string) (dateWindow, error) {
	checkIn, err := parseDateAt(checkInRaw, checkInHour)
	if err != nil {
		return dateWindow{}, reject(RejectInvalidDateFormat, fmt.Sprintf("invalid check-in date %q, use YYYY-MM-DD", checkInRaw))
	}

	checkOut, err := parseDateAt(checkOutRaw, checkOutHour)
	if err != nil {
		return dateWindow{}, reject(RejectInvalidDateFormat, fmt.Sprintf("invalid check-out date %q, use YYYY-MM-DD", checkOutRaw))
	}

	now := e.now().UTC()
	today14 := time.Date(now.Year(), now.Month(), now.Day(), checkInHour, 0, 0, 0, time.UTC)

	if checkIn.Before(today14) {
		return dateWindow{}, reject(RejectCheckInTooEarly, "check-in date must be today or later")
	}

	minCheckOut := today14.Add(24 * time.Hour)
	if checkOut.Before(minCheckOut) {
		return dateWindow{}, reject(RejectCheckOutTooEarly, "check-out date must be at least one day after today")
	}

	if checkOut.Before(checkIn) {
		return dateWindow{}, reject(RejectCheckOutBeforeCheckIn, "check-out date cannot be before check-in date")
	}

	// check_out 16:00 minus check_in 14:00 is nights*24h + 2h, so whole
	// days gives the night count. Zero nights means a same-day window,
	// which is rejected rather than admitted as a zero-night stay.
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return dateWindow{}, reject(RejectCheckOutBeforeCheckIn, "stay must cover at least one night")
	}

	return dateWindow{checkIn: checkIn, checkOut: checkOut, nights: nights}, nil
}

// parseDateAt accepts a calendar date ("2006-01-02") or a full RFC 3339
// timestamp, and pins the result to the given hour at start of day UTC.
func parseDateAt(value string, hour int) (time.Time, error) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		day, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, err
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC), nil
}

// ---------- candidate lookup and allocation ----------

func (e *AdmissionEngine) candidateRooms(roomType string) ([]int, error) {
	rooms, err := e.rooms.ListRoomsByType(roomType)
	if err != nil {
		return nil, fmt.Errorf("list rooms of type %q: %w", roomType, err)
	}

	var candidates []int
	for _, room := range rooms {
		if room.IsAvailable {
			candidates = append(candidates, room.RoomNumber)
		}
	}

	if len(candidates) == 0 {
		return nil, reject(RejectUnknownRoomType, fmt.Sprintf("no bookable rooms of type %q", roomType))
	}

	return candidates, nil
}

// allocateRoom picks the lowest-numbered candidate not taken by an
// overlapping reservation. The minimum-number tie-break keeps allocation
// deterministic and independent of arrival order.
func allocateRoom(candidates []int, overlapping []entities.BookedWindow) (int, error) {
	occupied := make(map[int]bool, len(overlapping))
	for _, booked := range overlapping {
		occupied[booked.RoomNumber] = true
	}

	best := 0
	for _, number := range candidates {
		if occupied[number] {
			continue
		}
		if best == 0 || number < best {
			best = number
		}
	}

	if best == 0 {
		return 0, reject(RejectNoRoomAvailable, "no availability for the room type on the requested dates")
	}

	return best, nil
}

// ---------- pricing ----------

// totalPrice computes rate*nights*occupancy plus each selected extra at
// its per-night price. A missing extra price is a host misconfiguration,
// not a user error.
func totalPrice(prices entities.PriceTable, baseRate int64, nights, occupancy int, extras []entities.Extra) (int64, error) {
	total := baseRate * int64(nights) * int64(occupancy)

	for _, extra := range extras {
		if !extra.Selected {
			continue
		}

		price, ok := prices.Price(extra.Name)
		if !ok {
			return 0, reject(RejectConfiguration, fmt.Sprintf("no price entry for extra %q", extra.Name))
		}

		total += price * int64(nights)
	}

	return total, nil
}
