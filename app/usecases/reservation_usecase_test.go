package usecases

import (
	"context"
	"database/sql"
	"net/http"
	"sync"
	"testing"
	"time"

	"BE-Hotel-Booking/app/entities"
)

// memReservationRepo is an in-memory ReservationRepository sharing the
// overlap predicate with the real store.
type memReservationRepo struct {
	mu           sync.Mutex
	reservations map[string]entities.Reservation
}

func newMemReservationRepo() *memReservationRepo {
	return &memReservationRepo{reservations: make(map[string]entities.Reservation)}
}

func (m *memReservationRepo) FindOverlapping(roomNumbers []int, checkIn, checkOut time.Time, excludeID string) ([]entities.BookedWindow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inSet := make(map[int]bool, len(roomNumbers))
	for _, number := range roomNumbers {
		inSet[number] = true
	}

	var result []entities.BookedWindow
	for id, res := range m.reservations {
		if id == excludeID || res.CancellationDate != nil || !inSet[res.RoomNumber] {
			continue
		}
		window := entities.BookedWindow{RoomNumber: res.RoomNumber, CheckIn: res.CheckIn, CheckOut: res.CheckOut}
		if window.Overlaps(checkIn, checkOut) {
			result = append(result, window)
		}
	}
	return result, nil
}

func (m *memReservationRepo) Create(res entities.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations[res.ID] = res
	return nil
}

func (m *memReservationRepo) Update(res entities.Reservation) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.reservations[res.ID]
	if !ok || existing.CancellationDate != nil {
		return 0, nil
	}
	res.UserEmail = existing.UserEmail
	res.CreatedAt = existing.CreatedAt
	m.reservations[res.ID] = res
	return 1, nil
}

func (m *memReservationRepo) GetAll() ([]entities.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []entities.Reservation
	for _, res := range m.reservations {
		all = append(all, res)
	}
	return all, nil
}

func (m *memReservationRepo) GetByUserEmail(email string) ([]entities.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var mine []entities.Reservation
	for _, res := range m.reservations {
		if res.UserEmail == email {
			mine = append(mine, res)
		}
	}
	return mine, nil
}

func (m *memReservationRepo) GetByID(id string) (entities.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return entities.Reservation{}, sql.ErrNoRows
	}
	return res, nil
}

func (m *memReservationRepo) Cancel(id string, at time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok || res.CancellationDate != nil {
		return 0, nil
	}
	res.CancellationDate = &at
	m.reservations[id] = res
	return 1, nil
}

func (m *memReservationRepo) Delete(id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reservations[id]; !ok {
		return 0, nil
	}
	delete(m.reservations, id)
	return 1, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingPublisher) Publish(_ context.Context, eventType string, _ interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventType)
	return nil
}

func (r *recordingPublisher) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func newTestReservationUsecase(t *testing.T) (ReservationUsecase, *memReservationRepo, *recordingPublisher) {
	t.Helper()
	repo := newMemReservationRepo()
	engine := newTestEngine(day(2026, time.January, 5, 10), deluxeRooms(101, 102), repo, deluxePrices)
	publisher := &recordingPublisher{}
	return NewReservationUsecase(engine, repo, publisher), repo, publisher
}

func TestCreateAssignsIdentityAndPersists(t *testing.T) {
	usecase, repo, publisher := newTestReservationUsecase(t)

	created, err := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned reservation id")
	}

	stored, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("reservation was not persisted: %v", err)
	}
	if stored.RoomNumber != 101 {
		t.Errorf("room: got %d, want 101", stored.RoomNumber)
	}

	events := publisher.recorded()
	if len(events) != 1 || events[0] != EventReservationCreated {
		t.Errorf("events: got %v, want [%s]", events, EventReservationCreated)
	}
}

func TestCreateFillsRoomsInNumberOrder(t *testing.T) {
	usecase, _, _ := newTestReservationUsecase(t)

	first, err := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if first.RoomNumber != 101 || second.RoomNumber != 102 {
		t.Errorf("rooms: got %d then %d, want 101 then 102", first.RoomNumber, second.RoomNumber)
	}

	_, err = usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
	wantRejection(t, err, RejectNoRoomAvailable)
}

func TestStoreInvariantNoOverlapsPerRoom(t *testing.T) {
	usecase, repo, _ := newTestReservationUsecase(t)

	windows := [][2]string{
		{"2026-01-10", "2026-01-12"},
		{"2026-01-10", "2026-01-13"},
		{"2026-01-12", "2026-01-14"},
		{"2026-01-14", "2026-01-16"},
	}
	for _, w := range windows {
		if _, err := usecase.Create(deluxeRequest(w[0], w[1])); err != nil {
			if IsAdmissionError(err) == nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}

	all, _ := repo.GetAll()
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if a.RoomNumber != b.RoomNumber {
				continue
			}
			window := entities.BookedWindow{RoomNumber: a.RoomNumber, CheckIn: a.CheckIn, CheckOut: a.CheckOut}
			if window.Overlaps(b.CheckIn, b.CheckOut) {
				t.Errorf("persisted overlap on room %d: %v-%v and %v-%v",
					a.RoomNumber, a.CheckIn, a.CheckOut, b.CheckIn, b.CheckOut)
			}
		}
	}
}

func TestUpdateKeepsRoomWhenDatesUnchanged(t *testing.T) {
	usecase, _, publisher := newTestReservationUsecase(t)

	created, err := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// same dates, more guests: must not collide with its own booking
	req := deluxeRequest("2026-01-10", "2026-01-12")
	req.Occupancy = 2
	updated, err := usecase.Update(created.ID, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.RoomNumber != created.RoomNumber {
		t.Errorf("room changed on no-op date edit: got %d, want %d", updated.RoomNumber, created.RoomNumber)
	}
	if updated.TotalPrice != 2*created.TotalPrice {
		t.Errorf("total: got %d, want %d", updated.TotalPrice, 2*created.TotalPrice)
	}

	events := publisher.recorded()
	if len(events) != 2 || events[1] != EventReservationUpdated {
		t.Errorf("events: got %v, want created then updated", events)
	}
}

func TestUpdateUnknownReservation(t *testing.T) {
	usecase, _, _ := newTestReservationUsecase(t)

	_, err := usecase.Update("missing", deluxeRequest("2026-01-10", "2026-01-12"))
	e, ok := err.(*UseCaseError)
	if !ok || e.Code != http.StatusNotFound {
		t.Fatalf("expected 404 usecase error, got %v", err)
	}
}

func TestUpdateCancelledReservationRejected(t *testing.T) {
	usecase, _, _ := newTestReservationUsecase(t)

	created, err := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := usecase.Cancel(created.ID, created.UserEmail, "user"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err = usecase.Update(created.ID, deluxeRequest("2026-01-10", "2026-01-12"))
	e, ok := err.(*UseCaseError)
	if !ok || e.Code != http.StatusConflict {
		t.Fatalf("expected 409 usecase error, got %v", err)
	}
}

func TestCancelledReservationFreesItsRoom(t *testing.T) {
	usecase, _, _ := newTestReservationUsecase(t)

	first, _ := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
	second, _ := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
	if _, err := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12")); IsAdmissionError(err) == nil {
		t.Fatal("expected both rooms occupied")
	}
	_ = second

	if err := usecase.Cancel(first.ID, first.UserEmail, "user"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	res, err := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
	if err != nil {
		t.Fatalf("create after cancel: %v", err)
	}
	if res.RoomNumber != first.RoomNumber {
		t.Errorf("room: got %d, want freed room %d", res.RoomNumber, first.RoomNumber)
	}
}

func TestCancelRequiresOwnerOrAdmin(t *testing.T) {
	usecase, _, _ := newTestReservationUsecase(t)

	created, _ := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))

	err := usecase.Cancel(created.ID, "intruder@example.com", "user")
	e, ok := err.(*UseCaseError)
	if !ok || e.Code != http.StatusForbidden {
		t.Fatalf("expected 403 usecase error, got %v", err)
	}

	if err := usecase.Cancel(created.ID, "admin@example.com", "admin"); err != nil {
		t.Fatalf("admin cancel: %v", err)
	}
}

func TestDeleteRemovesReservation(t *testing.T) {
	usecase, repo, _ := newTestReservationUsecase(t)

	created, _ := usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
	if err := usecase.Delete(created.ID, created.UserEmail, "user"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(created.ID); err == nil {
		t.Fatal("reservation still present after delete")
	}
}

func TestConcurrentCreatesNeverDoubleBook(t *testing.T) {
	usecase, repo, _ := newTestReservationUsecase(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = usecase.Create(deluxeRequest("2026-01-10", "2026-01-12"))
		}()
	}
	wg.Wait()

	all, _ := repo.GetAll()
	if len(all) != 2 {
		t.Fatalf("admitted %d reservations for 2 rooms", len(all))
	}
	if all[0].RoomNumber == all[1].RoomNumber {
		t.Fatalf("double booking on room %d", all[0].RoomNumber)
	}
}
