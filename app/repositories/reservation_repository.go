package repositories

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"BE-Hotel-Booking/app/entities"
)

type ReservationRepository interface {
	FindOverlapping(roomNumbers []int, checkIn, checkOut time.Time, excludeID string) ([]entities.BookedWindow, error)
	Create(res entities.Reservation) error
	Update(res entities.Reservation) (int64, error)
	GetAll() ([]entities.Reservation, error)
	GetByUserEmail(email string) ([]entities.Reservation, error)
	GetByID(id string) (entities.Reservation, error)
	Cancel(id string, at time.Time) (int64, error)
	Delete(id string) (int64, error)
}

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// FindOverlapping returns the non-cancelled reservations on the given
// rooms whose half-open window intersects [checkIn, checkOut). excludeID
// keeps an edited reservation from conflicting with itself.
func (r *reservationRepository) FindOverlapping(roomNumbers []int, checkIn, checkOut time.Time, excludeID string) ([]entities.BookedWindow, error) {
	query := `
        SELECT room_number, check_in, check_out
        FROM reservations
        WHERE room_number = ANY($1)
        AND cancellation_date IS NULL
        AND check_in < $2 AND check_out > $3
        AND ($4 = '' OR id <> $4)
    `
	rows, err := r.db.Query(query, pq.Array(roomNumbers), checkOut, checkIn, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var booked []entities.BookedWindow
	for rows.Next() {
		var window entities.BookedWindow
		if err := rows.Scan(&window.RoomNumber, &window.CheckIn, &window.CheckOut); err != nil {
			return nil, err
		}
		booked = append(booked, window)
	}
	return booked, rows.Err()
}

func (r *reservationRepository) Create(res entities.Reservation) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO reservations (id, user_email, room_type, room_number, check_in, check_out, nights, occupancy, total_price, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
    `
	_, err = tx.Exec(query,
		res.ID, res.UserEmail, res.RoomType, res.RoomNumber,
		res.CheckIn, res.CheckOut, res.Nights, res.Occupancy, res.TotalPrice,
	)
	if err != nil {
		return err
	}

	if err := insertExtras(tx, res.ID, res.Extras); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *reservationRepository) Update(res entities.Reservation) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `
        UPDATE reservations
        SET room_type=$1, room_number=$2, check_in=$3, check_out=$4, nights=$5, occupancy=$6, total_price=$7
        WHERE id=$8 AND cancellation_date IS NULL
    `
	result, err := tx.Exec(query,
		res.RoomType, res.RoomNumber, res.CheckIn, res.CheckOut,
		res.Nights, res.Occupancy, res.TotalPrice, res.ID,
	)
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, tx.Commit()
	}

	if _, err := tx.Exec(`DELETE FROM reservation_extras WHERE reservation_id=$1`, res.ID); err != nil {
		return 0, err
	}
	if err := insertExtras(tx, res.ID, res.Extras); err != nil {
		return 0, err
	}
	return affected, tx.Commit()
}

func insertExtras(tx *sql.Tx, reservationID string, extras []entities.Extra) error {
	query := `INSERT INTO reservation_extras (reservation_id, name, selected) VALUES ($1, $2, $3)`
	for _, extra := range extras {
		if _, err := tx.Exec(query, reservationID, extra.Name, extra.Selected); err != nil {
			return err
		}
	}
	return nil
}

const reservationColumns = `
        SELECT id, user_email, room_type, room_number, check_in, check_out, nights, occupancy, total_price, cancellation_date, created_at
        FROM reservations
`

func (r *reservationRepository) GetAll() ([]entities.Reservation, error) {
	rows, err := r.db.Query(reservationColumns + ` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanReservations(rows)
}

func (r *reservationRepository) GetByUserEmail(email string) ([]entities.Reservation, error) {
	rows, err := r.db.Query(reservationColumns+` WHERE user_email=$1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanReservations(rows)
}

func (r *reservationRepository) GetByID(id string) (entities.Reservation, error) {
	var res entities.Reservation
	err := r.db.QueryRow(reservationColumns+` WHERE id=$1`, id).Scan(
		&res.ID, &res.UserEmail, &res.RoomType, &res.RoomNumber,
		&res.CheckIn, &res.CheckOut, &res.Nights, &res.Occupancy,
		&res.TotalPrice, &res.CancellationDate, &res.CreatedAt,
	)
	if err != nil {
		return entities.Reservation{}, err
	}

	res.Extras, err = r.getExtras(res.ID)
	return res, err
}

func (r *reservationRepository) scanReservations(rows *sql.Rows) ([]entities.Reservation, error) {
	var reservations []entities.Reservation
	for rows.Next() {
		var res entities.Reservation
		if err := rows.Scan(
			&res.ID, &res.UserEmail, &res.RoomType, &res.RoomNumber,
			&res.CheckIn, &res.CheckOut, &res.Nights, &res.Occupancy,
			&res.TotalPrice, &res.CancellationDate, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range reservations {
		extras, err := r.getExtras(reservations[i].ID)
		if err != nil {
			return nil, err
		}
		reservations[i].Extras = extras
	}
	return reservations, nil
}

func (r *reservationRepository) getExtras(reservationID string) ([]entities.Extra, error) {
	rows, err := r.db.Query(`SELECT name, selected FROM reservation_extras WHERE reservation_id=$1`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extras []entities.Extra
	for rows.Next() {
		var extra entities.Extra
		if err := rows.Scan(&extra.Name, &extra.Selected); err != nil {
			return nil, err
		}
		extras = append(extras, extra)
	}
	return extras, rows.Err()
}

func (r *reservationRepository) Cancel(id string, at time.Time) (int64, error) {
	result, err := r.db.Exec(`UPDATE reservations SET cancellation_date=$1 WHERE id=$2 AND cancellation_date IS NULL`, at, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *reservationRepository) Delete(id string) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM reservations WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
