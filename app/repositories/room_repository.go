package repositories

import (
	"database/sql"
	"fmt"

	"BE-Hotel-Booking/app/entities"
)

type RoomRepository interface {
	Create(room entities.RoomRequest) error
	GetAll(roomType, available string) ([]entities.Room, int, error)
	GetByNumber(number int) (entities.Room, error)
	Update(number int, room entities.RoomRequest) (int64, error)
	Delete(number int) (int64, error)
	ListRoomsByType(roomType string) ([]entities.RoomCandidate, error)
}

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room entities.RoomRequest) error {
	query := `
        INSERT INTO rooms (room_number, room_type, description, rate, max_occupancy, is_available)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(query, room.RoomNumber, room.RoomType, room.Description, room.Rate, room.MaxOccupancy, room.IsAvailable)
	return err
}

func (r *roomRepository) GetAll(roomType, available string) ([]entities.Room, int, error) {
	query := `
        SELECT room_number, room_type, description, rate, max_occupancy, is_available
        FROM rooms
        WHERE 1=1
    `
	var args []interface{}
	argIndex := 1

	if roomType != "" {
		query += fmt.Sprintf(" AND room_type = $%d", argIndex)
		args = append(args, roomType)
		argIndex++
	}
	if available != "" {
		query += fmt.Sprintf(" AND is_available = $%d", argIndex)
		args = append(args, available == "true")
		argIndex++
	}
	query += " ORDER BY room_number"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rooms []entities.Room
	for rows.Next() {
		var room entities.Room
		if err := rows.Scan(&room.RoomNumber, &room.RoomType, &room.Description, &room.Rate, &room.MaxOccupancy, &room.IsAvailable); err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, room)
	}
	return rooms, len(rooms), rows.Err()
}

func (r *roomRepository) GetByNumber(number int) (entities.Room, error) {
	query := `
        SELECT room_number, room_type, description, rate, max_occupancy, is_available
        FROM rooms WHERE room_number = $1
    `
	var room entities.Room
	err := r.db.QueryRow(query, number).Scan(
		&room.RoomNumber, &room.RoomType, &room.Description,
		&room.Rate, &room.MaxOccupancy, &room.IsAvailable,
	)
	return room, err
}

func (r *roomRepository) Update(number int, room entities.RoomRequest) (int64, error) {
	query := `
        UPDATE rooms
        SET room_type=$1, description=$2, rate=$3, max_occupancy=$4, is_available=$5
        WHERE room_number=$6
    `
	result, err := r.db.Exec(query, room.RoomType, room.Description, room.Rate, room.MaxOccupancy, room.IsAvailable, number)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *roomRepository) Delete(number int) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM rooms WHERE room_number=$1`, number)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ListRoomsByType is the admission engine's room-directory lookup.
func (r *roomRepository) ListRoomsByType(roomType string) ([]entities.RoomCandidate, error) {
	query := `SELECT room_number, is_available FROM rooms WHERE room_type = $1 ORDER BY room_number`
	rows, err := r.db.Query(query, roomType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []entities.RoomCandidate
	for rows.Next() {
		var candidate entities.RoomCandidate
		if err := rows.Scan(&candidate.RoomNumber, &candidate.IsAvailable); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}
