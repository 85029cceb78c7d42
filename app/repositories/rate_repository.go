package repositories

import (
	"database/sql"

	"BE-Hotel-Booking/app/entities"
)

type RateRepository interface {
	Create(rate entities.Rate) error
	GetByRoomType(roomType string) ([]entities.Rate, error)
	GetAll() ([]entities.Rate, error)
}

type rateRepository struct {
	db *sql.DB
}

func NewRateRepository(db *sql.DB) RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) Create(rate entities.Rate) error {
	query := `
        INSERT INTO rates (user_email, user_name, room_type, rating, comment, date)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(query, rate.UserEmail, rate.UserName, rate.RoomType, rate.Rating, rate.Comment, rate.Date)
	return err
}

func (r *rateRepository) GetByRoomType(roomType string) ([]entities.Rate, error) {
	query := `
        SELECT id, user_email, user_name, room_type, rating, comment, date
        FROM rates WHERE room_type = $1 ORDER BY date DESC
    `
	rows, err := r.db.Query(query, roomType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRates(rows)
}

func (r *rateRepository) GetAll() ([]entities.Rate, error) {
	rows, err := r.db.Query(`SELECT id, user_email, user_name, room_type, rating, comment, date FROM rates ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRates(rows)
}

func scanRates(rows *sql.Rows) ([]entities.Rate, error) {
	var rates []entities.Rate
	for rows.Next() {
		var rate entities.Rate
		if err := rows.Scan(&rate.ID, &rate.UserEmail, &rate.UserName, &rate.RoomType, &rate.Rating, &rate.Comment, &rate.Date); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}
