package repositories

import (
	"database/sql"

	"BE-Hotel-Booking/app/entities"
)

type PriceRepository interface {
	GetPriceTable() (entities.PriceTable, error)
	Upsert(entry entities.PriceEntry) error
}

type priceRepository struct {
	db *sql.DB
}

func NewPriceRepository(db *sql.DB) PriceRepository {
	return &priceRepository{db: db}
}

// GetPriceTable loads the whole key->amount mapping. The admission engine
// takes the returned table as an immutable snapshot for one decision.
func (r *priceRepository) GetPriceTable() (entities.PriceTable, error) {
	rows, err := r.db.Query(`SELECT key, amount FROM prices`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := entities.PriceTable{}
	for rows.Next() {
		var key string
		var amount int64
		if err := rows.Scan(&key, &amount); err != nil {
			return nil, err
		}
		table[key] = amount
	}
	return table, rows.Err()
}

func (r *priceRepository) Upsert(entry entities.PriceEntry) error {
	query := `
        INSERT INTO prices (key, amount) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET amount = EXCLUDED.amount
    `
	_, err := r.db.Exec(query, entry.Key, entry.Amount)
	return err
}
