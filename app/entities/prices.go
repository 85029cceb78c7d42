package entities

// PriceTable maps a room-type label or an extra-service label to its
// per-night price in minor units. The admission engine treats a loaded
// table as an immutable snapshot for the duration of one decision.
type PriceTable map[string]int64

func (t PriceTable) Price(key string) (int64, bool) {
	price, ok := t[key]
	return price, ok
}

type PriceEntry struct {
	Key    string `json:"key" validate:"required"`
	Amount int64  `json:"amount" validate:"required,min=0"`
}
