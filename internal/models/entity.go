package models

import "time"

// Entity is the DB row for an organizational book.
type Entity struct {
	EntityID      string    `db:"entity_id"`
	OwnerUserID   string    `db:"owner_user_id"`
	Name          string    `db:"name"`
	Kind          string    `db:"kind"`
	CurrencyCode  string    `db:"currency_code"`
	Jurisdiction  string    `db:"jurisdiction"`
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
