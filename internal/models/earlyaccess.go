package models

import "time"

type EarlyAccessEntry struct {
	ID            string    `db:"id"`
	Email         string    `db:"email"`
	WalletAddress string    `db:"wallet_address"`
	CreatedAt     time.Time `db:"created_at"`
}
