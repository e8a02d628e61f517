package models

import "time"

// Like identity is the ordered pair (target, liker).
type Like struct {
	TargetWallet string    `db:"target_wallet"`
	LikerWallet  string    `db:"liker_wallet"`
	CreatedAt    time.Time `db:"created_at"`
}

type LikeCount struct {
	TargetWallet string `db:"target_wallet"`
	Count        int    `db:"like_count"`
}
