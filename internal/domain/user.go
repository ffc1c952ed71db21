package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	Wallet         int64     `json:"wallet"`
	ReferralCode   string    `json:"referral_code"`
	ReferredBy     *string   `json:"referred_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) Recipient() Recipient {
	return Recipient{Name: u.Name, Email: u.Email, TelegramChatID: u.TelegramChatID}
}

// WalletEntry is one append-only ledger line. Amount is signed.
type WalletEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Amount         int64     `json:"amount"`
	Message        string    `json:"message"`
	IdempotencyKey string    `json:"-"`
	Date           time.Time `json:"date"`
}

type Wallet struct {
	Balance int64         `json:"balance"`
	History []WalletEntry `json:"history"`
}

type Recipient struct {
	Name           string
	Email          string
	TelegramChatID *int64
}
