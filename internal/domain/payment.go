package domain

type PaymentIntentStatus string

const (
	IntentRequiresPaymentMethod PaymentIntentStatus = "requires_payment_method"
	IntentRequiresConfirmation  PaymentIntentStatus = "requires_confirmation"
	IntentProcessing            PaymentIntentStatus = "processing"
	IntentSucceeded             PaymentIntentStatus = "succeeded"
	IntentCanceled              PaymentIntentStatus = "canceled"
)

const (
	MetadataHotelID = "hotel_id"
	MetadataUserID  = "user_id"
)

type IntentMetadata struct {
	HotelID string `json:"hotel_id"`
	UserID  string `json:"user_id"`
}

// PaymentIntent mirrors the gateway object. Only its ID is stored locally.
type PaymentIntent struct {
	ID           string              `json:"id"`
	Amount       int64               `json:"amount"`
	Currency     string              `json:"currency"`
	Status       PaymentIntentStatus `json:"status"`
	Metadata     IntentMetadata      `json:"metadata"`
	ClientSecret string              `json:"client_secret,omitempty"`
}

func (p *PaymentIntent) BelongsTo(hotelID, userID string) bool {
	return p.Metadata.HotelID == hotelID && p.Metadata.UserID == userID
}
