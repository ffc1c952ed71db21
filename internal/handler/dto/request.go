package dto

type StayRequest struct {
	UserID        string `json:"user_id"         binding:"required"`
	CheckIn       string `json:"check_in"        binding:"required"`
	CheckOut      string `json:"check_out"       binding:"required"`
	AdultCount    int    `json:"adult_count"     binding:"required,gte=1"`
	ChildCount    int    `json:"child_count"     binding:"gte=0"`
	ExtraBedCount int    `json:"extra_bed_count" binding:"gte=0"`
}

type GuestRequest struct {
	Name  string `json:"name"  binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

type SettleRequest struct {
	StayRequest
	Guest           GuestRequest `json:"guest"`
	PaymentMethod   string       `json:"payment_method"    binding:"required,oneof=wallet card"`
	PaymentIntentID string       `json:"payment_intent_id"`
}

type ApplyCouponRequest struct {
	Code   string `json:"code"    binding:"required"`
	UserID string `json:"user_id" binding:"required"`
}

type CancelRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Reason string `json:"reason"  binding:"required"`
}

type DecisionRequest struct {
	ManagerID string `json:"manager_id" binding:"required"`
	Accept    *bool  `json:"accept"     binding:"required"`
}

type IssueOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type RegisterRequest struct {
	Name           string `json:"name"             binding:"required"`
	Email          string `json:"email"            binding:"required,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
	ReferralCode   string `json:"referral_code"`
	OTP            string `json:"otp"              binding:"required"`
}
