package domain

// ReminderReport summarises one reminder scan.
type ReminderReport struct {
	Due    int `json:"due"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
