package models

type AdminStats struct {
	TotalRegistrations   int            `json:"total_registrations"`
	PaidRegistrations    int            `json:"paid_registrations"`
	PendingRegistrations int            `json:"pending_registrations"`
	Revenue              int            `json:"revenue"`
	ConversionRate       float64        `json:"conversion_rate"`
	Recent               []Registration `json:"recent_registrations"`
}
