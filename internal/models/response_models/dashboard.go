package response_models

type TierMixItem struct {
	Tier  string `json:"tier"`
	Count int64  `json:"count"`
}

type RecentTransaction struct {
	MemberName  string `json:"member_name"`
	AmountMinor int64  `json:"amount_minor"`
	Type        string `json:"type"`
	CreatedAt   int64  `json:"created_at"`
}

type DashboardReport struct {
	TotalMembers     int64 `json:"total_members"`
	ActiveMembers    int64 `json:"active_members"`
	ExpiredMembers   int64 `json:"expired_members"`
	PendingMembers   int64 `json:"pending_members"`
	PendingBookings  int64 `json:"pending_bookings"`
	PendingInquiries int64 `json:"pending_inquiries"`

	RevenueTotalMinor int64 `json:"revenue_total_minor"`

	TierMix            []TierMixItem       `json:"tier_mix"`
	RecentTransactions []RecentTransaction `json:"recent_transactions"`
}
