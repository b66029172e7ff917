package request_models

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,min=2,max=100"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required,min=7,max=20"`
	Service       string `json:"service" binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required,datetime=2006-01-02"`
	PreferredTime string `json:"preferred_time" binding:"required"`
	Notes         string `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type ScheduleAppointmentRequest struct {
	BookingID    string `json:"booking_id" binding:"required,uuid4"`
	ScheduledAt  int64  `json:"scheduled_at" binding:"required"`
	Practitioner string `json:"practitioner" binding:"required"`
}
