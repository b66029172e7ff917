package request_models

// AdminActionRequest is the discriminated body of the admin mutation
// endpoint. Only the fields relevant to the chosen action are read.
type AdminActionRequest struct {
	Action string `json:"action" binding:"required,oneof=update_booking_status confirm_member append_medical_record clear_all_data"`

	// update_booking_status
	BookingID string `json:"booking_id" binding:"omitempty,uuid4"`
	Status    string `json:"status"`

	// confirm_member
	MemberID string `json:"member_id" binding:"omitempty,uuid4"`

	// append_medical_record
	PatientRecordID string `json:"patient_record_id" binding:"omitempty,uuid4"`
	Note            string `json:"note"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
