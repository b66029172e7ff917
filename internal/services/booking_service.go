package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"vitalis/internal/models/db_models"
	"vitalis/internal/models/request_models"
	"vitalis/internal/repositories"
	"vitalis/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, req request_models.CreateBookingRequest) (*db_models.Booking, error)
	ListBookings(ctx context.Context) ([]db_models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*db_models.Booking, error)
	ScheduleAppointment(ctx context.Context, req request_models.ScheduleAppointmentRequest) (*db_models.Appointment, error)
	ListAppointments(ctx context.Context, bookingID uuid.UUID) ([]db_models.Appointment, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	patientRepo repositories.PatientRepository
	mail        IMailService
}

func NewBookingService(bookingRepo repositories.BookingRepository, patientRepo repositories.PatientRepository, mail IMailService) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		patientRepo: patientRepo,
		mail:        mail,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, req request_models.CreateBookingRequest) (*db_models.Booking, error) {
	booking := &db_models.Booking{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Service:       req.Service,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Status:        db_models.BookingStatusPending,
		Notes:         req.Notes,
	}

	if err := s.bookingRepo.Insert(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if s.mail != nil {
		if err := s.mail.SendBookingReceived(booking); err != nil {
			log.Printf("booking %s: received mail failed: %v", booking.ID, err)
		}
	}

	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]db_models.Booking, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (s *BookingService) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*db_models.Booking, error) {
	booking, err := s.bookingRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	booking.Status = db_models.BookingStatus(status)
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// A completed visit opens the customer's clinical history.
	if booking.Status == db_models.BookingStatusCompleted {
		if err := s.ensurePatientRecord(ctx, booking); err != nil {
			return nil, err
		}
	}

	if s.mail != nil {
		if err := s.mail.SendBookingStatusUpdate(booking); err != nil {
			log.Printf("booking %s: status mail failed: %v", booking.ID, err)
		}
	}

	return booking, nil
}

func (s *BookingService) ScheduleAppointment(ctx context.Context, req request_models.ScheduleAppointmentRequest) (*db_models.Appointment, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, utils.ErrBookingNotFound
	}

	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	appt := &db_models.Appointment{
		BookingID:    booking.ID,
		ScheduledAt:  req.ScheduledAt,
		Practitioner: req.Practitioner,
		Status:       db_models.AppointmentStatusScheduled,
	}
	if err := s.bookingRepo.InsertAppointment(ctx, appt); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return appt, nil
}

func (s *BookingService) ListAppointments(ctx context.Context, bookingID uuid.UUID) ([]db_models.Appointment, error) {
	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	appts, err := s.bookingRepo.ListAppointments(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return appts, nil
}

func (s *BookingService) ensurePatientRecord(ctx context.Context, booking *db_models.Booking) error {
	existing, err := s.patientRepo.FindByEmail(ctx, booking.CustomerEmail)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return nil
	}

	record := &db_models.PatientRecord{
		Name:      booking.CustomerName,
		Email:     booking.CustomerEmail,
		Phone:     booking.CustomerPhone,
		BookingID: &booking.ID,
	}
	if err := s.patientRepo.Insert(ctx, record); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
