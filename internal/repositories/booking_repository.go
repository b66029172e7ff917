package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Booking, error)
	ListAll(ctx context.Context) ([]db_models.Booking, error)
	Save(ctx context.Context, booking *db_models.Booking) error

	InsertAppointment(ctx context.Context, appt *db_models.Appointment) error
	ListAppointments(ctx context.Context, bookingID uuid.UUID) ([]db_models.Appointment, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) Save(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) InsertAppointment(ctx context.Context, appt *db_models.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

func (r *bookingRepository) ListAppointments(ctx context.Context, bookingID uuid.UUID) ([]db_models.Appointment, error) {
	var appts []db_models.Appointment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("scheduled_at ASC").
		Find(&appts).Error
	return appts, err
}
