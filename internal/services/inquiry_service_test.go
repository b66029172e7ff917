package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vitalis/internal/models/db_models"
	"vitalis/internal/models/request_models"
	"vitalis/internal/repositories"
	"vitalis/pkg/utils"
)

func newTestInquiryService(t *testing.T, db *gorm.DB, mail IMailService) InquiryServiceInterface {
	return NewInquiryService(
		repositories.NewInquiryRepository(db),
		repositories.NewMemberRepository(db),
		mail,
	)
}

func TestCreateInquiry_SendsAcknowledgement(t *testing.T) {
	db := setupTestDB(t)
	mail := &mockMailService{}
	svc := newTestInquiryService(t, db, mail)

	inquiry, err := svc.CreateInquiry(context.Background(), request_models.CreateInquiryRequest{
		Name:        "Curious Customer",
		Email:       "curious@example.com",
		DesiredTier: "Gold",
		Message:     "What does Gold include?",
	})
	require.NoError(t, err)

	assert.Equal(t, db_models.InquiryStatusNew, inquiry.Status)
	assert.Equal(t, db_models.TierGold, inquiry.DesiredTier)
	assert.Equal(t, 1, mail.inquirySent)
}

func TestConvertInquiry_CreatesPendingMember(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInquiryService(t, db, nil)

	inquiry := &db_models.MembershipInquiry{
		Name:        "Soon Member",
		Email:       "soon@example.com",
		Phone:       "09171234567",
		DesiredTier: db_models.TierPlatinum,
		Status:      db_models.InquiryStatusNew,
	}
	require.NoError(t, db.Create(inquiry).Error)

	member, err := svc.ConvertInquiry(context.Background(), inquiry.ID, " ABCDEF ")
	require.NoError(t, err)

	assert.Equal(t, db_models.MemberStatusPending, member.Status)
	assert.Equal(t, db_models.TierPlatinum, member.MembershipType)
	assert.Equal(t, "unpaid", member.PaymentStatus)
	require.NotNil(t, member.ReferredBy)
	assert.Equal(t, "ABCDEF", *member.ReferredBy)
	assert.Nil(t, member.ReferralCode)

	var updated db_models.MembershipInquiry
	require.NoError(t, db.First(&updated, "id = ?", inquiry.ID).Error)
	assert.Equal(t, db_models.InquiryStatusConverted, updated.Status)
}

func TestConvertInquiry_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInquiryService(t, db, nil)

	seedActiveMember(t, db, "taken@example.com")
	inquiry := &db_models.MembershipInquiry{
		Name:        "Already Here",
		Email:       "taken@example.com",
		DesiredTier: db_models.TierGreen,
		Status:      db_models.InquiryStatusNew,
	}
	require.NoError(t, db.Create(inquiry).Error)

	_, err := svc.ConvertInquiry(context.Background(), inquiry.ID, "")
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	// Failed conversion leaves the inquiry untouched.
	var updated db_models.MembershipInquiry
	require.NoError(t, db.First(&updated, "id = ?", inquiry.ID).Error)
	assert.Equal(t, db_models.InquiryStatusNew, updated.Status)
}

func TestUpdateInquiryStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInquiryService(t, db, nil)

	inquiry := &db_models.MembershipInquiry{
		Name:        "Contacted",
		Email:       "contacted@example.com",
		DesiredTier: db_models.TierGreen,
		Status:      db_models.InquiryStatusNew,
	}
	require.NoError(t, db.Create(inquiry).Error)

	updated, err := svc.UpdateInquiryStatus(context.Background(), inquiry.ID, string(db_models.InquiryStatusContacted))
	require.NoError(t, err)
	assert.Equal(t, db_models.InquiryStatusContacted, updated.Status)
}
