package repository

import (
	"testing"

	bookingRepo "quadralink/database/repository/booking"

	"github.com/stretchr/testify/assert"
)

// The aliases must stay interchangeable with the entity packages so callers
// can hold either type.
var _ BookingRepository = (bookingRepo.BookingRepository)(nil)

func TestConstructorsExported(t *testing.T) {
	assert.NotNil(t, NewMongoBookingRepo)
	assert.NotNil(t, NewMongoCounselorRepo)
	assert.NotNil(t, NewMongoUserRepo)
	assert.NotNil(t, NewMongoInstitutionRepo)
	assert.NotNil(t, NewMongoNotificationRepo)
}
