package repository

import (
	bookingRepo "quadralink/database/repository/booking"
	counselorRepo "quadralink/database/repository/counselor"
	institutionRepo "quadralink/database/repository/institution"
	notificationRepo "quadralink/database/repository/notification"
	userRepo "quadralink/database/repository/user"
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the CounselorRepository interface and constructor.
type CounselorRepository = counselorRepo.CounselorRepository

var NewMongoCounselorRepo = counselorRepo.NewMongoCounselorRepo

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo

// Re-export the InstitutionRepository interface and constructor.
type InstitutionRepository = institutionRepo.InstitutionRepository

var NewMongoInstitutionRepo = institutionRepo.NewMongoInstitutionRepo

// Re-export the NotificationRepository interface and constructor.
type NotificationRepository = notificationRepo.NotificationRepository

var NewMongoNotificationRepo = notificationRepo.NewMongoNotificationRepo
