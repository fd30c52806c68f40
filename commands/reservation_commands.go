package commands

import (
	"hms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Command định nghĩa interface cho các command ghi dữ liệu
type Command interface {
	Execute() error
}

// SaveRoomCommand command để upsert phòng theo khóa chính
type SaveRoomCommand struct {
	room *models.Room
	db   *gorm.DB
}

func NewSaveRoomCommand(room *models.Room, db *gorm.DB) *SaveRoomCommand {
	return &SaveRoomCommand{
		room: room,
		db:   db,
	}
}

func (c *SaveRoomCommand) Execute() error {
	return c.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(c.room).Error
}

// SaveGuestCommand command để upsert khách theo khóa chính
type SaveGuestCommand struct {
	guest *models.Guest
	db    *gorm.DB
}

func NewSaveGuestCommand(guest *models.Guest, db *gorm.DB) *SaveGuestCommand {
	return &SaveGuestCommand{
		guest: guest,
		db:    db,
	}
}

func (c *SaveGuestCommand) Execute() error {
	return c.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(c.guest).Error
}

// SaveReservationCommand command để upsert đặt phòng theo khóa chính
type SaveReservationCommand struct {
	reservation *models.Reservation
	db          *gorm.DB
}

func NewSaveReservationCommand(reservation *models.Reservation, db *gorm.DB) *SaveReservationCommand {
	return &SaveReservationCommand{
		reservation: reservation,
		db:          db,
	}
}

func (c *SaveReservationCommand) Execute() error {
	return c.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(c.reservation).Error
}
