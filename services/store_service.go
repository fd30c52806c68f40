package services

import (
	stderrors "errors"

	"hms/commands"
	"hms/errors"
	"hms/models"
	"hms/services/logger"

	"gorm.io/gorm"
)

// StoreService là gateway lưu trữ cho các entity của khách sạn.
// Mỗi thao tác lưu là upsert theo khóa chính; không có transaction
// trải qua nhiều entity.
type StoreService struct {
	db  *gorm.DB
	log logger.Logger
}

// NewStoreService tạo instance mới của StoreService
func NewStoreService(db *gorm.DB, log logger.Logger) *StoreService {
	return &StoreService{
		db:  db,
		log: log,
	}
}

// DB trả về kết nối gorm bên dưới
func (s *StoreService) DB() *gorm.DB {
	return s.db
}

// Migrate tạo các bảng rooms, guests, reservations nếu chưa tồn tại
func (s *StoreService) Migrate() error {
	if err := s.db.AutoMigrate(&models.Room{}, &models.Guest{}, &models.Reservation{}); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể khởi tạo bảng dữ liệu", err)
	}
	return nil
}

// SaveRoom upsert phòng theo khóa chính và trả về id
func (s *StoreService) SaveRoom(room *models.Room) (uint, error) {
	cmd := commands.NewSaveRoomCommand(room, s.db)
	if err := cmd.Execute(); err != nil {
		s.log.Error("Lỗi khi lưu phòng %d: %v", room.Number, err)
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể lưu phòng", err)
	}
	return room.ID, nil
}

// SaveGuest upsert khách theo khóa chính và trả về id
func (s *StoreService) SaveGuest(guest *models.Guest) (uint, error) {
	cmd := commands.NewSaveGuestCommand(guest, s.db)
	if err := cmd.Execute(); err != nil {
		s.log.Error("Lỗi khi lưu khách %s: %v", guest.Email, err)
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể lưu khách", err)
	}
	return guest.ID, nil
}

// SaveReservation upsert đặt phòng theo khóa chính và trả về id
func (s *StoreService) SaveReservation(reservation *models.Reservation) (uint, error) {
	cmd := commands.NewSaveReservationCommand(reservation, s.db)
	if err := cmd.Execute(); err != nil {
		s.log.Error("Lỗi khi lưu đặt phòng (guest=%d, room=%d): %v",
			reservation.GuestID, reservation.RoomID, err)
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể lưu đặt phòng", err)
	}
	return reservation.ID, nil
}

// GetAllRooms lấy toàn bộ phòng, không lọc, không phân trang
func (s *StoreService) GetAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách phòng", err)
	}
	return rooms, nil
}

// GetAllGuests lấy toàn bộ khách
func (s *StoreService) GetAllGuests() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.db.Find(&guests).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách khách", err)
	}
	return guests, nil
}

// GetAllReservations lấy toàn bộ đặt phòng
func (s *StoreService) GetAllReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Find(&reservations).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách đặt phòng", err)
	}
	return reservations, nil
}

// GetRoomByID tìm phòng theo id
func (s *StoreService) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy thông tin phòng", err)
	}
	return &room, nil
}

// GetGuestByID tìm khách theo id
func (s *StoreService) GetGuestByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy khách", errors.ErrGuestNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy thông tin khách", err)
	}
	return &guest, nil
}

// GetReservationByID tìm đặt phòng theo id
func (s *StoreService) GetReservationByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy đặt phòng", errors.ErrReservationNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy thông tin đặt phòng", err)
	}
	return &reservation, nil
}
