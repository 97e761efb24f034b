package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomNumber  = errors.New("room number cannot be empty")
	ErrInvalidNightlyRate = errors.New("nightly rate must be positive")
	ErrInvalidStatus      = errors.New("invalid room status")
	ErrInvalidCapacity    = errors.New("capacity must be positive")
	ErrInvalidTypeName    = errors.New("room type name cannot be empty")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Room struct {
	id          uuid.UUID
	number      string
	typeID      uuid.UUID
	nightlyRate int64
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(number string, typeID uuid.UUID, nightlyRate int64) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrInvalidRoomNumber
	}
	if nightlyRate <= 0 {
		return nil, ErrInvalidNightlyRate
	}

	return &Room{
		id:          uuid.New(),
		number:      number,
		typeID:      typeID,
		nightlyRate: nightlyRate,
		status:      StatusAvailable,
	}, nil
}

func ReconstructRoom(
	id uuid.UUID,
	number string,
	typeID uuid.UUID,
	nightlyRate int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:          id,
		number:      number,
		typeID:      typeID,
		nightlyRate: nightlyRate,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Room) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	return nil
}

func (r *Room) SetNightlyRate(rate int64) error {
	if rate <= 0 {
		return ErrInvalidNightlyRate
	}
	r.nightlyRate = rate
	return nil
}

func (r *Room) IsBookable() bool {
	return r.status == StatusAvailable
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() string       { return r.number }
func (r *Room) TypeID() uuid.UUID    { return r.typeID }
func (r *Room) NightlyRate() int64   { return r.nightlyRate }
func (r *Room) Status() Status       { return r.status }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

type RoomType struct {
	id       uuid.UUID
	name     string
	capacity int32
	baseRate int64
}

func NewRoomType(name string, capacity int32, baseRate int64) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidTypeName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if baseRate <= 0 {
		return nil, ErrInvalidNightlyRate
	}

	return &RoomType{
		id:       uuid.New(),
		name:     name,
		capacity: capacity,
		baseRate: baseRate,
	}, nil
}

func ReconstructRoomType(id uuid.UUID, name string, capacity int32, baseRate int64) *RoomType {
	return &RoomType{
		id:       id,
		name:     name,
		capacity: capacity,
		baseRate: baseRate,
	}
}

func (t *RoomType) ID() uuid.UUID   { return t.id }
func (t *RoomType) Name() string    { return t.name }
func (t *RoomType) Capacity() int32 { return t.capacity }
func (t *RoomType) BaseRate() int64 { return t.baseRate }
