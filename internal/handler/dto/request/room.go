package request

import (
	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number      string    `json:"number" binding:"required"`
	TypeID      uuid.UUID `json:"type_id" binding:"required"`
	NightlyRate int64     `json:"nightly_rate" binding:"required,gt=0"`
}

type CreateRoomTypeRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int32  `json:"capacity" binding:"required,gt=0"`
	BaseRate int64  `json:"base_rate" binding:"required,gt=0"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateRoomRateRequest struct {
	NightlyRate int64 `json:"nightly_rate" binding:"required,gt=0"`
}
