package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"hotelier/internal/usecase/queries"
)

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	TypeID      uuid.UUID `json:"typeId"`
	TypeName    string    `json:"typeName"`
	Capacity    int32     `json:"capacity"`
	NightlyRate int64     `json:"nightlyRate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RoomTypeResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int32     `json:"capacity"`
	BaseRate int64     `json:"baseRate"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	resps := make([]*RoomResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromRoomView(view))
	}
	return resps
}

func FromRoomTypeView(view *queries.RoomTypeView) *RoomTypeResponse {
	var resp RoomTypeResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRoomTypeViews(views []*queries.RoomTypeView) []*RoomTypeResponse {
	resps := make([]*RoomTypeResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromRoomTypeView(view))
	}
	return resps
}
