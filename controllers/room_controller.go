package controllers

import (
	"time"

	"qlnt/config"
	"qlnt/constants"
	"qlnt/dto"
	"qlnt/models"
	"qlnt/repository"
	"qlnt/response"
	"qlnt/services"
	"qlnt/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RoomController struct {
	store *repository.Store
	rdb   *redis.Client
}

func NewRoomController(store *repository.Store, rdb *redis.Client) *RoomController {
	return &RoomController{store: store, rdb: rdb}
}

// GetAllRooms trả về danh sách phòng kèm tình trạng thuê. Tình trạng
// luôn suy từ hợp đồng active, không đọc cờ lưu sẵn nào cả.
func (ctl *RoomController) GetAllRooms(c *gin.Context) {
	var cached []dto.RoomResponse
	if ctl.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, services.CacheKeyRooms, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	rooms, err := ctl.store.Rooms.List()
	if err != nil {
		respondError(c, err)
		return
	}
	activeLeases, err := ctl.store.Leases.ListByStatus(constants.LeaseStatusActive)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	activeByRoom := map[uint]uint{}
	for _, l := range activeLeases {
		if l.IsActive(now) {
			activeByRoom[l.RoomID] = l.ID
		}
	}

	result := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp := dto.RoomResponse{
			ID:               room.ID,
			BuildingID:       room.BuildingID,
			Floor:            room.Floor,
			Code:             room.Code,
			Acreage:          room.Acreage,
			LastMeterReading: room.LastMeterReading,
		}
		if leaseID, ok := activeByRoom[room.ID]; ok {
			resp.Occupied = true
			resp.ActiveLeaseID = &leaseID
		}
		result = append(result, resp)
	}

	if ctl.rdb != nil {
		services.SetToRedis(config.Ctx, ctl.rdb, services.CacheKeyRooms, result, 5*time.Minute)
	}
	response.Success(c, result)
}

func (ctl *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	room, err := ctl.store.Rooms.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, room)
}

func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		respondError(c, err)
		return
	}
	if _, err := ctl.store.Buildings.GetByID(req.BuildingID); err != nil {
		respondError(c, err)
		return
	}

	room := &models.Room{
		BuildingID: req.BuildingID,
		Floor:      req.Floor,
		Code:       req.Code,
		Acreage:    req.Acreage,
	}
	if err := ctl.store.Rooms.Create(room); err != nil {
		respondError(c, err)
		return
	}
	ctl.invalidateCache()
	response.Success(c, room)
}

func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		respondError(c, err)
		return
	}

	room, err := ctl.store.Rooms.Update(req.ID, repository.RoomPatch{
		Floor:   req.Floor,
		Code:    req.Code,
		Acreage: req.Acreage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	ctl.invalidateCache()
	response.Success(c, room)
}

func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	// Không xóa phòng còn hợp đồng hiệu lực
	count, err := ctl.store.Leases.CountActiveByRoom(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if count > 0 {
		response.Conflict(c, "Phòng đang có hợp đồng hiệu lực, không xóa được")
		return
	}
	if err := ctl.store.Rooms.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	ctl.invalidateCache()
	response.Success(c, nil)
}

func (ctl *RoomController) invalidateCache() {
	if ctl.rdb != nil {
		services.DeleteFromRedis(config.Ctx, ctl.rdb, services.CacheKeyRooms, services.CacheKeyDashboard)
	}
}
