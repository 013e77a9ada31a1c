package ds

import (
	"database/sql"
	"time"
)

// Статусы заявки на зарядку
const (
	StatusDraft     = "Черновик"
	StatusFormed    = "Сформирована"
	StatusCompleted = "Завершена"
	StatusRejected  = "Отклонена"
	StatusDeleted   = "Удалён"
)

// ChargingOrder представляет заявку на зарядку электромобиля
type ChargingOrder struct {
	ID             uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Status         string       `gorm:"type:varchar(20) not null;default:'Черновик'" json:"status"`
	DateCreate     time.Time    `gorm:"not null" json:"date_create"`
	DateUpdate     time.Time    `json:"date_update"`
	DateFinish     sql.NullTime `json:"date_finish"`
	VehiclePlate   string       `gorm:"type:varchar(20)" json:"vehicle_plate"`
	ScheduledAt    sql.NullTime `json:"scheduled_at"`
	TotalEnergyKWH float64      `gorm:"type:numeric(10,1)" json:"total_energy_kwh"`

	CreatorID   uint  `gorm:"not null" json:"creator_id"`
	Creator     Users `gorm:"foreignKey:CreatorID;references:User_ID" json:"-"`
	ModeratorID *uint `json:"moderator_id"`
	Moderator   Users `gorm:"foreignKey:ModeratorID;references:User_ID" json:"-"`

	OrderStations []OrderStation `gorm:"foreignKey:OrderID" json:"-"`
}

// OrderStation — связь м-м: станция в заявке с планируемой энергией
type OrderStation struct {
	OrderID   uint    `gorm:"primaryKey" json:"order_id"`
	StationID uint    `gorm:"primaryKey" json:"station_id"`
	EnergyKWH float64 `gorm:"type:numeric(10,1) not null" json:"energy_kwh"`

	Order   ChargingOrder `gorm:"foreignKey:OrderID" json:"-"`
	Station Station       `gorm:"foreignKey:StationID" json:"-"`
}
