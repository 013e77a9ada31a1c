package ds

// Station представляет электрозарядную станцию (ЭЗС)
type Station struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	IsDelete      bool    `gorm:"type:boolean not null;default:false;index:idx_stations_is_delete" json:"-"`
	Photo         string  `gorm:"type:varchar(100)" json:"photo"`
	Title         string  `gorm:"type:varchar(255) not null;index:idx_stations_title" json:"title"`
	Description   string  `gorm:"type:varchar(255) not null" json:"description"`
	Address       string  `gorm:"type:varchar(255) not null" json:"address"`
	ConnectorType string  `gorm:"type:varchar(20) not null" json:"connector_type"`
	PowerKW       float64 `gorm:"type:numeric(10,1);index:idx_stations_power" json:"power_kw"`
	TariffRub     float64 `gorm:"type:numeric(10,2)" json:"tariff_rub"`
}
