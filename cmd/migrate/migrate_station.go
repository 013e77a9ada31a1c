package main

import (
	"Backend-Charging/internal/app/ds"
	"Backend-Charging/internal/app/dsn"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	logrus.Info("=== Charging Station Migration ===")

	// Создаем/обновляем таблицы
	err = db.AutoMigrate(
		&ds.Users{},
		&ds.Station{},
		&ds.ChargingOrder{},
		&ds.OrderStation{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Tables migrated")

	// Частичный индекс под основной запрос списка станций
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_stations_pagination
		 ON stations (id ASC)
		 WHERE is_delete = false`,

		`CREATE INDEX IF NOT EXISTS idx_stations_title_search
		 ON stations (title, is_delete, id ASC)`,

		`CREATE INDEX IF NOT EXISTS idx_stations_power_filter
		 ON stations (power_kw, is_delete, id ASC)`,
	}

	for _, sql := range indexes {
		if err := db.Exec(sql).Error; err != nil {
			logrus.Fatalf("failed to create index: %v", err)
		}
	}
	db.Exec("ANALYZE stations")
	logrus.Info("Indexes created")

	// Тестовые станции для пустой базы
	var count int64
	db.Model(&ds.Station{}).Count(&count)
	if count == 0 {
		stations := []ds.Station{
			{Title: "ЭЗС Ленинский 42", Description: "Быстрая зарядка у ТЦ", Address: "Ленинский проспект, 42", ConnectorType: "CCS2", PowerKW: 150, TariffRub: 18.5},
			{Title: "ЭЗС Тверская 7", Description: "Две машины одновременно", Address: "Тверская улица, 7", ConnectorType: "CHAdeMO", PowerKW: 50, TariffRub: 14.0},
			{Title: "ЭЗС Парковая", Description: "Медленная ночная зарядка", Address: "Парковая аллея, 3", ConnectorType: "Type 2", PowerKW: 22, TariffRub: 9.5},
		}
		if err := db.Create(&stations).Error; err != nil {
			logrus.Fatalf("failed to seed stations: %v", err)
		}
		logrus.Infof("Seeded %d stations", len(stations))
	}

	logrus.Info("Migration completed")
}
