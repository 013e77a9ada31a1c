package repository

import (
	"Backend-Charging/internal/app/ds"
	"Backend-Charging/internal/app/pagination"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StationRepository struct {
	db          *gorm.DB
	minioClient *minio.Client
}

func NewStationRepository(db *gorm.DB, minioClient *minio.Client) *StationRepository {
	return &StationRepository{
		db:          db,
		minioClient: minioClient,
	}
}

const (
	stationImagesBucket = "station-image"
)

// GetStations возвращает страницу станций с фильтрацией.
// Вместе с данными возвращается полностью вычисленное окно пагинации:
// фронтенд рендерит его как есть, без собственной арифметики
func (r *StationRepository) GetStations(
	title string,
	powerMin, powerMax float64,
	params pagination.Params,
) ([]ds.Station, pagination.State, error) {

	query := r.db.Where("is_delete = ?", false)

	if title != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%")
	}
	if powerMin > 0 {
		query = query.Where("power_kw >= ?", powerMin)
	}
	if powerMax > 0 {
		query = query.Where("power_kw <= ?", powerMax)
	}

	// Получаем общее количество записей
	var total int64
	if err := query.Model(&ds.Station{}).Count(&total).Error; err != nil {
		return nil, pagination.State{}, err
	}

	// Вычисляем состояние пагинации; запрошенная страница зажимается
	// в допустимые границы, поэтому offset всегда валиден
	state := pagination.CalculateWindow(int(total), params.PageSize, params.Page, params.Window)

	var stations []ds.Station
	err := query.
		Order("id ASC").
		Offset(state.Offset()).
		Limit(state.ItemsPerPage).
		Find(&stations).Error

	if err != nil {
		return nil, pagination.State{}, err
	}

	return stations, state, nil
}

// GetStation возвращает одну станцию
func (r *StationRepository) GetStation(id int) (ds.Station, error) {
	station := ds.Station{}
	err := r.db.Where("id = ? AND is_delete = ?", id, false).First(&station).Error
	if err != nil {
		return ds.Station{}, err
	}
	return station, nil
}

// CreateStation создает станцию
func (r *StationRepository) CreateStation(station *ds.Station) error {
	station.IsDelete = false
	return r.db.Create(station).Error
}

// UpdateStation обновляет станцию
func (r *StationRepository) UpdateStation(id uint, updates map[string]interface{}) error {
	result := r.db.Model(&ds.Station{}).Where("id = ? AND is_delete = ?", id, false).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("station with id %d not found or deleted", id)
	}
	return nil
}

// DeleteStation удаляет станцию (мягкое удаление)
func (r *StationRepository) DeleteStation(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var station ds.Station
		if err := tx.Where("id = ?", id).First(&station).Error; err != nil {
			return err
		}

		if station.Photo != "" {
			if err := r.deleteStationImage(station.Photo); err != nil {
				return err
			}
		}

		result := tx.Model(&ds.Station{}).Where("id = ?", id).Update("is_delete", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("station with id %d not found", id)
		}
		return nil
	})
}

// AddStationToOrder добавляет станцию в заявку-черновик пользователя,
// создавая черновик при необходимости
func (r *StationRepository) AddStationToOrder(stationID uint, creatorID uint, energyKWH float64) error {
	var order ds.ChargingOrder

	err := r.db.Where("creator_id = ? AND status = ?", creatorID, ds.StatusDraft).
		First(&order).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		order = ds.ChargingOrder{
			Status:     ds.StatusDraft,
			DateCreate: time.Now(),
			CreatorID:  creatorID,
		}
		if err := r.db.Create(&order).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var existingItem ds.OrderStation
	err = r.db.Where("order_id = ? AND station_id = ?", order.ID, stationID).
		First(&existingItem).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		orderItem := ds.OrderStation{
			OrderID:   order.ID,
			StationID: stationID,
			EnergyKWH: energyKWH,
		}
		if err := r.db.Create(&orderItem).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else {
		existingItem.EnergyKWH = energyKWH
		if err := r.db.Save(&existingItem).Error; err != nil {
			return err
		}
	}

	return nil
}

// UpdateStationPhoto обновляет фото станции
func (r *StationRepository) UpdateStationPhoto(id uint, fileHeader *multipart.FileHeader) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var station ds.Station
		if err := tx.Where("is_delete = false").First(&station, id).Error; err != nil {
			return err
		}

		if station.Photo != "" {
			if err := r.deleteStationImage(station.Photo); err != nil {
				return err
			}
		}

		fileExt := filepath.Ext(fileHeader.Filename)
		newFileName := fmt.Sprintf("station_%d_%d%s", id, time.Now().Unix(), fileExt)
		newFileName = strings.ToLower(newFileName)

		imageURL, err := r.saveStationImageToMinIO(newFileName, fileHeader)
		if err != nil {
			return err
		}

		return tx.Model(&station).Update("photo", imageURL).Error
	})
}

// saveStationImageToMinIO сохраняет изображение в MinIO
func (r *StationRepository) saveStationImageToMinIO(fileName string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch {
	case strings.HasSuffix(fileName, ".jpg"), strings.HasSuffix(fileName, ".jpeg"):
		contentType = "image/jpeg"
	case strings.HasSuffix(fileName, ".png"):
		contentType = "image/png"
	case strings.HasSuffix(fileName, ".gif"):
		contentType = "image/gif"
	}

	_, err = r.minioClient.PutObject(context.Background(), stationImagesBucket, fileName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s:%s/%s/%s", os.Getenv("MINIO_HOST"), os.Getenv("MINIO_SERVER_PORT"), stationImagesBucket, fileName), nil
}

func (r *StationRepository) deleteStationImage(imageURL string) error {
	if imageURL == "" {
		return nil
	}

	minioOrigin := os.Getenv("MINIO_HOST") + ":" + os.Getenv("MINIO_SERVER_PORT")

	if !strings.Contains(imageURL, minioOrigin) {
		logrus.Printf("Image URL %s doesn't contain MinIO origin, skipping deletion", imageURL)
		return nil
	}

	parts := strings.Split(imageURL, "/")
	if len(parts) == 0 {
		return errors.New("invalid image URL format")
	}

	fileName := parts[len(parts)-1]

	_, err := r.minioClient.StatObject(context.Background(), stationImagesBucket, fileName, minio.StatObjectOptions{})
	if err != nil {
		logrus.Printf("File %s not found in MinIO bucket %s, skipping deletion", fileName, stationImagesBucket)
		return nil
	}

	err = r.minioClient.RemoveObject(context.Background(), stationImagesBucket, fileName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object from MinIO: %v", err)
	}

	logrus.Printf("Successfully deleted station image from MinIO: %s", fileName)
	return nil
}
