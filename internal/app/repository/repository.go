package repository

import (
	"Backend-Charging/internal/app/config"
	"Backend-Charging/internal/app/dsn"
	"Backend-Charging/internal/app/redis"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db          *gorm.DB
	redisClient *redis.Client
	Station     *StationRepository
	Order       *OrderRepository
	User        *UserRepository
}

func NewRepository(cfg *config.Config) (*Repository, error) {
	// Инициализируем базу данных
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Инициализируем Redis клиент
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logrus.Warnf("Failed to initialize Redis client: %v", err)
		// Продолжаем без Redis, но логируем предупреждение
	}

	// Инициализируем MinIO клиент
	minioClient, err := InitMinIOClient(cfg)
	if err != nil {
		return nil, err
	}

	repo := &Repository{
		db:          db,
		redisClient: redisClient,
		Station:     NewStationRepository(db, minioClient),
		Order:       NewOrderRepository(db),
		User:        NewUserRepository(db),
	}

	return repo, nil
}

// GetRedisClient возвращает Redis клиент
func (r *Repository) GetRedisClient() *redis.Client {
	return r.redisClient
}

// Close закрывает все соединения
func (r *Repository) Close() {
	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			logrus.Errorf("Error closing Redis client: %v", err)
		}
	}
}

// InitMinIOClient создает MinIO клиент и bucket для фото станций
func InitMinIOClient(cfg *config.Config) (*minio.Client, error) {
	minioClient, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	ctx := context.Background()

	// Проверяем подключение
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		return nil, fmt.Errorf("minio connection test failed: %v", err)
	}

	// Создаем bucket если не существует
	exists, err := minioClient.BucketExists(ctx, stationImagesBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = minioClient.MakeBucket(ctx, stationImagesBucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %v", err)
		}
	}

	logrus.Info("MinIO client initialized successfully")
	return minioClient, nil
}
