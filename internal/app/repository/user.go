package repository

import (
	"Backend-Charging/internal/app/ds"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// RegisterUser регистрирует пользователя, пароль хранится как bcrypt-хэш
func (r *UserRepository) RegisterUser(user *ds.Users) error {
	if user.Login == "" || user.Password == "" {
		return fmt.Errorf("login and password are required")
	}

	var existing ds.Users
	err := r.db.Where("login = ?", user.Login).First(&existing).Error
	if err == nil {
		return fmt.Errorf("user with login %q already exists", user.Login)
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)

	return r.db.Create(user).Error
}

// AuthenticateUser проверяет логин и пароль
func (r *UserRepository) AuthenticateUser(login, password string) (ds.Users, error) {
	var user ds.Users
	err := r.db.Where("login = ?", login).First(&user).Error
	if err != nil {
		return ds.Users{}, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ds.Users{}, fmt.Errorf("invalid credentials")
	}

	return user, nil
}

// GetUserByID возвращает пользователя по ID
func (r *UserRepository) GetUserByID(id uint) (ds.Users, error) {
	var user ds.Users
	err := r.db.Where("user_id = ?", id).First(&user).Error
	if err != nil {
		return ds.Users{}, err
	}
	return user, nil
}

// GetUserProfile возвращает профиль пользователя без пароля
func (r *UserRepository) GetUserProfile(id uint) (ds.Users, error) {
	user, err := r.GetUserByID(id)
	if err != nil {
		return ds.Users{}, err
	}
	user.Password = ""
	return user, nil
}

// UpdateUserProfile обновляет логин и/или пароль пользователя
func (r *UserRepository) UpdateUserProfile(id uint, updates map[string]interface{}) error {
	if password, ok := updates["password"].(string); ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["password"] = string(hash)
	}

	result := r.db.Model(&ds.Users{}).Where("user_id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user with id %d not found", id)
	}
	return nil
}
