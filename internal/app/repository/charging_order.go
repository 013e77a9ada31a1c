package repository

import (
	"Backend-Charging/internal/app/ds"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

// ==================== Домен заявки (ChargingOrder) ====================

// GetOrderCart возвращает иконку корзины (id заявки-черновика и количество станций)
func (r *OrderRepository) GetOrderCart(creatorID uint) (uint, int64, error) {
	var order ds.ChargingOrder
	var count int64

	err := r.db.Where("creator_id = ? AND status = ?", creatorID, ds.StatusDraft).
		First(&order).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	err = r.db.Model(&ds.OrderStation{}).
		Where("order_id = ?", order.ID).
		Count(&count).Error
	if err != nil {
		return 0, 0, err
	}

	return order.ID, count, nil
}

// GetOrders возвращает список заявок с фильтрацией (кроме удаленных и черновиков).
// Не-модератор видит только свои заявки
func (r *OrderRepository) GetOrders(status string, dateFrom, dateTo time.Time, userID uint, isModerator bool) ([]ds.ChargingOrder, error) {
	var orders []ds.ChargingOrder

	query := r.db.
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id, login")
		}).
		Preload("Moderator", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id, login")
		}).
		Where("status != ? AND status != ?", ds.StatusDeleted, ds.StatusDraft)

	if !isModerator {
		query = query.Where("creator_id = ?", userID)
	}

	if status != "" {
		query = query.Where("status = ?", status)
	}

	if !dateFrom.IsZero() {
		query = query.Where("date_create >= ?", dateFrom)
	}
	if !dateTo.IsZero() {
		query = query.Where("date_create <= ?", dateTo)
	}

	err := query.Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrder возвращает одну заявку с ее станциями
func (r *OrderRepository) GetOrder(id uint) (ds.ChargingOrder, error) {
	var order ds.ChargingOrder

	err := r.db.
		Preload("OrderStations.Station").
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id, login")
		}).
		Preload("Moderator", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id, login")
		}).
		Where("id = ?", id).
		First(&order).Error

	if err != nil {
		return ds.ChargingOrder{}, err
	}

	return order, nil
}

// UpdateOrderFields обновляет поля заявки
func (r *OrderRepository) UpdateOrderFields(id uint, updates map[string]interface{}) error {
	// Эти поля менять нельзя
	delete(updates, "id")
	delete(updates, "creator_id")
	delete(updates, "date_create")

	updates["date_update"] = time.Now()

	result := r.db.Model(&ds.ChargingOrder{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logrus.Errorf("Database error updating order %d: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order with id %d not found", id)
	}

	return nil
}

// FormOrder формирует заявку создателем (Черновик -> Сформирована)
func (r *OrderRepository) FormOrder(id uint, creatorID uint) error {
	var order ds.ChargingOrder
	err := r.db.Where("id = ? AND creator_id = ? AND status = ?", id, creatorID, ds.StatusDraft).
		First(&order).Error
	if err != nil {
		return fmt.Errorf("order not found or not in draft status")
	}

	var stationCount int64
	err = r.db.Model(&ds.OrderStation{}).Where("order_id = ?", id).Count(&stationCount).Error
	if err != nil {
		return err
	}
	if stationCount == 0 {
		return fmt.Errorf("at least one station must be added to the order")
	}

	updates := map[string]interface{}{
		"status":      ds.StatusFormed,
		"date_update": time.Now(),
		"date_finish": gorm.Expr("NULL"),
	}

	result := r.db.Model(&ds.ChargingOrder{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order with id %d not found", id)
	}
	return nil
}

// CompleteOrder завершает/отклоняет заявку модератором.
// При завершении фиксируется суммарная энергия по станциям заявки
func (r *OrderRepository) CompleteOrder(id uint, moderatorID uint, status string) error {
	if status != ds.StatusCompleted && status != ds.StatusRejected {
		return fmt.Errorf("invalid status transition")
	}

	var order ds.ChargingOrder
	err := r.db.Where("id = ? AND status = ?", id, ds.StatusFormed).First(&order).Error
	if err != nil {
		return fmt.Errorf("order not found or not in formed status")
	}

	updates := map[string]interface{}{
		"status":       status,
		"moderator_id": moderatorID,
		"date_update":  time.Now(),
		"date_finish":  time.Now(),
	}

	if status == ds.StatusCompleted {
		updates["total_energy_kwh"] = r.calculateTotalEnergy(id)
	}

	result := r.db.Model(&ds.ChargingOrder{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order with id %d not found", id)
	}

	logrus.Infof("Order %d moderated with status %q", id, status)
	return nil
}

// DeleteOrder удаляет заявку (только черновик)
func (r *OrderRepository) DeleteOrder(orderID uint) error {
	var order ds.ChargingOrder
	err := r.db.Where("id = ? AND status = ?", orderID, ds.StatusDraft).First(&order).Error
	if err != nil {
		return fmt.Errorf("only draft orders can be deleted")
	}

	updates := map[string]interface{}{
		"status":      ds.StatusDeleted,
		"date_update": time.Now(),
	}

	result := r.db.Model(&ds.ChargingOrder{}).Where("id = ?", orderID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order with id %d not found", orderID)
	}
	return nil
}

// ==================== Домен м-м (OrderStation) ====================

// DeleteOrderStation удаляет станцию из заявки
func (r *OrderRepository) DeleteOrderStation(orderID uint, stationID uint) error {
	result := r.db.Where("order_id = ? AND station_id = ?", orderID, stationID).
		Delete(&ds.OrderStation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("station not found in order")
	}
	return nil
}

// UpdateOrderStation изменяет планируемую энергию станции в заявке
func (r *OrderRepository) UpdateOrderStation(orderID uint, stationID uint, energyKWH float64) error {
	result := r.db.Model(&ds.OrderStation{}).
		Where("order_id = ? AND station_id = ?", orderID, stationID).
		Update("energy_kwh", energyKWH)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("station not found in order")
	}
	return nil
}

// ==================== Вспомогательные методы ====================

// calculateTotalEnergy суммирует планируемую энергию по станциям заявки
func (r *OrderRepository) calculateTotalEnergy(orderID uint) float64 {
	var items []ds.OrderStation
	r.db.Where("order_id = ?", orderID).Find(&items)

	total := 0.0
	for _, item := range items {
		total += item.EnergyKWH
	}
	return total
}
