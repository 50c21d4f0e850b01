package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campo/entities"
	"campo/pkg/weather/repository"
)

type weatherRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WeatherRepository { return &weatherRepo{db} }

func (r *weatherRepo) GetCache() (*entities.WeatherCache, []entities.HourlyWeatherCache, error) {
	var cur entities.WeatherCache
	if err := r.db.First(&cur, entities.WeatherCacheID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	var hourly []entities.HourlyWeatherCache
	if err := r.db.Where("cache_id = ?", entities.WeatherCacheID).Order("id ASC").Find(&hourly).Error; err != nil {
		return nil, nil, err
	}
	return &cur, hourly, nil
}

func (r *weatherRepo) SaveCurrent(w *entities.WeatherCache) error {
	w.ID = entities.WeatherCacheID
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(w).Error
}

func (r *weatherRepo) SaveHourly(rows []entities.HourlyWeatherCache) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cache_id = ?", entities.WeatherCacheID).Delete(&entities.HourlyWeatherCache{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].ID = 0
			rows[i].CacheID = entities.WeatherCacheID
		}
		return tx.Create(&rows).Error
	})
}
