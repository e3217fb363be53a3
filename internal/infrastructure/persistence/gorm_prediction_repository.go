package persistence

import (
	"context"
	"errors"
	"fmt"

	"model_serving_service/internal/domain/serving"
	"model_serving_service/internal/infrastructure/persistence/models"
	"model_serving_service/internal/pkg/logger"

	"gorm.io/gorm"
)

// GormPredictionRepository is a GORM-backed implementation of the
// serving.PredictionRepository interface
type GormPredictionRepository struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// NewGormPredictionRepository creates a new GormPredictionRepository instance
func NewGormPredictionRepository(db *gorm.DB, logger logger.Logger) (*GormPredictionRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection must not be nil")
	}

	return &GormPredictionRepository{
		DB:     db,
		Logger: logger,
	}, nil
}

// Create adds a new PredictionMeta to the database
func (r *GormPredictionRepository) Create(ctx context.Context, prediction *serving.PredictionMeta) error {
	if err := prediction.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var model models.PredictionModel
	if err := model.FromDomain(prediction); err != nil {
		return err
	}

	if err := r.DB.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create prediction: %w", err)
	}

	r.Logger.Info(fmt.Sprintf("Created prediction metadata with id %s", prediction.ID))
	return nil
}

// List retrieves recorded predictions from the database considering the
// query filter when set
func (r *GormPredictionRepository) List(ctx context.Context, query *serving.PredictionMetaQuery) ([]*serving.PredictionMeta, error) {
	if query == nil {
		query = serving.NewPredictionMetaQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	dbQuery := r.DB.WithContext(ctx).Model(&models.PredictionModel{})

	if query.ModelName != "" {
		dbQuery = dbQuery.Where("model_name LIKE ?", "%"+query.ModelName+"%")
	}
	if query.TaskType != "" {
		dbQuery = dbQuery.Where("task_type = ?", query.TaskType)
	}
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.Since)
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "date_time_created"
	}
	sortOrder := query.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}
	dbQuery = dbQuery.Limit(limit).Offset(query.Offset)

	var rows []models.PredictionModel
	if err := dbQuery.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}

	predictions := make([]*serving.PredictionMeta, 0, len(rows))
	for i := range rows {
		prediction, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, prediction)
	}

	return predictions, nil
}

// GetByID retrieves a PredictionMeta from the database by ID
func (r *GormPredictionRepository) GetByID(ctx context.Context, predictionID string) (*serving.PredictionMeta, error) {
	var model models.PredictionModel
	err := r.DB.WithContext(ctx).Where("id = ?", predictionID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("prediction with id %s not found", predictionID)
		}
		return nil, fmt.Errorf("failed to fetch prediction: %w", err)
	}

	return model.ToDomain()
}

// DeleteByID deletes a PredictionMeta in the database by ID
func (r *GormPredictionRepository) DeleteByID(ctx context.Context, predictionID string) error {
	result := r.DB.WithContext(ctx).Where("id = ?", predictionID).Delete(&models.PredictionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete prediction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("prediction with id %s not found", predictionID)
	}

	r.Logger.Info(fmt.Sprintf("Deleted prediction metadata with id %s", predictionID))
	return nil
}
