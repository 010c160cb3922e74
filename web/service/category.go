package service

import (
	"github.com/taskdeck/taskdeck/database"
	"github.com/taskdeck/taskdeck/database/model"

	"github.com/google/uuid"
)

type CategoryService struct{}

func (s *CategoryService) GetCategories(userId string) ([]*model.Category, error) {
	db := database.GetDB()
	categories := make([]*model.Category, 0)
	err := db.Model(model.Category{}).
		Where("user_id = ?", userId).
		Order("name asc").
		Find(&categories).
		Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(userId string, id string) (*model.Category, error) {
	db := database.GetDB()
	category := &model.Category{}
	err := db.Model(model.Category{}).
		Where("id = ? and user_id = ?", id, userId).
		First(category).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetCategoryByName(userId string, name string) (*model.Category, error) {
	db := database.GetDB()
	category := &model.Category{}
	err := db.Model(model.Category{}).
		Where("name = ? and user_id = ?", name, userId).
		First(category).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(userId string, name string) (*model.Category, error) {
	if name == "" {
		return nil, ErrInvalidArgument
	}
	category := &model.Category{
		Id:     uuid.NewString(),
		Name:   name,
		UserId: userId,
	}
	db := database.GetDB()
	if err := db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes an empty category. A category still holding tasks
// or notes is refused.
func (s *CategoryService) DeleteCategory(userId string, id string) error {
	db := database.GetDB()

	category := &model.Category{}
	err := db.Model(model.Category{}).
		Where("id = ? and user_id = ?", id, userId).
		First(category).
		Error
	if database.IsNotFound(err) {
		return ErrNotFound
	} else if err != nil {
		return err
	}

	var taskCount int64
	err = db.Model(model.Task{}).
		Where("category_id = ? and user_id = ?", id, userId).
		Count(&taskCount).
		Error
	if err != nil {
		return err
	}
	if taskCount > 0 {
		return ErrCategoryInUse
	}

	var noteCount int64
	err = db.Model(model.Note{}).
		Where("category_id = ? and user_id = ?", id, userId).
		Count(&noteCount).
		Error
	if err != nil {
		return err
	}
	if noteCount > 0 {
		return ErrCategoryInUse
	}

	return db.Delete(category).Error
}
