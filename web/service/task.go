package service

import (
	"time"

	"github.com/taskdeck/taskdeck/database"
	"github.com/taskdeck/taskdeck/database/model"
	"github.com/taskdeck/taskdeck/logger"

	"github.com/google/uuid"
)

type TaskService struct{}

func validRecurrence(recurrence string) bool {
	switch recurrence {
	case "", model.RecurrenceDaily, model.RecurrenceWorkday:
		return true
	}
	return false
}

// GetTasks lists the tasks of a category: open before done, dated before
// undated, earliest due first.
func (s *TaskService) GetTasks(userId string, categoryId string) ([]*model.Task, error) {
	db := database.GetDB()
	tasks := make([]*model.Task, 0)
	err := db.Model(model.Task{}).
		Where("category_id = ? and user_id = ?", categoryId, userId).
		Order("status asc").
		Order("CASE WHEN due = 0 THEN 1 ELSE 0 END").
		Order("due asc").
		Find(&tasks).
		Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) CreateTask(userId string, task *model.Task) (*model.Task, error) {
	if task.Name == "" || task.CategoryId == "" {
		return nil, ErrInvalidArgument
	}
	if !validRecurrence(task.Recurrence) {
		return nil, ErrInvalidArgument
	}

	db := database.GetDB()
	var count int64
	err := db.Model(model.Category{}).
		Where("id = ? and user_id = ?", task.CategoryId, userId).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	task.Id = uuid.NewString()
	task.UserId = userId
	if err := db.Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(userId string, task *model.Task) error {
	if task.Id == "" || task.Name == "" {
		return ErrInvalidArgument
	}
	if !validRecurrence(task.Recurrence) {
		return ErrInvalidArgument
	}

	db := database.GetDB()
	result := db.Model(model.Task{}).
		Where("id = ? and user_id = ?", task.Id, userId).
		Updates(map[string]any{
			"name":       task.Name,
			"content":    task.Content,
			"due":        task.Due,
			"status":     task.Status,
			"recurrence": task.Recurrence,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TaskService) SetTaskStatus(userId string, id string, status bool) error {
	if id == "" {
		return ErrInvalidArgument
	}
	db := database.GetDB()
	result := db.Model(model.Task{}).
		Where("id = ? and user_id = ?", id, userId).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TaskService) DeleteTask(userId string, id string) error {
	if id == "" {
		return ErrInvalidArgument
	}
	db := database.GetDB()
	result := db.Where("id = ? and user_id = ?", id, userId).Delete(model.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReopenRecurringTasks resets the status of done recurring tasks: daily ones
// every day, workday ones Monday through Friday. The day is evaluated in the
// given location.
func (s *TaskService) ReopenRecurringTasks(now time.Time) (int64, error) {
	recurrences := []string{model.RecurrenceDaily}
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
	default:
		recurrences = append(recurrences, model.RecurrenceWorkday)
	}

	db := database.GetDB()
	result := db.Model(model.Task{}).
		Where("status = ? and recurrence in ?", true, recurrences).
		Update("status", false)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		logger.Infof("reopened %d recurring tasks", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
