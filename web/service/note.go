package service

import (
	"context"

	"github.com/taskdeck/taskdeck/database"
	"github.com/taskdeck/taskdeck/database/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteService manages notes and the dense ordering inside each
// (category, owner) partition: positions are always exactly 0..n-1. Every
// mutation that can disturb that ordering runs in a single transaction, so
// concurrent callers are serialized by the database and never observe a
// partial shift.
type NoteService struct{}

func (s *NoteService) GetNotes(userId string, categoryId string) ([]*model.Note, error) {
	db := database.GetDB()
	notes := make([]*model.Note, 0)
	err := db.Model(model.Note{}).
		Where("category_id = ? and user_id = ?", categoryId, userId).
		Order("position asc").
		Find(&notes).
		Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote appends a note at the end of its partition. The partition count
// and the insert happen in one transaction so two concurrent creates cannot
// claim the same position.
func (s *NoteService) CreateNote(userId string, note *model.Note) (*model.Note, error) {
	if note.Name == "" || note.CategoryId == "" {
		return nil, ErrInvalidArgument
	}

	db := database.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(model.Category{}).
			Where("id = ? and user_id = ?", note.CategoryId, userId).
			Count(&count).
			Error
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}

		err = tx.Model(model.Note{}).
			Where("category_id = ? and user_id = ?", note.CategoryId, userId).
			Count(&count).
			Error
		if err != nil {
			return err
		}

		note.Id = uuid.NewString()
		note.UserId = userId
		note.Position = int(count)
		return tx.Create(note).Error
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) UpdateNote(userId string, id string, name string, content string) error {
	if id == "" || name == "" {
		return ErrInvalidArgument
	}
	db := database.GetDB()
	result := db.Model(model.Note{}).
		Where("id = ? and user_id = ?", id, userId).
		Updates(map[string]any{"name": name, "content": content})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteNote removes a note and closes the position gap it leaves, keeping
// the partition contiguous.
func (s *NoteService) DeleteNote(userId string, id string) error {
	if id == "" {
		return ErrInvalidArgument
	}

	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		note := &model.Note{}
		err := tx.Model(model.Note{}).
			Where("id = ? and user_id = ?", id, userId).
			First(note).
			Error
		if database.IsNotFound(err) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		if err := tx.Delete(note).Error; err != nil {
			return err
		}

		return tx.Model(model.Note{}).
			Where("category_id = ? and user_id = ? and position > ?", note.CategoryId, userId, note.Position).
			Update("position", gorm.Expr("position - 1")).
			Error
	})
}

// ReorderNotes moves a note from position from to position to within its
// partition, shifting everything in between by one. The stored position is
// re-read inside the transaction and must still equal from; a stale request
// is rejected rather than applied on top of someone else's move. Cancelling
// ctx before commit rolls the whole move back.
func (s *NoteService) ReorderNotes(ctx context.Context, userId string, movedNoteId string, from int, to int) error {
	if movedNoteId == "" || from < 0 || to < 0 {
		return ErrInvalidArgument
	}
	if from == to {
		return nil
	}

	db := database.GetDB()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		note := &model.Note{}
		err := tx.Model(model.Note{}).
			Where("id = ? and user_id = ?", movedNoteId, userId).
			First(note).
			Error
		if database.IsNotFound(err) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		var count int64
		err = tx.Model(model.Note{}).
			Where("category_id = ? and user_id = ?", note.CategoryId, userId).
			Count(&count).
			Error
		if err != nil {
			return err
		}

		if note.Position != from {
			return ErrInvalidArgument
		}
		if from >= int(count) || to >= int(count) {
			return ErrInvalidArgument
		}

		if to > from {
			err = tx.Model(model.Note{}).
				Where("category_id = ? and user_id = ? and position > ? and position <= ?",
					note.CategoryId, userId, from, to).
				Update("position", gorm.Expr("position - 1")).
				Error
		} else {
			err = tx.Model(model.Note{}).
				Where("category_id = ? and user_id = ? and position >= ? and position < ?",
					note.CategoryId, userId, to, from).
				Update("position", gorm.Expr("position + 1")).
				Error
		}
		if err != nil {
			return err
		}

		return tx.Model(model.Note{}).
			Where("id = ?", note.Id).
			Update("position", to).
			Error
	})
}
