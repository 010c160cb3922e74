package service

import (
	"testing"

	"github.com/taskdeck/taskdeck/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesSortedByName(t *testing.T) {
	setupTestDB(t)
	user := testUser(t, "alice")

	testCategory(t, user.Id, "work")
	testCategory(t, user.Id, "errands")
	testCategory(t, user.Id, "ideas")

	categories, err := (&CategoryService{}).GetCategories(user.Id)
	require.NoError(t, err)

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	assert.Equal(t, []string{"errands", "ideas", "work"}, names)
}

func TestCategoriesOwnerScoping(t *testing.T) {
	setupTestDB(t)
	alice := testUser(t, "alice")
	mallory := testUser(t, "mallory")

	category := testCategory(t, alice.Id, "private")

	categories, err := (&CategoryService{}).GetCategories(mallory.Id)
	require.NoError(t, err)
	assert.Empty(t, categories)

	_, err = (&CategoryService{}).GetCategory(mallory.Id, category.Id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, (&CategoryService{}).DeleteCategory(mallory.Id, category.Id), ErrNotFound)
}

func TestDeleteCategoryRefusedWhileInUse(t *testing.T) {
	setupTestDB(t)
	user := testUser(t, "alice")
	service := CategoryService{}

	withTask := testCategory(t, user.Id, "with task")
	_, err := (&TaskService{}).CreateTask(user.Id, &model.Task{
		Name:       "task",
		CategoryId: withTask.Id,
	})
	require.NoError(t, err)
	assert.ErrorIs(t, service.DeleteCategory(user.Id, withTask.Id), ErrCategoryInUse)

	withNote := testCategory(t, user.Id, "with note")
	_, err = (&NoteService{}).CreateNote(user.Id, &model.Note{
		Name:       "note",
		CategoryId: withNote.Id,
	})
	require.NoError(t, err)
	assert.ErrorIs(t, service.DeleteCategory(user.Id, withNote.Id), ErrCategoryInUse)

	empty := testCategory(t, user.Id, "empty")
	require.NoError(t, service.DeleteCategory(user.Id, empty.Id))
	_, err = service.GetCategory(user.Id, empty.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}
