package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUser(t *testing.T) {
	setupTestDB(t)

	service := UserService{}
	user, err := service.CreateUser("alice", "open sesame")
	require.NoError(t, err)

	checked, err := service.CheckUser("alice", "open sesame")
	require.NoError(t, err)
	assert.Equal(t, user.Id, checked.Id)

	// Wrong password and unknown user are indistinguishable.
	_, err = service.CheckUser("alice", "wrong")
	assert.ErrorIs(t, err, ErrWrongCredentials)
	_, err = service.CheckUser("nobody", "open sesame")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestCheckUserSeededAdmin(t *testing.T) {
	setupTestDB(t)

	// InitDB seeds a default admin into an empty database.
	user, err := (&UserService{}).CheckUser("admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotContains(t, user.PasswordHash, "admin")
}

func TestCreateUserValidation(t *testing.T) {
	setupTestDB(t)

	service := UserService{}
	_, err := service.CreateUser("", "password")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = service.CreateUser("bob", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = service.CreateUser("carol", "password")
	require.NoError(t, err)
	_, err = service.CreateUser("carol", "password")
	assert.Error(t, err)
}

func TestUpdateFirstUser(t *testing.T) {
	setupTestDB(t)

	service := UserService{}
	require.NoError(t, service.UpdateFirstUser("root", "hunter2"))

	user, err := service.CheckUser("root", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "root", user.Username)

	_, err = service.CheckUser("admin", "admin")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}
