package service

import (
	"errors"
	"time"

	"github.com/taskdeck/taskdeck/database"
	"github.com/taskdeck/taskdeck/database/model"
	"github.com/taskdeck/taskdeck/logger"
	"github.com/taskdeck/taskdeck/util/crypto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct{}

func (s *UserService) GetUser(id string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetFirstUser() (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies the submitted credentials. Unknown username and wrong
// password both come back as ErrWrongCredentials so the two are not
// distinguishable by the caller.
func (s *UserService) CheckUser(username string, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrWrongCredentials
	} else if err != nil {
		return nil, err
	}

	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrWrongCredentials
	}
	return user, nil
}

func (s *UserService) UpdateUser(id string, username string, password string) error {
	db := database.GetDB()
	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	return db.Model(model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"username": username, "password_hash": hashedPassword}).
		Error
}

// UpdateFirstUser changes the credentials of the first user, creating it if
// the table is empty. Used by the CLI.
func (s *UserService) UpdateFirstUser(username string, password string) error {
	if username == "" {
		return errors.New("username can not be empty")
	} else if password == "" {
		return errors.New("password can not be empty")
	}
	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	user := &model.User{}
	err = db.Model(model.User{}).First(user).Error
	if database.IsNotFound(err) {
		user.Id = uuid.NewString()
		user.Username = username
		user.PasswordHash = hashedPassword
		user.CreatedAt = time.Now().Unix()
		return db.Model(model.User{}).Create(user).Error
	} else if err != nil {
		return err
	}
	user.Username = username
	user.PasswordHash = hashedPassword
	return db.Save(user).Error
}

// CreateUser registers a new user with a hashed password.
func (s *UserService) CreateUser(username string, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidArgument
	}
	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Id:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().Unix(),
	}
	db := database.GetDB()
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrInvalidArgument
		}
		logger.Warning("create user err:", err)
		return nil, err
	}
	return user, nil
}
