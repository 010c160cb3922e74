package model

// Recurrence values accepted on a task. A recurring task that is done gets
// reopened by the recurring-task job on matching days.
const (
	RecurrenceDaily   = "daily"
	RecurrenceWorkday = "workday"
)

type User struct {
	Id           string `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash"`
	CreatedAt    int64  `json:"createdAt"`
}

type Category struct {
	Id     string `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" form:"name" gorm:"not null"`
	UserId string `json:"-" gorm:"index"`
}

type Task struct {
	Id         string `json:"id" form:"id" gorm:"primaryKey"`
	Name       string `json:"name" form:"name" gorm:"not null"`
	Status     bool   `json:"status" form:"status" gorm:"not null;default:false"`
	Due        int64  `json:"due" form:"due"` // unix seconds, 0 = no due date
	Content    string `json:"content" form:"content"`
	Recurrence string `json:"recurrence" form:"recurrence"`
	CategoryId string `json:"categoryId" form:"categoryId" gorm:"index"`
	UserId     string `json:"-" gorm:"index"`
}

type Note struct {
	Id         string `json:"id" form:"id" gorm:"primaryKey"`
	Name       string `json:"name" form:"name" gorm:"not null"`
	Content    string `json:"content" form:"content"`
	CategoryId string `json:"categoryId" form:"categoryId" gorm:"index"`
	UserId     string `json:"-" gorm:"index"`
	Position   int    `json:"position" gorm:"not null;default:0"`
}

type Setting struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}
