package controller

import (
	"github.com/taskdeck/taskdeck/database/model"
	"github.com/taskdeck/taskdeck/web/service"
	"github.com/taskdeck/taskdeck/web/session"

	"github.com/gin-gonic/gin"
)

// TaskController handles the task routes of a category.
type TaskController struct {
	taskService service.TaskService
}

// NewTaskController creates a new TaskController and sets up its routes.
func NewTaskController(g *gin.RouterGroup) *TaskController {
	a := &TaskController{}
	a.initRouter(g)
	return a
}

func (a *TaskController) initRouter(g *gin.RouterGroup) {
	g.GET("/list/:categoryId", a.getTasks)
	g.POST("/add", a.addTask)
	g.POST("/update/:id", a.updateTask)
	g.POST("/status/:id", a.setTaskStatus)
	g.POST("/del/:id", a.deleteTask)
}

func (a *TaskController) getTasks(c *gin.Context) {
	user := session.GetLoginUser(c)
	tasks, err := a.taskService.GetTasks(user.Id, c.Param("categoryId"))
	if err != nil {
		jsonMsg(c, "failed to list tasks:", err)
		return
	}
	jsonObj(c, tasks, nil)
}

func (a *TaskController) addTask(c *gin.Context) {
	task := &model.Task{}
	if err := c.ShouldBind(task); err != nil {
		jsonMsg(c, "failed to add task:", service.ErrInvalidArgument)
		return
	}

	user := session.GetLoginUser(c)
	task, err := a.taskService.CreateTask(user.Id, task)
	if err != nil {
		jsonMsg(c, "failed to add task:", err)
		return
	}
	jsonObj(c, task, nil)
}

func (a *TaskController) updateTask(c *gin.Context) {
	task := &model.Task{}
	if err := c.ShouldBind(task); err != nil {
		jsonMsg(c, "failed to update task:", service.ErrInvalidArgument)
		return
	}
	task.Id = c.Param("id")

	user := session.GetLoginUser(c)
	if err := a.taskService.UpdateTask(user.Id, task); err != nil {
		jsonMsg(c, "failed to update task:", err)
		return
	}
	jsonMsg(c, "task updated", nil)
}

func (a *TaskController) setTaskStatus(c *gin.Context) {
	var form struct {
		Value bool `json:"value" form:"value"`
	}
	if err := c.ShouldBind(&form); err != nil {
		jsonMsg(c, "failed to update task status:", service.ErrInvalidArgument)
		return
	}

	user := session.GetLoginUser(c)
	if err := a.taskService.SetTaskStatus(user.Id, c.Param("id"), form.Value); err != nil {
		jsonMsg(c, "failed to update task status:", err)
		return
	}
	jsonMsg(c, "task status updated", nil)
}

func (a *TaskController) deleteTask(c *gin.Context) {
	user := session.GetLoginUser(c)
	if err := a.taskService.DeleteTask(user.Id, c.Param("id")); err != nil {
		jsonMsg(c, "failed to delete task:", err)
		return
	}
	jsonMsg(c, "task deleted", nil)
}
