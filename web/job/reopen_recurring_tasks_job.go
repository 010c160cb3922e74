// Package job contains the scheduled background jobs of the web server.
package job

import (
	"time"

	"github.com/taskdeck/taskdeck/logger"
	"github.com/taskdeck/taskdeck/web/service"

	"go.uber.org/atomic"
)

// ReopenRecurringTasksJob reopens done recurring tasks once a day: daily
// tasks every day, workday tasks Monday through Friday. The day boundary is
// evaluated in the workspace time location the cron runs in.
type ReopenRecurringTasksJob struct {
	taskService service.TaskService
	location    *time.Location

	running atomic.Bool
}

func NewReopenRecurringTasksJob(location *time.Location) *ReopenRecurringTasksJob {
	return &ReopenRecurringTasksJob{location: location}
}

// Run is the cron entry point.
func (j *ReopenRecurringTasksJob) Run() {
	if !j.running.CompareAndSwap(false, true) {
		logger.Warning("reopen recurring tasks job still running, skipping")
		return
	}
	defer j.running.Store(false)

	if _, err := j.taskService.ReopenRecurringTasks(time.Now().In(j.location)); err != nil {
		logger.Warning("reopen recurring tasks job err:", err)
	}
}
