package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
)

// ScheduledTask runs a function on a cron schedule. A run that is still going when the next
// one is due makes the next one skip.
type ScheduledTask struct {
	cronID cron.EntryID
	cron   *cron.Cron
}

func NewScheduledTask(cronSpec string, taskFunc func(ctx context.Context)) (*ScheduledTask, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	task := &ScheduledTask{cron: c}

	id, err := c.AddFunc(cronSpec, func() {
		taskFunc(context.Background())
	})
	if err != nil {
		return nil, err
	}

	task.cronID = id
	c.Start()
	return task, nil
}

// Cancel unschedules the task and returns a context that is done once a running call returns.
func (s *ScheduledTask) Cancel() context.Context {
	s.cron.Remove(s.cronID)
	return s.cron.Stop()
}
