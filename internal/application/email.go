package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/pkg/helpers"
	"github.com/musemarket/musemarket-api/pkg/mailer"
)

// enqueueEmail publishes job when a publisher is configured. Failures are
// logged and never surface to the caller.
func enqueueEmail(ctx context.Context, jobs JobPublisher, logger *logrus.Logger, job mailer.EmailJob) {
	if jobs == nil {
		return
	}
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := jobs.PublishJSON(c, job); err != nil {
		if logger != nil {
			logger.WithError(err).WithField("template", job.Template).WithField("to", job.To).Warn("enqueue email failed")
		}
		return
	}
	helpers.EmailsEnqueued.Add(1)
}
