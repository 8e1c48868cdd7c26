package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/pkg/mailer"
	mailtpl "github.com/musemarket/musemarket-api/pkg/mailer/templates"
)

// outcome tells the consumer loop what to do with a delivery.
type outcome int

const (
	ack outcome = iota
	drop
	retry
)

// jobHandler turns one queued EmailJob into a sent message.
type jobHandler struct {
	sender  mailer.Sender
	logger  *logrus.Logger
	timeout time.Duration
}

func (h *jobHandler) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		h.logger.WithError(err).Warn("bad message")
		return drop
	}
	job.Normalize()
	if !job.Valid() {
		h.logger.WithField("to", job.To).Warn("incomplete email job")
		return drop
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		s, t, ht, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			h.logger.WithError(err).WithField("template", job.Template).Error("render failed")
			return drop
		}
		subject, text, html = s, t, ht
	}

	c, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	if err := h.sender.Send(c, job.To, subject, text, html); err != nil {
		h.logger.WithError(err).WithField("to", job.To).Warn("send failed")
		return retry
	}
	h.logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email sent")
	return ack
}
