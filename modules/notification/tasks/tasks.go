package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"volunteerhub/core/constants"
	"volunteerhub/core/logger"
	"volunteerhub/core/utils"

	"github.com/hibiken/asynq"
)

// Task type names, namespaced by concern.
const (
	TypeEmailDeliver = "email:deliver"
)

// Email template files under templates/.
const (
	TemplateDecisionEmail = "decision_email.html"
)

// EmailPayload is the serialized body of an email delivery task. The
// template is rendered at delivery time, so a retried task picks up
// template fixes without re-enqueueing.
type EmailPayload struct {
	To       []string           `json:"to"`
	Subject  string             `json:"subject"`
	Template string             `json:"template"`
	Data     utils.TemplateData `json:"data"`
}

// Client wraps the asynq client so callers enqueue tasks without touching
// asynq types directly.
type Client struct {
	inner *asynq.Client
}

func NewClient(opt asynq.RedisClientOpt) *Client {
	return &Client{inner: asynq.NewClient(opt)}
}

func (c *Client) Close() error {
	return c.inner.Close()
}

// EnqueueEmail queues an email for delivery on the emails queue.
func (c *Client) EnqueueEmail(ctx context.Context, payload EmailPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	task := asynq.NewTask(TypeEmailDeliver, data)
	info, err := c.inner.EnqueueContext(ctx, task, asynq.Queue(constants.QueueEmails), asynq.MaxRetry(3))
	if err != nil {
		logger.Error("Tasks:EnqueueEmail:Error:", err)
		return err
	}

	logger.Info("Email task enqueued", "task_id", info.ID, "queue", info.Queue)
	return nil
}

// RegisterHandlers attaches all task handlers to the worker mux.
func RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeEmailDeliver, HandleEmailTask)
}

// HandleEmailTask delivers a queued email over SMTP. Returning an error lets
// asynq retry with backoff up to the task's MaxRetry.
func HandleEmailTask(ctx context.Context, t *asynq.Task) error {
	var payload EmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal email payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := utils.SendTemplateEmailFromTemplatesDir(payload.To, payload.Subject, payload.Template, payload.Data); err != nil {
		logger.Error("Tasks:HandleEmailTask:Error:", err)
		return err
	}

	logger.Info("Email delivered", "to", payload.To, "subject", payload.Subject)
	return nil
}
