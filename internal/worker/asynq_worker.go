package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/lamine-sport/api/internal/logger"
	"github.com/lamine-sport/api/internal/provider"
	"github.com/lamine-sport/api/internal/queue"
	"github.com/lamine-sport/api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskWelcomeEmail, c.handleWelcomeEmail)
	mux.HandleFunc(queue.TaskRecoveryEmail, c.handleRecoveryEmail)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiverEmail := strings.TrimSpace(order.ReceiverEmail)
	locale := strings.TrimSpace(payload.Locale)
	if order.UserID != 0 {
		user, err := c.UserRepo.GetByID(order.UserID)
		if err != nil {
			logger.Warnw("worker_order_status_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
			return err
		}
		if user != nil {
			if receiverEmail == "" {
				receiverEmail = strings.TrimSpace(user.Email)
			}
			if locale == "" {
				locale = strings.TrimSpace(user.Locale)
			}
		}
	}
	if receiverEmail == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID, "order_code", order.OrderCode)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_email_skip_email_service_nil", "order_id", order.ID, "order_code", order.OrderCode)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderCode: order.OrderCode,
		Status:    status,
		Receiver:  order.Receiver,
		Total:     order.TotalPrice,
	}
	if err := c.EmailService.SendOrderStatusEmail(receiverEmail, input, locale); err != nil {
		logger.Warnw("worker_order_status_email_send_failed",
			"order_id", order.ID,
			"order_code", order.OrderCode,
			"receiver_email", receiverEmail,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleWelcomeEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_welcome_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.WelcomeEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_welcome_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserID == 0 {
		logger.Debugw("worker_welcome_email_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}
	user, err := c.UserRepo.GetByID(payload.UserID)
	if err != nil {
		logger.Warnw("worker_welcome_email_fetch_user_failed", "user_id", payload.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_welcome_email_skip_empty_receiver", "user_id", payload.UserID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_welcome_email_skip_email_service_nil", "user_id", user.ID)
		return nil
	}
	locale := strings.TrimSpace(payload.Locale)
	if locale == "" {
		locale = user.Locale
	}
	if err := c.EmailService.SendWelcomeEmail(user.Email, user.FullName, locale); err != nil {
		logger.Warnw("worker_welcome_email_send_failed", "user_id", user.ID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleRecoveryEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_recovery_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.RecoveryEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_recovery_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserID == 0 || strings.TrimSpace(payload.Token) == "" {
		logger.Debugw("worker_recovery_email_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}
	user, err := c.UserRepo.GetByID(payload.UserID)
	if err != nil {
		logger.Warnw("worker_recovery_email_fetch_user_failed", "user_id", payload.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_recovery_email_skip_empty_receiver", "user_id", payload.UserID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_recovery_email_skip_email_service_nil", "user_id", user.ID)
		return nil
	}
	locale := strings.TrimSpace(payload.Locale)
	if locale == "" {
		locale = user.Locale
	}
	if err := c.EmailService.SendRecoveryEmail(user.Email, user.FullName, payload.Token, locale); err != nil {
		logger.Warnw("worker_recovery_email_send_failed", "user_id", user.ID, "error", err)
		return err
	}
	return nil
}
