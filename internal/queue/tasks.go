package queue

import (
	"encoding/json"

	"github.com/lamine-sport/api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusEmail 订单状态邮件通知任务
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskWelcomeEmail 注册欢迎邮件任务
	TaskWelcomeEmail = constants.TaskWelcomeEmail
	// TaskRecoveryEmail 找回密码邮件任务
	TaskRecoveryEmail = constants.TaskRecoveryEmail
)

// OrderStatusEmailPayload 订单状态邮件任务载荷
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
	Locale  string `json:"locale"`
}

// WelcomeEmailPayload 欢迎邮件任务载荷
type WelcomeEmailPayload struct {
	UserID uint   `json:"user_id"`
	Locale string `json:"locale"`
}

// RecoveryEmailPayload 找回密码邮件任务载荷
type RecoveryEmailPayload struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
	Locale string `json:"locale"`
}

// NewOrderStatusEmailTask 创建订单状态邮件任务
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}

// NewWelcomeEmailTask 创建欢迎邮件任务
func NewWelcomeEmailTask(payload WelcomeEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWelcomeEmail, body), nil
}

// NewRecoveryEmailTask 创建找回密码邮件任务
func NewRecoveryEmailTask(payload RecoveryEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRecoveryEmail, body), nil
}
