package service

import (
	"strings"

	"github.com/lamine-sport/api/internal/constants"
)

// allowedTransitions 订单状态机
// waiting_confirm -> processing/cancel
// processing      -> delivered/waiting_confirm/cancel
// delivered、cancel 为终态，自转移不合法
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusWaitingConfirm: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusCancel:     true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusDelivered:      true,
		constants.OrderStatusWaitingConfirm: true,
		constants.OrderStatusCancel:         true,
	},
	constants.OrderStatusDelivered: {},
	constants.OrderStatusCancel:    {},
}

// NormalizeOrderStatus 归一化订单状态串
func NormalizeOrderStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// IsValidOrderStatus 判断是否已知订单状态
func IsValidOrderStatus(status string) bool {
	_, ok := allowedTransitions[NormalizeOrderStatus(status)]
	return ok
}

// CanTransitionOrderStatus 判定状态转移是否合法
func CanTransitionOrderStatus(from, to string) bool {
	fromNormalized := NormalizeOrderStatus(from)
	toNormalized := NormalizeOrderStatus(to)
	targets, ok := allowedTransitions[fromNormalized]
	if !ok {
		return false
	}
	return targets[toNormalized]
}
