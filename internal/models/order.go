package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                        // 主键
	OrderCode     string         `gorm:"uniqueIndex;not null" json:"order_code"`                      // 订单编号
	UserID        uint           `gorm:"index;not null" json:"user_id"`                               // 用户ID
	Status        string         `gorm:"index;not null" json:"status"`                                // 订单状态
	Receiver      string         `gorm:"not null" json:"receiver"`                                    // 收件人
	ReceiverEmail string         `gorm:"not null" json:"receiver_email"`                              // 收件邮箱
	ReceiverPhone string         `gorm:"not null" json:"receiver_phone"`                              // 收件电话
	Address       string         `gorm:"type:text;not null" json:"address"`                           // 收货地址
	Note          string         `gorm:"type:text" json:"note"`                                       // 订单备注
	PaymentMethod string         `gorm:"not null" json:"payment_method"`                              // 支付方式（cod/transfer）
	CouponCode    string         `gorm:"index" json:"coupon_code,omitempty"`                          // 优惠码（冗余字符串，无外键约束）
	ProductsFee   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"products_fee"`   // 商品金额
	ShippingFee   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_fee"`   // 运费
	DiscountValue Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_value"` // 优惠金额
	TotalPrice    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`    // 实付金额
	CanceledAt    *time.Time     `gorm:"index" json:"canceled_at"`                                    // 取消时间
	DeliveredAt   *time.Time     `gorm:"index" json:"delivered_at"`                                   // 送达时间
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                                     // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
