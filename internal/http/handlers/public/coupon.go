package public

import (
	"time"

	"github.com/lamine-sport/api/internal/http/response"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ValidateCouponRequest 校验优惠券请求
type ValidateCouponRequest struct {
	Code        string        `json:"code" binding:"required"`
	ProductsFee *models.Money `json:"products_fee"`
}

// ValidateCoupon 校验优惠券可用性，可选返回试算的抵扣金额
func (h *Handler) ValidateCoupon(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	coupon, err := h.CouponService.Validate(req.Code, uid, time.Now())
	if err != nil {
		respondCouponValidateError(c, err)
		return
	}

	data := gin.H{"coupon": coupon}
	if req.ProductsFee != nil {
		data["discount"] = service.ComputeDiscount(coupon, *req.ProductsFee)
	}
	response.Success(c, data)
}
