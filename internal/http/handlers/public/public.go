package public

import (
	"time"

	"github.com/lamine-sport/api/internal/cache"
	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey = "public:config"
	publicConfigCacheTTL = 60 * time.Second
)

// GetConfig 获取全局配置
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	data := map[string]interface{}{
		"languages":        constants.SupportedLocales,
		"default_language": constants.LocaleViVN,
		"payment_methods":  []string{constants.PaymentMethodCOD, constants.PaymentMethodTransfer},
		"shipping": map[string]interface{}{
			"flat_fee":            h.Config.Shipping.FlatFee,
			"free_shipping_above": h.Config.Shipping.FreeShippingAbove,
		},
		"google_auth": map[string]interface{}{
			"enabled":   h.Config.Google.Enabled,
			"client_id": h.Config.Google.ClientID,
		},
	}

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}
