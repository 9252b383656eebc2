package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 站点语言常量
const (
	LocaleVI = "vi-VN"
	LocaleEN = "en-US"
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleVI

// ResolveLocale 解析请求语言：?lang= 优先，其次 Accept-Language，最后回退默认语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		if normalized, ok := normalizeLocale(lang); ok {
			return normalized
		}
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		if normalized, ok := normalizeLocale(tag); ok {
			return normalized
		}
	}
	return DefaultLocale
}

func normalizeLocale(tag string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(tag))
	switch {
	case lower == "vi" || strings.HasPrefix(lower, "vi-"):
		return LocaleVI, true
	case lower == "en" || strings.HasPrefix(lower, "en-"):
		return LocaleEN, true
	}
	return "", false
}

// T 返回指定语言的文案，未命中时回退默认语言，再回退 key 本身
func T(locale, key string) string {
	if catalog, ok := messages[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if catalog, ok := messages[DefaultLocale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf 返回带参数的国际化文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
