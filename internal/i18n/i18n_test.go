package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContextWithRequest(t *testing.T, target, acceptLanguage string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	if acceptLanguage != "" {
		c.Request.Header.Set("Accept-Language", acceptLanguage)
	}
	return c
}

func TestResolveLocaleQueryOverridesHeader(t *testing.T) {
	c := testContextWithRequest(t, "/api/v1/products?lang=en", "vi-VN,vi;q=0.9")
	if got := ResolveLocale(c); got != LocaleEN {
		t.Fatalf("query lang should win, got %s", got)
	}
}

func TestResolveLocaleFromAcceptLanguage(t *testing.T) {
	c := testContextWithRequest(t, "/api/v1/products", "fr-FR,fr;q=0.9,en-GB;q=0.8")
	if got := ResolveLocale(c); got != LocaleEN {
		t.Fatalf("expected en-US from en-GB tag, got %s", got)
	}
}

func TestResolveLocaleFallsBackToDefault(t *testing.T) {
	c := testContextWithRequest(t, "/api/v1/products?lang=jp", "fr-FR")
	if got := ResolveLocale(c); got != DefaultLocale {
		t.Fatalf("expected default locale, got %s", got)
	}
	if got := ResolveLocale(nil); got != DefaultLocale {
		t.Fatalf("nil context should use default locale, got %s", got)
	}
}

func TestTFallsBackAcrossCatalogs(t *testing.T) {
	if got := T(LocaleEN, "error.coupon_not_found"); got == "" || got == "error.coupon_not_found" {
		t.Fatalf("english catalog should carry coupon message, got %q", got)
	}
	// 未收录的语言回退默认语言
	if got, want := T("fr-FR", "error.coupon_not_found"), T(DefaultLocale, "error.coupon_not_found"); got != want {
		t.Fatalf("unknown locale should fall back, got %q want %q", got, want)
	}
	if got := T(LocaleVI, "error.__missing__"); got != "error.__missing__" {
		t.Fatalf("missing key should echo the key, got %q", got)
	}
}

func TestSprintfInjectsArgs(t *testing.T) {
	got := Sprintf(LocaleEN, "error.password_min_length", 8)
	if got == "error.password_min_length" {
		t.Fatalf("expected formatted message, got key echo")
	}
	if want := Sprintf(LocaleVI, "error.password_min_length", 8); want == got {
		t.Fatalf("vi and en messages should differ")
	}
}
