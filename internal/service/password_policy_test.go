package service

import (
	"errors"
	"testing"

	"github.com/lamine-sport/api/internal/config"
)

func TestValidatePasswordMinLength(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8}

	if err := validatePassword(policy, "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("short password want ErrWeakPassword, got %v", err)
	}
	if err := validatePassword(policy, "longenough"); err != nil {
		t.Fatalf("valid password should pass, got %v", err)
	}
}

func TestValidatePasswordCharacterClasses(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	cases := []struct {
		password string
		key      string
	}{
		{"lower1!aa", "error.password_require_upper"},
		{"UPPER1!AA", "error.password_require_lower"},
		{"Password!", "error.password_require_number"},
		{"Password1", "error.password_require_special"},
	}
	for _, tc := range cases {
		err := validatePassword(policy, tc.password)
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("%q want ErrWeakPassword, got %v", tc.password, err)
		}
		keyed, ok := err.(interface{ Key() string })
		if !ok {
			t.Fatalf("%q error should expose message key", tc.password)
		}
		if keyed.Key() != tc.key {
			t.Fatalf("%q key want %s got %s", tc.password, tc.key, keyed.Key())
		}
	}

	if err := validatePassword(policy, "Password1!"); err != nil {
		t.Fatalf("compliant password should pass, got %v", err)
	}
}

func TestValidatePasswordEmptyPolicyAllowsAnything(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, "x"); err != nil {
		t.Fatalf("empty policy should accept any password, got %v", err)
	}
}

func TestValidatePasswordMinLengthCarriesArg(t *testing.T) {
	err := validatePassword(config.PasswordPolicyConfig{MinLength: 10}, "tiny")
	argged, ok := err.(interface{ Args() []interface{} })
	if !ok {
		t.Fatalf("min length error should expose args")
	}
	args := argged.Args()
	if len(args) != 1 || args[0] != 10 {
		t.Fatalf("unexpected args: %v", args)
	}
}
