package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyMarshalJSONFixedTwoDecimals(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.NewFromFloat(129.5))
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"129.50"` {
		t.Fatalf(`marshal want "129.50" got %s`, data)
	}
}

func TestMoneyUnmarshalJSONAcceptsStringAndNumber(t *testing.T) {
	var fromString Money
	if err := json.Unmarshal([]byte(`"45.679"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString.String() != "45.68" {
		t.Fatalf("string form want 45.68 got %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`45.679`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber.String() != "45.68" {
		t.Fatalf("number form want 45.68 got %s", fromNumber.String())
	}

	if err := json.Unmarshal([]byte(`"abc"`), &fromString); err == nil {
		t.Fatalf("expected error for non numeric string")
	}
}

func TestMoneyApplyPercentOff(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.NewFromInt(200))
	if got := m.ApplyPercentOff(25); got.String() != "150.00" {
		t.Fatalf("25%% off 200 want 150.00 got %s", got.String())
	}
	if got := m.ApplyPercentOff(0); got.String() != "200.00" {
		t.Fatalf("0%% off want 200.00 got %s", got.String())
	}
}
