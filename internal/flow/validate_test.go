package flow_test

import (
	"strings"
	"testing"

	"github.com/husan7006/davon-taxi-bot/internal/flow"
)

func TestNormalizePhoneAcceptedShapes(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"+998901112233", "+998901112233"},
		{"00998901112233", "+998901112233"},
		{"998901112233", "+998901112233"},
		{"901112233", "+901112233"},
		{" +998 90 111-22-33 ", "+998901112233"},
		{"(998)901112233", "+998901112233"},
	}

	for _, c := range cases {
		got := flow.NormalizePhone(c.raw)
		if got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", c.raw, got, c.want)
		}
		if !flow.IsValidPhone(got) {
			t.Errorf("IsValidPhone(%q) = false, want true", got)
		}
	}
}

func TestIsValidPhoneRejects(t *testing.T) {
	bad := []string{
		"",
		"abc",
		"+99890abc33",
		"123456",
		strings.Repeat("9", 16),
		"+7 912",
	}

	for _, raw := range bad {
		if flow.IsValidPhone(flow.NormalizePhone(raw)) {
			t.Errorf("expected %q to be rejected", raw)
		}
	}
}

func TestParsePassengerCount(t *testing.T) {
	if n, ok := flow.ParsePassengerCount("5+"); !ok || n != 5 {
		t.Errorf("ParsePassengerCount(5+) = %d, %v; want 5, true", n, ok)
	}
	if n, ok := flow.ParsePassengerCount("3"); !ok || n != 3 {
		t.Errorf("ParsePassengerCount(3) = %d, %v; want 3, true", n, ok)
	}

	for _, token := range []string{"0", "6", "5", "five", "", "1 2"} {
		if _, ok := flow.ParsePassengerCount(token); ok {
			t.Errorf("ParsePassengerCount(%q) accepted, want rejected", token)
		}
	}
}

func TestIsCargoOnly(t *testing.T) {
	for _, token := range []string{flow.CargoLabel, "Почта бор", "почта"} {
		if !flow.IsCargoOnly(token) {
			t.Errorf("IsCargoOnly(%q) = false, want true", token)
		}
	}
	if flow.IsCargoOnly("3") {
		t.Error("IsCargoOnly(3) = true, want false")
	}
}

func TestSanitizeFreeText(t *testing.T) {
	if got, ok := flow.SanitizeFreeText("  Чорсу  ", 2, 60); !ok || got != "Чорсу" {
		t.Errorf("SanitizeFreeText = %q, %v; want Чорсу, true", got, ok)
	}
	if _, ok := flow.SanitizeFreeText("й", 2, 60); ok {
		t.Error("one-rune district accepted, want rejected")
	}
	if _, ok := flow.SanitizeFreeText(strings.Repeat("а", 61), 2, 60); ok {
		t.Error("61-rune district accepted, want rejected")
	}
}

func TestIsPageIndicator(t *testing.T) {
	if !flow.IsPageIndicator("3/8") {
		t.Error("IsPageIndicator(3/8) = false, want true")
	}
	for _, token := range []string{"3/", "/8", "3-8", "Чорсу", ""} {
		if flow.IsPageIndicator(token) {
			t.Errorf("IsPageIndicator(%q) = true, want false", token)
		}
	}
}

func TestIsPaginationControl(t *testing.T) {
	for _, token := range []string{flow.NextLabel, flow.PrevLabel, flow.BackLabel, "2/8"} {
		if !flow.IsPaginationControl(token) {
			t.Errorf("IsPaginationControl(%q) = false, want true", token)
		}
	}
	if flow.IsPaginationControl("Чорсу") {
		t.Error("district name treated as pagination control")
	}
}
