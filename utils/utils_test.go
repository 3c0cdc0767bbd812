package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateCarrierCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Blue Dart Express", "blue-dart-express"},
		{"DTDC", "dtdc"},
		{"  FedEx  ", "fedex"},
		{"Crête & Côte", "crete-cote"},
		{"India Post!!", "india-post"},
	}
	for _, tt := range tests {
		if got := GenerateCarrierCode(tt.in); got != tt.want {
			t.Errorf("GenerateCarrierCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateAWB(t *testing.T) {
	a := GenerateAWB()
	b := GenerateAWB()

	if !strings.HasPrefix(a, "XF") || len(a) != 14 {
		t.Fatalf("unexpected AWB format: %q", a)
	}
	if a == b {
		t.Fatal("AWBs must be unique")
	}
	if a != strings.ToUpper(a) {
		t.Fatalf("AWB not uppercase: %q", a)
	}
}

func TestVolumetricDivisorDefaults(t *testing.T) {
	if got := VolumetricDivisor(false); got != 5000 {
		t.Fatalf("domestic divisor %v, want 5000", got)
	}
	if got := VolumetricDivisor(true); got != 6000 {
		t.Fatalf("international divisor %v, want 6000", got)
	}

	t.Setenv("VOLUMETRIC_DIVISOR_DOMESTIC", "4000")
	if got := VolumetricDivisor(false); got != 4000 {
		t.Fatalf("env override ignored, got %v", got)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckPassword(hash, "s3cret-pass"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("6123456789abcdef01234567", "user@example.com", "USER", time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "6123456789abcdef01234567" || claims.Email != "user@example.com" || claims.Role != "USER" {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	if _, err := ValidateToken(token, "other-secret"); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 7); got != 7 {
		t.Fatalf("got %d", got)
	}
	if got := ParseIntDefault("abc", 7); got != 7 {
		t.Fatalf("got %d", got)
	}
	if got := ParseIntDefault("42", 7); got != 42 {
		t.Fatalf("got %d", got)
	}
}

func TestParseBoolQuery(t *testing.T) {
	b, err := ParseBoolQuery("")
	if err != nil || b != nil {
		t.Fatalf("empty value: %v %v", b, err)
	}
	b, err = ParseBoolQuery("true")
	if err != nil || b == nil || !*b {
		t.Fatalf("true value: %v %v", b, err)
	}
	if _, err := ParseBoolQuery("nope"); err == nil {
		t.Fatal("expected parse error")
	}
}
