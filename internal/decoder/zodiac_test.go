package decoder

import "testing"

func TestZodiacSign(t *testing.T) {
	tests := []struct {
		birthday string
		want     string
	}{
		{"1990-07-04", "Cancer"},
		{"1990-08-10", "Leo"},
		{"1990-01-19", "Capricorn"},
		{"1990-01-20", "Aquarius"},
		{"1990-02-18", "Aquarius"},
		{"1990-02-19", "Pisces"},
		{"1990-12-22", "Capricorn"},
		{"1990-12-21", "Sagittarius"},
		{"1990-03-21", "Aries"},
		{"1990-11-21", "Scorpio"},
		{"not-a-date", ""},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.birthday, func(t *testing.T) {
			if got := ZodiacSign(tc.birthday); got != tc.want {
				t.Errorf("ZodiacSign(%q) = %q, want %q", tc.birthday, got, tc.want)
			}
		})
	}
}

func TestSignCompatibility(t *testing.T) {
	tests := []struct {
		name  string
		sign1 string
		sign2 string
		want  string
	}{
		{"same water element", "Cancer", "Pisces", "highly compatible"},
		{"same fire element", "Aries", "Leo", "highly compatible"},
		{"fire and air", "Leo", "Gemini", "complementary"},
		{"earth and water", "Taurus", "Scorpio", "complementary"},
		{"fire and earth", "Aries", "Taurus", "may face challenges but can grow together"},
		{"fire and water", "Leo", "Cancer", "may face challenges but can grow together"},
		{"missing sign", "", "Leo", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SignCompatibility(tc.sign1, tc.sign2); got != tc.want {
				t.Errorf("SignCompatibility(%q, %q) = %q, want %q", tc.sign1, tc.sign2, got, tc.want)
			}
		})
	}
}

func TestSignDynamicChecksBothOrders(t *testing.T) {
	forward := signDynamic("Aries", "Leo")
	reverse := signDynamic("Leo", "Aries")
	if forward != reverse {
		t.Errorf("signDynamic order mismatch: %q vs %q", forward, reverse)
	}
	if forward == "a relationship with both complementary and challenging aspects" {
		t.Error("known pair fell through to the generic phrase")
	}

	if got := signDynamic("Aries", "Capricorn"); got != "a relationship with both complementary and challenging aspects" {
		t.Errorf("unknown pair = %q, want generic phrase", got)
	}
}
