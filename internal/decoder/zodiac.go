package decoder

import (
	"fmt"
	"time"
)

type zodiacRange struct {
	sign       string
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
}

// Ranges are inclusive on both ends; each sign spans a month boundary.
var zodiacRanges = []zodiacRange{
	{"Aquarius", time.January, 20, time.February, 18},
	{"Pisces", time.February, 19, time.March, 20},
	{"Aries", time.March, 21, time.April, 19},
	{"Taurus", time.April, 20, time.May, 20},
	{"Gemini", time.May, 21, time.June, 20},
	{"Cancer", time.June, 21, time.July, 22},
	{"Leo", time.July, 23, time.August, 22},
	{"Virgo", time.August, 23, time.September, 22},
	{"Libra", time.September, 23, time.October, 22},
	{"Scorpio", time.October, 23, time.November, 21},
	{"Sagittarius", time.November, 22, time.December, 21},
	{"Capricorn", time.December, 22, time.January, 19},
}

// ZodiacSign maps a birthday in YYYY-MM-DD form to its sign. Returns ""
// for dates that do not parse.
func ZodiacSign(birthday string) string {
	t, err := time.Parse("2006-01-02", birthday)
	if err != nil {
		return ""
	}
	month, day := t.Month(), t.Day()

	for _, r := range zodiacRanges {
		if (month == r.startMonth && day >= r.startDay) || (month == r.endMonth && day <= r.endDay) {
			return r.sign
		}
	}
	return ""
}

var signElements = map[string]string{
	"Aries":       "Fire",
	"Leo":         "Fire",
	"Sagittarius": "Fire",
	"Taurus":      "Earth",
	"Virgo":       "Earth",
	"Capricorn":   "Earth",
	"Gemini":      "Air",
	"Libra":       "Air",
	"Aquarius":    "Air",
	"Cancer":      "Water",
	"Scorpio":     "Water",
	"Pisces":      "Water",
}

// SignCompatibility classifies a pair of signs by element. Same element is
// "highly compatible"; Fire/Air and Earth/Water pairings are
// "complementary"; everything else gets the cautious phrasing.
func SignCompatibility(sign1, sign2 string) string {
	if sign1 == "" || sign2 == "" {
		return ""
	}

	element1 := signElements[sign1]
	element2 := signElements[sign2]

	if element1 == element2 {
		return "highly compatible"
	}
	if (element1 == "Fire" && element2 == "Air") ||
		(element1 == "Air" && element2 == "Fire") ||
		(element1 == "Earth" && element2 == "Water") ||
		(element1 == "Water" && element2 == "Earth") {
		return "complementary"
	}
	return "may face challenges but can grow together"
}

var signTraits = map[string]string{
	"Aries":       "passionate and direct",
	"Taurus":      "reliable and patient",
	"Gemini":      "adaptable and curious",
	"Cancer":      "nurturing and intuitive",
	"Leo":         "generous and warm-hearted",
	"Virgo":       "analytical and practical",
	"Libra":       "diplomatic and social",
	"Scorpio":     "intense and determined",
	"Sagittarius": "optimistic and freedom-loving",
	"Capricorn":   "disciplined and responsible",
	"Aquarius":    "innovative and independent",
	"Pisces":      "compassionate and artistic",
}

func signTrait(sign string) string {
	return signTraits[sign]
}

var signDynamics = map[string]string{
	"Aries-Leo":            "a passionate and dynamic relationship with strong leadership energy",
	"Taurus-Virgo":         "a grounded and practical partnership focused on stability",
	"Gemini-Libra":         "an intellectually stimulating connection with excellent communication",
	"Cancer-Pisces":        "a deeply emotional and intuitive bond with strong empathy",
	"Leo-Sagittarius":      "an adventurous and expressive relationship full of optimism",
	"Virgo-Capricorn":      "a responsible and goal-oriented partnership with shared values",
	"Libra-Aquarius":       "a socially conscious relationship with focus on equality and ideals",
	"Scorpio-Pisces":       "an intense emotional connection with profound depth",
	"Sagittarius-Aquarius": "a freedom-loving partnership focused on growth and exploration",
	"Capricorn-Taurus":     "a security-focused relationship with strong work ethic",
	"Aquarius-Gemini":      "an intellectually stimulating bond with innovative thinking",
	"Pisces-Cancer":        "a nurturing and compassionate connection with emotional understanding",
}

func signDynamic(sign1, sign2 string) string {
	if d, ok := signDynamics[fmt.Sprintf("%s-%s", sign1, sign2)]; ok {
		return d
	}
	if d, ok := signDynamics[fmt.Sprintf("%s-%s", sign2, sign1)]; ok {
		return d
	}
	return "a relationship with both complementary and challenging aspects"
}
