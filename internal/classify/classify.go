// Package classify holds the pure text classifiers used during identity
// resolution: gender, age group, weapon, and team type are all inferred
// from free-text Korean event and team names.
package classify

import (
	"regexp"
	"strings"

	"github.com/fencekor/fenceid/internal/model"
)

// Female keywords are checked before male ones: tokens like "여대" carry a
// female marker and no male marker, while mixed banners ("남녀") carry
// neither marker as a substring.
var (
	femaleKeywords = []string{"여자", "여중", "여고", "여대", "여초", "여성", "여"}
	maleKeywords   = []string{"남자", "남중", "남고", "남대", "남초", "남성", "남"}
)

// Gender infers the gender of an event from its name.
func Gender(eventName string) model.Gender {
	for _, kw := range femaleKeywords {
		if strings.Contains(eventName, kw) {
			return model.GenderFemale
		}
	}
	for _, kw := range maleKeywords {
		if strings.Contains(eventName, kw) {
			return model.GenderMale
		}
	}
	return model.GenderUnknown
}

// Age-group token patterns, most specific first. The extracted token is kept
// verbatim as the profile's age-group label; AgeLevel maps it to a numeric
// progression level.
var ageGroupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+세이하부?`),
	regexp.MustCompile(`초등부|중등부|고등부|대학부|일반부|청년부`),
	regexp.MustCompile(`U\d+`),
	regexp.MustCompile(`시니어|주니어|마스터`),
	regexp.MustCompile(`여중|남중|여고|남고|여대|남대`),
}

// AgeGroup extracts the age-group token from an event name, or "".
func AgeGroup(eventName string) string {
	for _, pat := range ageGroupPatterns {
		if m := pat.FindString(eventName); m != "" {
			return m
		}
	}
	return ""
}

// ageLevelTable maps age-group substrings to progression levels. Order
// matters: the numeric youth codes must win over the bare school tokens
// they contain. Levels: elementary sub-groups 1–3, elementary 4,
// middle 6, high 7, university/junior 8, senior 9.
var ageLevelTable = []struct {
	tokens []string
	level  int
}{
	{[]string{"9세", "U9"}, 1},
	{[]string{"11세", "U11"}, 2},
	{[]string{"13세", "U13"}, 3},
	{[]string{"U15", "U14"}, 6},
	{[]string{"U17", "U18"}, 7},
	{[]string{"U20", "U23"}, 8},
	{[]string{"초등"}, 4},
	{[]string{"중등", "중학", "여중", "남중"}, 6},
	{[]string{"고등", "고교", "여고", "남고"}, 7},
	{[]string{"대학", "여대", "남대", "주니어", "청년"}, 8},
	{[]string{"일반", "시니어", "마스터"}, 9},
}

// AgeLevel maps an age-group token to its numeric progression level, or 0
// when the token carries no age signal.
func AgeLevel(ageGroup string) int {
	if ageGroup == "" {
		return 0
	}
	for _, row := range ageLevelTable {
		for _, tok := range row.tokens {
			if strings.Contains(ageGroup, tok) {
				return row.level
			}
		}
	}
	return 0
}

// Weapon extracts the weapon from an event name when the scraper left the
// event's weapon field empty.
func Weapon(eventName string) string {
	lower := strings.ToLower(eventName)
	switch {
	case strings.Contains(eventName, "플러레") || strings.Contains(lower, "foil"):
		return "플러레"
	case strings.Contains(eventName, "에뻬") || strings.Contains(lower, "epee"):
		return "에뻬"
	case strings.Contains(eventName, "사브르") || strings.Contains(lower, "sabre"):
		return "사브르"
	}
	return ""
}

var (
	elementaryPattern = regexp.MustCompile(`초등학교|초교`)
	middlePattern     = regexp.MustCompile(`중학교|중$`)
	highPattern       = regexp.MustCompile(`고등학교|고$|체고`)
	universityPattern = regexp.MustCompile(`대학교|대학$|대$`)
)

// TeamType classifies a team string. Anything that is not recognizably a
// school is treated as a club (the separate, non-progressing track).
func TeamType(team string) model.TeamType {
	if team == "" {
		return model.TeamClub
	}
	switch {
	case elementaryPattern.MatchString(team):
		return model.TeamElementary
	case middlePattern.MatchString(team):
		return model.TeamMiddle
	case highPattern.MatchString(team):
		return model.TeamHigh
	case universityPattern.MatchString(team):
		return model.TeamUniversity
	}
	return model.TeamClub
}
