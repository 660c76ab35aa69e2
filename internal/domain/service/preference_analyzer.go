package service

import (
	"Tourism-App/internal/domain/model"
	"regexp"
	"strings"
)

// durationPattern は "3 days", "2 weeks" のような日数表記
var durationPattern = regexp.MustCompile(`(?i)\d+\s*(?:days|day|weeks|week)`)

var (
	lowBudgetKeywords  = []string{"cheap", "budget", "affordable"}
	highBudgetKeywords = []string{"luxury", "premium", "expensive"}
)

// interestKeywords は興味タグと、それを示すキーワード（判定順）
var interestKeywords = []struct {
	interest string
	keywords []string
}{
	{model.InterestAdventure, []string{"adventure", "trek", "hiking"}},
	{model.InterestCulture, []string{"culture", "tradition", "tribal"}},
	{model.InterestNature, []string{"wildlife", "nature", "forest"}},
}

// AnalyzeUserPreferences は発言から予算帯・興味タグ・日数を推定し、prefsに反映する
// 予算帯と日数は上書き、興味タグは重複なしで蓄積する
func AnalyzeUserPreferences(text string, prefs *model.UserPreferences) {
	lower := strings.ToLower(text)

	if containsAny(lower, lowBudgetKeywords) {
		prefs.Budget = model.BudgetLow
	} else if containsAny(lower, highBudgetKeywords) {
		prefs.Budget = model.BudgetHigh
	}

	for _, ik := range interestKeywords {
		if containsAny(lower, ik.keywords) {
			prefs.AddInterest(ik.interest)
		}
	}

	if m := durationPattern.FindString(text); m != "" {
		prefs.Duration = m
	}
}

// containsAny はtextがいずれかのキーワードを部分文字列として含むかを判定する
func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
