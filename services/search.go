package services

import (
	"strings"
	"unicode"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Ngưỡng tương đồng tối thiểu để gợi ý một địa danh
const suggestThreshold = 0.5

// Bỏ dấu viết thường
func removeDiacritics(s string) string {
	t := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(removeDiacritics(input)))
	return input
}

// containsFold so khớp chuỗi con không phân biệt hoa thường và dấu
func containsFold(haystack, needle string) bool {
	return strings.Contains(normalizeInput(haystack), normalizeInput(needle))
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// closestKeyword trả về từ khóa gần nhất với query cùng độ tương đồng
func closestKeyword(query string, keywords []string) (string, float64) {
	if query == "" || len(keywords) == 0 {
		return "", 0
	}

	normalized := make([]string, len(keywords))
	byNormalized := make(map[string]string, len(keywords))
	for i, k := range keywords {
		normalized[i] = normalizeInput(k)
		byNormalized[normalized[i]] = k
	}

	q := normalizeInput(query)
	best := createMatcher(normalized).Closest(q)
	if best == "" {
		// closestmatch không tìm được n-gram chung, thử levenshtein trên toàn bộ danh sách
		bestScore := 0.0
		for _, k := range normalized {
			if s := calculateSimilarity(q, k); s > bestScore {
				best, bestScore = k, s
			}
		}
		if best == "" {
			return "", 0
		}
	}

	return byNormalized[best], calculateSimilarity(q, best)
}
