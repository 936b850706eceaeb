package helper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify convierte texto libre en slug [a-z0-9-]: minúsculas, sin
// diacríticos (é → e), guiones comprimidos, largo máximo maxLen
// (100 si <=0) y fallback "item".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) { // marca sin espacio (diacrítico)
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "item"
	}
	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = strings.Trim(string(rs[:maxLen]), "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// NextSlugCandidate arma el candidato n-ésimo: n==0 devuelve la base,
// n>0 devuelve base-n, recortando la base para que base+sufijo <= maxLen.
func NextSlugCandidate(base string, n, maxLen int) string {
	if n <= 0 {
		return base
	}
	suffix := fmt.Sprintf("-%d", n)
	return trimForSuffix(base, suffix, maxLen) + suffix
}

func trimForSuffix(base, suffix string, maxLen int) string {
	if maxLen <= 0 {
		return base
	}
	need := len(suffix)
	if need >= maxLen {
		return "x"
	}
	rs := []rune(base)
	keep := maxLen - need
	if keep < 1 {
		keep = 1
	}
	if len(rs) > keep {
		rs = rs[:keep]
	}
	out := strings.Trim(string(rs), "-")
	if out == "" {
		out = "x"
	}
	return out
}

// EnsureUniqueSlug busca el primer candidato libre (base, base-1, base-2, …)
// en table/column, case-insensitive. scopeFn es opcional; sirve para excluir
// el propio registro en updates, p.ej.:
//
//	func(q *gorm.DB) *gorm.DB { return q.Where("id <> ?", id) }
func EnsureUniqueSlug(
	ctx context.Context,
	db *gorm.DB,
	table string,
	column string,
	baseSlug string,
	scopeFn func(*gorm.DB) *gorm.DB,
	maxLen int,
) (string, error) {
	if maxLen <= 0 {
		maxLen = 100
	}
	for i := 0; i < 10000; i++ {
		candidate := NextSlugCandidate(baseSlug, i, maxLen)

		q := db.WithContext(ctx).Table(table)
		if scopeFn != nil {
			q = scopeFn(q)
		}
		var count int64
		if err := q.Where(fmt.Sprintf("LOWER(%s) = ?", column), strings.ToLower(candidate)).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no se pudo generar slug único para %q", baseSlug)
}

// IsDuplicateKey reconoce violaciones de constraint unique del driver.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique constraint") || strings.Contains(low, "sqlstate 23505")
}
