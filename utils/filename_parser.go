package utils

import (
	"fmt"
	"regexp"
	"strings"

	"void-apparel/models"
)

var (
	extRegex      = regexp.MustCompile(`(?i)\.(png|jpg|jpeg)$`)
	nonSlugRegex  = regexp.MustCompile(`[^a-z0-9]+`)
	separatorName = "__"
)

// ParsePresetFileName parses artwork file names following the pattern:
// CATEGORY__NAME.PNG
// Example: ed_hardy__tiger_koi.png -> category "Ed Hardy", name "Tiger Koi", id "tiger-koi"
func ParsePresetFileName(filename string) (*models.PresetGraphic, error) {
	if !extRegex.MatchString(filename) {
		return nil, fmt.Errorf("invalid file extension: expected png, jpg or jpeg, got %s", filename)
	}
	nameWithoutExt := extRegex.ReplaceAllString(filename, "")

	parts := strings.Split(nameWithoutExt, separatorName)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid filename format: expected CATEGORY__NAME, got %s", nameWithoutExt)
	}

	category := humanize(parts[0])
	name := humanize(parts[1])
	if category == "" || name == "" {
		return nil, fmt.Errorf("invalid filename format: empty category or name in %s", nameWithoutExt)
	}

	id := strings.Trim(nonSlugRegex.ReplaceAllString(strings.ToLower(name), "-"), "-")

	return &models.PresetGraphic{
		ID:       id,
		Name:     name,
		Category: category,
	}, nil
}

// humanize turns "ed_hardy" or "ed-hardy" into "Ed Hardy"
func humanize(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
