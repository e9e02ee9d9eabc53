package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// placeholders maps template tokens to their value in a context.
var placeholders = map[string]func(DishContext) string{
	"primary":           func(dc DishContext) string { return dc.Primary.Name },
	"secondary":         func(dc DishContext) string { return dc.Secondary.Name },
	"primary_category":  func(dc DishContext) string { return dc.Primary.Category },
	"primary_flavor":    func(dc DishContext) string { return dc.Primary.FlavorProfile },
	"secondary_flavor":  func(dc DishContext) string { return dc.Secondary.FlavorProfile },
	"style":             func(dc DishContext) string { return dc.CookingStyle.Name },
	"style_description": func(dc DishContext) string { return dc.CookingStyle.Description },
	"subtype":           func(dc DishContext) string { return orDefault(dc.CookingStyle.DishSubtype, "dish") },
	"form":              func(dc DishContext) string { return orDefault(dc.CookingStyle.Form, "plate") },
	"dish_type":         func(dc DishContext) string { return strings.ReplaceAll(string(dc.DishType), "-", " ") },
	"theme":             func(dc DishContext) string { return strings.ToLower(string(dc.Theme)) },
	"nation":            func(dc DishContext) string { return dc.NationName(dc.Primary.Nation) },
	"secondary_nation":  func(dc DishContext) string { return dc.NationName(dc.Secondary.Nation) },
	"nations":           nationList,
	"ingredients":       ingredientList,
	"ingredient_count":  func(dc DishContext) string { return strconv.Itoa(len(dc.AllIngredients)) },
	"rarity":            func(dc DishContext) string { return strings.ToLower(dc.MaxRarity().String()) },
	"location":          func(dc DishContext) string { return orDefault(dc.Primary.Location, "distant hills") },
	"adjective":         func(dc DishContext) string { return firstOr(dc.Fusion.Adjectives, "storied") },
	"emoji":             func(dc DishContext) string { return strings.Join(dc.Fusion.Emoji, "") },
}

// Placeholders returns the tokens Render understands.
func Placeholders() []string {
	out := make([]string, 0, len(placeholders))
	for k := range placeholders {
		out = append(out, k)
	}
	return out
}

// Render substitutes {token} placeholders from dc. Unknown or unterminated
// placeholders are errors, so no raw token ever reaches the output.
func Render(tpl string, dc DishContext) (string, error) {
	var b strings.Builder
	rest := tpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:open])
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated %q", ErrUnresolvedPlaceholder, rest[open:])
		}
		key := rest[open+1 : open+end]
		fn, ok := placeholders[key]
		if !ok {
			return "", fmt.Errorf("%w: {%s}", ErrUnresolvedPlaceholder, key)
		}
		b.WriteString(fn(dc))
		rest = rest[open+end+1:]
	}
	return b.String(), nil
}

// CheckTemplate validates tpl without a context.
func CheckTemplate(tpl string) error {
	_, err := Render(tpl, DishContext{})
	return err
}

// Polish collapses whitespace, fixes a/an articles and capitalises the
// first letter.
func Polish(s string) string {
	words := strings.Fields(s)
	for i := 0; i < len(words)-1; i++ {
		w := words[i]
		lower := strings.ToLower(w)
		if lower != "a" && lower != "an" {
			continue
		}
		want := "a"
		if startsWithVowelSound(words[i+1]) {
			want = "an"
		}
		if lower == want {
			continue
		}
		if w[0] == 'A' {
			want = strings.ToUpper(want[:1]) + want[1:]
		}
		words[i] = want
	}
	out := strings.Join(words, " ")
	r, size := utf8.DecodeRuneInString(out)
	if size == 0 {
		return out
	}
	return string(unicode.ToUpper(r)) + out[size:]
}

func startsWithVowelSound(word string) bool {
	w := strings.ToLower(strings.TrimLeft(word, `"'(`))
	if w == "" {
		return false
	}
	for _, p := range []string{"uni", "use", "usu", "one", "eu"} {
		if strings.HasPrefix(w, p) {
			return false
		}
	}
	if strings.HasPrefix(w, "hour") || strings.HasPrefix(w, "honor") {
		return true
	}
	return strings.ContainsRune("aeiou", rune(w[0]))
}

func nationList(dc DishContext) string {
	names := make([]string, len(dc.Fusion.SelectedNations))
	for i, n := range dc.Fusion.SelectedNations {
		names[i] = dc.NationName(n)
	}
	return JoinList(names)
}

func ingredientList(dc DishContext) string {
	names := make([]string, len(dc.AllIngredients))
	for i, ing := range dc.AllIngredients {
		names[i] = ing.Name
	}
	return JoinList(names)
}

// JoinList renders "a", "a and b", "a, b and c".
func JoinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func firstOr(items []string, fallback string) string {
	if len(items) == 0 || items[0] == "" {
		return fallback
	}
	return items[0]
}
