package quotes

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Lint rules.
const (
	RuleFields         = "fields"
	RuleIDOrder        = "id-order"
	RuleDuplicateID    = "duplicate-id"
	RuleDuplicateText  = "duplicate-text"
	RuleCapitalization = "capitalization"
	RuleOrigin         = "origin"
	RuleEscape         = "escape"
)

// Violation is a single catalog rule failure.
type Violation struct {
	ID     int
	Rule   string
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("quote %d: %s: %s", v.ID, v.Rule, v.Detail)
}

// Lint checks every quote against the catalog style rules and returns all
// violations found, in storage order.
func Lint(c *Catalog) []Violation {
	validate := validator.New()

	var out []Violation
	n := c.Size()
	seenIDs := make(map[int]int, n)
	seenTexts := make(map[string]int, n)

	for i, q := range c.quotes {
		if err := validate.Struct(q); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				for _, fe := range fieldErrs {
					out = append(out, Violation{
						ID:     q.ID,
						Rule:   RuleFields,
						Detail: fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()),
					})
				}
			} else {
				out = append(out, Violation{ID: q.ID, Rule: RuleFields, Detail: err.Error()})
			}
		}

		if q.ID != n-i {
			out = append(out, Violation{
				ID:     q.ID,
				Rule:   RuleIDOrder,
				Detail: fmt.Sprintf("position %d expects id %d", i, n-i),
			})
		}

		if prev, ok := seenIDs[q.ID]; ok {
			out = append(out, Violation{
				ID:     q.ID,
				Rule:   RuleDuplicateID,
				Detail: fmt.Sprintf("also used at position %d", prev),
			})
		} else {
			seenIDs[q.ID] = i
		}

		if prev, ok := seenTexts[q.Text]; ok {
			out = append(out, Violation{
				ID:     q.ID,
				Rule:   RuleDuplicateText,
				Detail: fmt.Sprintf("same text as position %d", prev),
			})
		} else if q.Text != "" {
			seenTexts[q.Text] = i
		}

		if startsLower(q.Text) {
			out = append(out, Violation{ID: q.ID, Rule: RuleCapitalization, Detail: "text starts with a lowercase letter"})
		}
		if startsLower(q.Author) {
			out = append(out, Violation{ID: q.ID, Rule: RuleCapitalization, Detail: "author starts with a lowercase letter"})
		}

		if hasEscapeText(q.Text) {
			out = append(out, Violation{ID: q.ID, Rule: RuleEscape, Detail: "text contains an undecoded escape sequence"})
		}
		if hasEscapeText(q.Author) {
			out = append(out, Violation{ID: q.ID, Rule: RuleEscape, Detail: "author contains an undecoded escape sequence"})
		}

		if FamilyOf(q.Origin) == FamilyUnknown {
			out = append(out, Violation{ID: q.ID, Rule: RuleOrigin, Detail: "origin does not belong to a known family"})
		}
	}

	return out
}

// startsLower reports whether s begins with a lowercase letter. Leading
// punctuation or digits are allowed.
func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}

// hasEscapeText reports whether s still carries escape syntax, such as a
// backslash or a u{2019} style code point, instead of the decoded character.
func hasEscapeText(s string) bool {
	return strings.ContainsRune(s, '\\') || strings.Contains(s, "u{")
}
