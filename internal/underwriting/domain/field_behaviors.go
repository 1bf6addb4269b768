package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// FieldContext is everything a behavior may read: the value being validated or rendered
// and, for enumerations, the ordered list of allowed values.
type FieldContext struct {
	Value         string
	AllowedValues []string
}

type FieldBehavior interface {
	Validate(FieldContext) bool
	RenderEdit(FieldContext) string
	RenderDisplay(FieldContext) string
}

var (
	addressPattern     = regexp.MustCompile(`(?s)\A.{3,}\z`)
	currencyPattern    = regexp.MustCompile(`\A\p{Nd}[\p{Nd}.]*\z`)
	phoneNumberPattern = regexp.MustCompile(`\A[\p{Nd}\-()]+\z`)
	// inner runes may be any Unicode whitespace, including separators such as U+00A0 and U+2003
	stringPattern      = regexp.MustCompile(`\A[\p{L}\p{N}_][\p{L}\p{N}_\s\x0b\x1c-\x1f\x85\p{Z}]+[\p{L}\p{N}_]\z`)
)

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#x27;",
)

func escapeHTML(value string) string {
	return htmlEscaper.Replace(value)
}

var (
	_ FieldBehavior = addressBehavior{}
	_ FieldBehavior = currencyBehavior{}
	_ FieldBehavior = enumBehavior{}
	_ FieldBehavior = phoneNumberBehavior{}
	_ FieldBehavior = stringBehavior{}
)

type addressBehavior struct{}

func (addressBehavior) Validate(ctx FieldContext) bool {
	return addressPattern.MatchString(ctx.Value)
}

func (addressBehavior) RenderEdit(ctx FieldContext) string {
	return fmt.Sprintf("<textarea>%s</textarea>", escapeHTML(ctx.Value))
}

func (addressBehavior) RenderDisplay(ctx FieldContext) string {
	return fmt.Sprintf("<address>%s</address>", escapeHTML(ctx.Value))
}

// currencyBehavior renders the stored value verbatim; only digits and periods pass validation.
type currencyBehavior struct{}

func (currencyBehavior) Validate(ctx FieldContext) bool {
	return currencyPattern.MatchString(ctx.Value)
}

func (currencyBehavior) RenderEdit(ctx FieldContext) string {
	return fmt.Sprintf(`<input value="%s" type="number" min="0" step="0.01">`, ctx.Value)
}

func (currencyBehavior) RenderDisplay(ctx FieldContext) string {
	return ctx.Value
}

type enumBehavior struct{}

func (enumBehavior) Validate(ctx FieldContext) bool {
	return slices.Contains(ctx.AllowedValues, ctx.Value)
}

func (enumBehavior) RenderEdit(ctx FieldContext) string {
	var sb strings.Builder
	sb.WriteString("<select>")
	for _, option := range ctx.AllowedValues {
		selected := ""
		if option == ctx.Value {
			selected = "selected"
		}
		fmt.Fprintf(&sb, "<option %s>%s</option>", selected, option)
	}
	sb.WriteString("</select>")
	return sb.String()
}

func (enumBehavior) RenderDisplay(ctx FieldContext) string {
	return ctx.Value
}

type phoneNumberBehavior struct{}

func (phoneNumberBehavior) Validate(ctx FieldContext) bool {
	return phoneNumberPattern.MatchString(ctx.Value)
}

func (phoneNumberBehavior) RenderEdit(ctx FieldContext) string {
	return fmt.Sprintf(`<input type="tel" value="%s">`, ctx.Value)
}

func (phoneNumberBehavior) RenderDisplay(ctx FieldContext) string {
	return fmt.Sprintf(`<a href="tel:+%s">%s</a>`, ctx.Value, ctx.Value)
}

type stringBehavior struct{}

func (stringBehavior) Validate(ctx FieldContext) bool {
	return stringPattern.MatchString(ctx.Value)
}

func (stringBehavior) RenderEdit(ctx FieldContext) string {
	return fmt.Sprintf(`<input value="%s" type="text">`, escapeHTML(ctx.Value))
}

func (stringBehavior) RenderDisplay(ctx FieldContext) string {
	return escapeHTML(ctx.Value)
}
