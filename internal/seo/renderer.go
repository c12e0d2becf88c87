package seo

import (
	"strings"
)

// Placeholder tokens understood by the templates. $tituloCAP must be
// substituted before $titulo, otherwise its prefix would be consumed first.
const (
	tokenTitleUpper = "$tituloCAP"
	tokenTitle      = "$titulo"
)

// Render substitutes the title placeholders in template. Substitution is a
// single literal pass: a title that itself contains a token is not expanded
// again. An empty template renders empty.
func Render(template, title string) string {
	out := strings.ReplaceAll(template, tokenTitleUpper, strings.ToUpper(title))
	out = strings.ReplaceAll(out, tokenTitle, title)
	return out
}

// RenderDescription renders a description template. On top of the title
// substitution, literal newlines become <br> so multi-line templates survive
// as HTML.
func RenderDescription(template, title string) string {
	return strings.ReplaceAll(Render(template, title), "\n", "<br>")
}
