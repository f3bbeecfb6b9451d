package lead

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/iwvelando/teaser/pkg/format"
)

// Notification copy.
const (
	EmailHeading = "We received an investment request"
	EmailPreview = "Investment request received"
	EmailFooter  = "Smat © 2024, Switzerland | All rights reserved"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// EmailMarkdown returns the notification body as markdown.
func EmailMarkdown(r Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", EmailHeading)
	fmt.Fprintf(&b, "**Name:** %s\n\n", escapeMarkdown(r.Name))
	fmt.Fprintf(&b, "**Email:** %s\n\n", escapeMarkdown(r.Email))
	fmt.Fprintf(&b, "**Amount of units:** %s\n\n", format.Integer(r.Units))
	fmt.Fprintf(&b, "**Amount willing to invest:** %s\n\n", format.Currency(r.Value, r.Currency))
	fmt.Fprintf(&b, "[Reply now](<mailto:%s>)\n\n", r.Email)
	fmt.Fprintf(&b, "---\n\n%s\n", EmailFooter)
	return b.String()
}

// RenderEmail returns the notification as a complete HTML document.
func RenderEmail(r Request) (string, error) {
	var body strings.Builder
	if err := md.Convert([]byte(EmailMarkdown(r)), &body); err != nil {
		return "", eris.Wrap(err, "lead: render email")
	}
	return "<!doctype html><html><head><meta charset=\"utf-8\"><title>" + EmailPreview + "</title></head>" +
		"<body style=\"background-color:#fff;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif\">" +
		body.String() +
		"</body></html>", nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`,
	"<", `\<`, ">", `\>`, "#", `\#`, "|", `\|`, "~", `\~`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
