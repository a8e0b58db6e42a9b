package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/surveymail/surveymail/internal/form"
)

const (
	subjectPrefix    = "服務滿意度問卷回覆："
	nameNotFilled    = "未填姓名"
	valueNotFilled   = "（未填寫）"
	noFieldData      = "（沒有欄位資料）"
	submittedAtLabel = "提交時間"
	userAgentLabel   = "User-Agent"
)

// CustomerName extracts the customer's name from the submission, trying
// each known alias in order. Returns "" when none is filled in.
func CustomerName(f *form.Form) string {
	for _, alias := range nameAliases {
		if name := strings.TrimSpace(f.StringValue(alias)); name != "" {
			return name
		}
	}
	return ""
}

// Subject builds the email subject line for a submission.
func Subject(f *form.Form) string {
	name := CustomerName(f)
	if name == "" {
		name = nameNotFilled
	}
	return subjectPrefix + name
}

// orderedKeys returns the field names to render, in order: labelled fields
// first in label order, then the remaining fields in the order they were
// submitted, with skipped and envelope fields dropped.
func orderedKeys(f *form.Form) []string {
	seen := make(map[string]struct{}, f.Len())
	keys := make([]string, 0, f.Len())
	for _, fl := range fieldLabels {
		if f.Has(fl.Key) {
			keys = append(keys, fl.Key)
			seen[fl.Key] = struct{}{}
		}
	}
	for _, key := range f.Keys() {
		if _, ok := seen[key]; ok {
			continue
		}
		keys = append(keys, key)
		seen[key] = struct{}{}
	}

	out := keys[:0]
	for _, key := range keys {
		if _, skip := skipFields[key]; skip {
			continue
		}
		if _, env := envelopeFields[key]; env {
			continue
		}
		out = append(out, key)
	}
	return out
}

// htmlEscaper escapes the HTML-significant characters. A single-pass
// replacement keeps the & of an entity from being escaped twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeCell escapes s and then turns literal newlines into <br> so
// multi-line answers keep their line breaks in the table.
func escapeCell(s string) string {
	escaped := escape(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

// valueText flattens a field value to display text. Multi-valued fields
// join with ", "; decoded JSON arrays flatten recursively.
func valueText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, valueText(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}

const rowTemplate = `      <tr>
        <td style="padding:8px 12px;border:1px solid #e0e0e0;background-color:#f7f8fa;white-space:nowrap;color:#4a4a68;">%s</td>
        <td style="padding:8px 12px;border:1px solid #e0e0e0;color:#1a1a2e;">%s</td>
      </tr>
`

// HTML renders a submission into the email body: a heading, a table of the
// answered fields plus the two envelope rows, and the raw submission as
// indented JSON. Pure given a fixed now.
func HTML(f *form.Form, now time.Time) string {
	var rows strings.Builder
	count := 0
	for _, key := range orderedKeys(f) {
		value, _ := f.Get(key)
		label := key
		if l, ok := labelByKey[key]; ok {
			label = l
		}
		text := valueText(value)
		cell := valueNotFilled
		if strings.TrimSpace(text) != "" {
			cell = escapeCell(text)
		}
		fmt.Fprintf(&rows, rowTemplate, escape(label), cell)
		count++
	}
	if count == 0 {
		fmt.Fprintf(&rows, rowTemplate, noFieldData, valueNotFilled)
	}

	submittedAt := strings.TrimSpace(f.StringValue("submittedAt"))
	if submittedAt == "" {
		submittedAt = now.Format(time.RFC3339)
	}
	fmt.Fprintf(&rows, rowTemplate, submittedAtLabel, escapeCell(submittedAt))
	fmt.Fprintf(&rows, rowTemplate, userAgentLabel, escapeCell(f.StringValue("userAgent")))

	dump, err := f.JSON()
	if err != nil {
		dump = "{}"
	}

	return fmt.Sprintf(documentTemplate, escape(Subject(f)), rows.String(), escape(dump))
}

// documentTemplate takes the escaped subject, the table rows and the
// escaped JSON dump.
const documentTemplate = `<!DOCTYPE html>
<html lang="zh-Hant">
<head>
<meta charset="UTF-8">
</head>
<body style="margin:0;padding:24px;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI','PingFang TC','Microsoft JhengHei',sans-serif;background-color:#f4f5f7;color:#1a1a2e;">
  <h2 style="margin:0 0 16px;font-size:20px;">%s</h2>
  <table cellpadding="0" cellspacing="0" style="border-collapse:collapse;background-color:#ffffff;font-size:14px;">
%s  </table>
  <pre style="margin:24px 0 0;padding:16px;background-color:#f0f0f5;border-radius:6px;font-size:12px;white-space:pre-wrap;word-break:break-all;color:#4a4a68;">%s</pre>
</body>
</html>`
