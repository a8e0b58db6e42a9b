package render

// fieldLabel pairs a form field name with its display label. The order of
// fieldLabels is the order rows appear in the rendered email.
type fieldLabel struct {
	Key   string
	Label string
}

var fieldLabels = []fieldLabel{
	{"customer_name", "姓名／LINE 名稱"},
	{"q1", "服務滿意度"},
	{"q2", "專業程度"},
	{"q2_extra", "專業程度補充說明"},
	{"q3", "回覆速度"},
	{"q4", "整體滿意度"},
	{"q5", "推薦意願"},
	{"q6", "其他建議"},
}

var labelByKey = func() map[string]string {
	m := make(map[string]string, len(fieldLabels))
	for _, fl := range fieldLabels {
		m[fl.Key] = fl.Label
	}
	return m
}()

// skipFields never appear in the rendered table: the honeypot, form
// metadata and UI plumbing posted by the front-end form. If a field were
// ever both labelled and skipped, skip wins.
var skipFields = map[string]struct{}{
	"bot-field":            {},
	"form-name":            {},
	"g-recaptcha-response": {},
	"submit":               {},
}

// envelopeFields feed the fixed trailing rows rather than ordinary ones.
var envelopeFields = map[string]struct{}{
	"submittedAt": {},
	"userAgent":   {},
}

// nameAliases are checked in order when extracting the customer name.
// The front-end has posted the name under each of these at some point.
var nameAliases = []string{"customer_name", "name", "line", "姓名"}
