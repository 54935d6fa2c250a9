// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gemini

import (
	"bytes"
	"text/template"
)

// attributesPromptTmpl is the fixed prompt sent to the model for each
// journal. It pins the response to exactly four labeled lines so that
// parsing can stay line-oriented and label-prefix-based.
var attributesPromptTmpl = template.Must(template.New("attributes").Parse(`For the academic journal '{{.Title}}', provide:
1. The article processing charge (APC) in USD, EUR, or GBP if available, or 'None' if not found.
2. The publication frequency (e.g. monthly, quarterly, annual, or number of issues per year), or 'None' if not found.
3. Whether the journal is open access (answer 'Yes', 'No', or 'Unknown').
4. Whether the journal is hybrid (answer 'Yes', 'No', or 'Unknown').
Respond with exactly four lines in the format:
APC: <value>
Frequency: <value>
Open Access: <Yes/No/Unknown>
Hybrid: <Yes/No/Unknown>
Do not include any other text.`))

// renderPrompt executes the attributes prompt template for one journal title.
func renderPrompt(title string) (string, error) {
	var buf bytes.Buffer
	if err := attributesPromptTmpl.Execute(&buf, struct{ Title string }{Title: title}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
