package challenge

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"

	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/decision"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// pageMatch is the template-facing projection of a MatchRecord.
type pageMatch struct {
	ID          string
	Group       string
	Severity    catalog.Severity
	Description string
}

// pageView is the data handed to the page template. Command and
// Description fields pass through html/template's default contextual
// escaping; AnswerJSON/TargetWordJSON are pre-marshaled JSON literals so
// they land as typed values inside <script>, never as raw HTML.
type pageView struct {
	Kind            Kind
	Command         string
	Matches         []pageMatch
	HighestSeverity catalog.Severity
	Operand1        int
	Operand2        int
	AnswerJSON      template.JS
	TargetWord      string
	TargetWordJSON  template.JS
	TokenJSON       template.JS
}

func buildPageView(params OpenParams, ch challengeState, token string) pageView {
	matches := make([]pageMatch, len(params.Matches))
	for i, m := range params.Matches {
		matches[i] = pageMatch{
			ID:          m.ID,
			Group:       m.Group,
			Severity:    m.Severity,
			Description: m.Description,
		}
	}

	view := pageView{
		Kind:            params.Kind,
		Command:         params.Command,
		Matches:         matches,
		HighestSeverity: decision.HighestSeverity(decision.Result{Matches: params.Matches}),
		TokenJSON:       mustJSON(token),
	}

	switch params.Kind {
	case KindMath:
		view.Operand1 = ch.operand1
		view.Operand2 = ch.operand2
		view.AnswerJSON = mustJSON(ch.operand1 + ch.operand2)
	case KindWord:
		view.TargetWord = ch.targetWord
		view.TargetWordJSON = mustJSON(ch.targetWord)
	}

	return view
}

func renderPage(params OpenParams, ch challengeState, token string) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, buildPageView(params, ch, token)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func mustJSON(v interface{}) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return template.JS(b)
}
