package digesting

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

const (
	colorGreen = "#22c55e"
	colorGray  = "#6b7280"
	colorRed   = "#ef4444"
)

const digestTemplate = `<h1>Your Daily App Rank Update</h1>` +
	`<ul style="list-style: none; padding: 0;">` +
	`{{range .Lines}}<li style="margin: 10px 0; font-size: 16px;"><b>{{.AppName}}:</b> {{.RankText}} in {{$.Category}} ({{$.Country}})` +
	`{{badge .DailyChange "Daily"}}{{badge .WeeklyChange "Weekly"}}</li>{{end}}` +
	`</ul>` +
	`<br>` +
	`<p style="font-size:12px;color:grey;">Did someone forward this email to you? <a href="{{.SiteURL}}">Set up your own alerts here</a>.</p>` +
	`{{if .RequestAppURL}}<p style="font-size:12px;color:grey;">Want to track a different app? <a href="{{.RequestAppURL}}">Request it here</a>.</p>{{end}}` +
	`<p style="font-size:12px;color:grey;">To unsubscribe from all notifications, <a href="{{.UnsubscribeURL}}">click here</a>.</p>`

type renderer struct {
	tmpl          *template.Template
	siteURL       string
	requestAppURL string
}

type templateData struct {
	Lines          []domain.AppDigestLine
	Category       string
	Country        string
	SiteURL        string
	RequestAppURL  string
	UnsubscribeURL string
}

func newRenderer(siteURL, requestAppURL string) *renderer {
	tmpl := template.Must(template.New("digest").Funcs(template.FuncMap{
		"badge": badge,
	}).Parse(digestTemplate))

	return &renderer{
		tmpl:          tmpl,
		siteURL:       strings.TrimRight(siteURL, "/"),
		requestAppURL: requestAppURL,
	}
}

func (r *renderer) render(digest domain.RecipientDigest, category, country string) (string, error) {
	var buf bytes.Buffer

	err := r.tmpl.Execute(&buf, templateData{
		Lines:          digest.Lines,
		Category:       category,
		Country:        country,
		SiteURL:        r.siteURL,
		RequestAppURL:  r.requestAppURL,
		UnsubscribeURL: UnsubscribeURL(r.siteURL, digest.Email),
	})
	if err != nil {
		return "", fmt.Errorf("erro ao executar template: %w", err)
	}

	return buf.String(), nil
}

// UnsubscribeURL monta o link de descadastro com o e-mail escapado
func UnsubscribeURL(siteURL, email string) string {
	return strings.TrimRight(siteURL, "/") + "/unsubscribe?email=" + url.QueryEscape(email)
}

// badge só recebe valores numéricos e rótulos fixos, por isso pode devolver HTML diretamente
func badge(change domain.Change, period string) template.HTML {
	var color, text string
	bold := true

	switch change.Direction {
	case domain.ChangeNew:
		color, text = colorGreen, "NEW "+period
	case domain.ChangeFlat:
		color, text, bold = colorGray, "— "+period, false
	case domain.ChangeUp:
		color, text = colorGreen, fmt.Sprintf("↑%d %s", change.Magnitude, period)
	case domain.ChangeDown:
		color, text = colorRed, fmt.Sprintf("↓%d %s", change.Magnitude, period)
	default:
		return ""
	}

	weight := ""
	if bold {
		weight = " font-weight: bold;"
	}

	return template.HTML(fmt.Sprintf(` <span style="color: %s;%s">(%s)</span>`, color, weight, template.HTMLEscapeString(text)))
}
