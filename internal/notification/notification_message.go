package notification

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"net/mail"
	texttemplate "text/template"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

const (
	TemplateClockIn          = "clock_in"
	TemplateClockOut         = "clock_out"
	TemplateMentor           = "mentor"
	TemplateReminderClockIn  = "reminder_clock_in"
	TemplateReminderClockOut = "reminder_clock_out"
)

type Message struct {
	To          []mail.Address
	Subject     string
	HTMLContent string
	TextContent string
}

func (m Message) HasRecipients() bool {
	return len(m.To) > 0
}

type templateData struct {
	Title        string
	Name         string
	Kind         string
	Date         string
	Time         string
	Status       string
	Distance     int
	Note         string
	Window       string
	ClockInTime  string
	WorkDuration string
}

// Renderer turns a template name plus data into a Message.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func NewRenderer() (*Renderer, error) {
	h, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	t, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &Renderer{html: h, text: t}, nil
}

func (r *Renderer) Render(name, subject string, data templateData, to ...mail.Address) (Message, error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := r.html.ExecuteTemplate(&htmlBuf, name+".html", data); err != nil {
		return Message{}, fmt.Errorf("render %s.html: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&textBuf, name+".txt", data); err != nil {
		return Message{}, fmt.Errorf("render %s.txt: %w", name, err)
	}
	return Message{
		To:          to,
		Subject:     subject,
		HTMLContent: htmlBuf.String(),
		TextContent: textBuf.String(),
	}, nil
}
