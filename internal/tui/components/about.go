package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// AboutMarkdown is the about screen text
const AboutMarkdown = `# Student Sync v1.0

A terminal app for a student's university data.

Tabs hold **announcements**, **transport**, **results**, the **timetable**,
**FAQs**, **jobs** and **events**. The dashboard shows the latest
announcement and transport update.

| Key | Action |
| --- | --- |
| h / l | switch tab |
| j / k | move between positions |
| a / e | add or edit a record |
| D / S | cycle department and semester on Results |
| s | save |
| q | quit |
`

type AboutProps struct {
	Markdown string
	Width    int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderAbout renders markdown for the about screen, falling back to the raw text
func RenderAbout(props AboutProps) string {
	text := props.Markdown
	if text == "" {
		text = AboutMarkdown
	}

	renderer, err := getRenderer(props.Width)
	if err == nil {
		rendered, err := renderer.Render(text)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return text
}
