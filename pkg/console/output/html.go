package output

import (
	"bufio"
	"fmt"
	"html"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	gcolor "github.com/gookit/color"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .log {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
        }
        .entry { white-space: pre-wrap; margin: 2px 0; }
        .time { color: #00aa00; }
    </style>
</head>
<body>
`

// WriteHTML renders the log as a standalone HTML page, keeping entry colors
// and timestamps. ANSI escapes that leaked into entry text are stripped.
func (l *Log) WriteHTML(w io.Writer, title string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, htmlHeader, html.EscapeString(title))
	fmt.Fprintf(bw, "    <div class=\"header\">%s</div>\n", html.EscapeString(title))
	bw.WriteString("    <div class=\"log\">\n")

	for _, e := range l.entries {
		bw.WriteString(`        <div class="entry"`)
		if e.Color != nil {
			fmt.Fprintf(bw, ` style="color:%s"`, cssColor(e.Color))
		}
		bw.WriteString(">")
		if prefix := e.Prefix(); prefix != "" {
			fmt.Fprintf(bw, `<span class="time">%s</span>`, html.EscapeString(prefix))
		}
		bw.WriteString(html.EscapeString(gcolor.ClearCode(e.Text)))
		bw.WriteString("</div>\n")
	}

	bw.WriteString("    </div>\n</body>\n</html>\n")
	return bw.Flush()
}

// SaveHTML writes the log to a timestamped file in dir and returns its path.
func (l *Log) SaveHTML(dir, title string) (string, error) {
	name := fmt.Sprintf("console-%s.html", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := l.WriteHTML(f, title); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func cssColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "transparent"
	}
	// RGBA() is alpha-premultiplied.
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", r*0xff/a, g*0xff/a, b*0xff/a, float64(a)/0xffff)
}
