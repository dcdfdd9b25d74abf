// internal/output/html.go
package output

import (
	"embed"
	"html/template"
	"io"
	"os"
	"os/user"
	"time"

	"fqqc/internal/qc"
	"fqqc/internal/version"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

// TimestampLayout is how the generation time appears in HTML reports.
const TimestampLayout = "2006-01-02 15:04:05"

var reportTmpl = template.Must(template.New("report.html.tmpl").Funcs(template.FuncMap{
	"f2":  Float,
	"inc": func(i int) int { return i + 1 },
	"scale": func(v, max float64) int {
		if max <= 0 {
			return 0
		}
		return int(v / max * 300)
	},
}).ParseFS(templateFS, "templates/report.html.tmpl"))

// Meta is presentation-only context injected into the HTML report.
type Meta struct {
	Generated time.Time
	User      string
}

// CurrentMeta stamps the current local time and invoking user.
func CurrentMeta() Meta {
	return Meta{Generated: time.Now(), User: CurrentUser()}
}

// CurrentUser returns the login name of the invoking user, falling back to
// $USER and then "unknown".
func CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if s := os.Getenv("USER"); s != "" {
		return s
	}
	return "unknown"
}

type bucket struct {
	Key   int
	Count int64
}

type htmlData struct {
	Summary    qc.Summary
	Generated  string
	User       string
	Version    string
	MaxQuality float64
	Lengths    []bucket
	GC         []bucket
	Quality    []bucket
}

func buckets(m map[int]int64) []bucket {
	keys := SortedKeys(m)
	out := make([]bucket, len(keys))
	for i, k := range keys {
		out[i] = bucket{Key: k, Count: m[k]}
	}
	return out
}

// WriteHTML renders the summary through the embedded report template.
func WriteHTML(w io.Writer, s qc.Summary, meta Meta) error {
	d := htmlData{
		Summary:   s,
		Generated: meta.Generated.Format(TimestampLayout),
		User:      meta.User,
		Version:   version.Version,
		Lengths:   buckets(s.ReadLengthHistogram),
		GC:        buckets(s.GCPercentHistogram),
		Quality:   buckets(s.PerSequenceQualityHistogram),
	}
	for _, q := range s.QualitiesPerPosition {
		if q > d.MaxQuality {
			d.MaxQuality = q
		}
	}
	return reportTmpl.Execute(w, d)
}
