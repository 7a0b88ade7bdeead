package lint

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

type Manifest struct {
	Lint     ManifestOptions `toml:"lint"`
	Headers  []HeaderEntry   `toml:"header"`
	Methods  []MethodEntry   `toml:"method"`
	Statuses []StatusEntry   `toml:"status"`
}

type ManifestOptions struct {
	StrictText bool `toml:"strict_text"`
}

type HeaderEntry struct {
	Name      string  `toml:"name"`
	Value     *string `toml:"value"`
	Sensitive bool    `toml:"sensitive"`
}

type MethodEntry struct {
	Token string `toml:"token"`
}

type StatusEntry struct {
	Code *int `toml:"code"`
}

// CheckManifestFile decodes a TOML manifest and validates every entry.
func (l *Linter) CheckManifestFile(path string) (Report, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	strict := l.strictText
	if meta.IsDefined("lint", "strict_text") {
		strict = m.Lint.StrictText
	}

	var out Report
	for _, key := range meta.Undecoded() {
		out = append(out, Finding{Source: path, Subject: key.String(), Severity: SeverityWarning, Message: "unknown manifest key"})
	}
	out = append(out, l.CheckManifest(path, m, strict)...)

	l.log.Info("manifest checked",
		zap.String("path", path),
		zap.Int("headers", len(m.Headers)),
		zap.Int("methods", len(m.Methods)),
		zap.Int("statuses", len(m.Statuses)),
		zap.Int("findings", len(out)))
	return out, nil
}

func (l *Linter) CheckManifest(src string, m Manifest, strict bool) Report {
	var out Report
	for i, h := range m.Headers {
		entry := fmt.Sprintf("%s#header[%d]", src, i)
		if h.Value == nil {
			out = append(out, Finding{Source: entry, Subject: h.Name, Severity: SeverityError, Message: "missing value"})
			continue
		}
		out = append(out, l.checkHeader(entry, 0, h.Name, *h.Value, h.Sensitive, strict, true)...)
	}
	for i, e := range m.Methods {
		out = append(out, l.checkMethod(fmt.Sprintf("%s#method[%d]", src, i), 0, e.Token)...)
	}
	for i, e := range m.Statuses {
		entry := fmt.Sprintf("%s#status[%d]", src, i)
		if e.Code == nil {
			out = append(out, Finding{Source: entry, Severity: SeverityError, Message: "missing code"})
			continue
		}
		out = append(out, l.checkStatus(entry, 0, *e.Code)...)
	}
	return out
}
