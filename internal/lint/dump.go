package lint

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"httpcore/header"
	"httpcore/internal/policy"
	"httpcore/status"

	"go.uber.org/zap"
)

var crlf = []byte("\r\n")

type startLine struct {
	request bool
	version string
}

// CheckDump validates a raw HTTP/1.x message head: a request or status line
// followed by header lines. Anything after the empty line is ignored.
func (l *Linter) CheckDump(src string, r io.Reader) (Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	data = normalizeLineEndings(data)

	var remaining []byte
	lineEnd := bytes.Index(data, crlf)
	if lineEnd == -1 {
		lineEnd = len(data)
	} else {
		remaining = data[lineEnd+2:]
	}
	out, start := l.checkStartLine(src, data[:lineEnd])
	lineReport := l.checkHeaderLines(src, remaining)
	out = append(out, lineReport...)
	if lineReport.HasErrors() {
		return out, nil
	}

	block, err := header.ParseBlock(remaining)
	if err != nil {
		return append(out, Finding{Source: src, Severity: SeverityError, Message: err.Error()}), nil
	}

	policies := policy.Chain{l.sensitive}
	if start.request && start.version == "HTTP/1.1" {
		policies = append(policies, policy.NewRequired(header.Host))
	}
	if err := policies.Apply(block); err != nil {
		for _, e := range unwrapJoined(err) {
			out = append(out, Finding{Source: src, Severity: SeverityError, Message: e.Error()})
		}
	}

	fields := make([]zap.Field, 0, block.Len())
	for name, v := range block.All() {
		fields = append(fields, zap.Stringer(name.String(), v))
	}
	l.log.Debug("header block", append([]zap.Field{zap.String("source", src)}, fields...)...)
	l.log.Info("dump checked",
		zap.String("path", src),
		zap.Int("headers", block.Len()),
		zap.Int("findings", len(out)))
	return out, nil
}

func (l *Linter) checkStartLine(src string, line []byte) (Report, startLine) {
	if bytes.HasPrefix(line, []byte("HTTP/")) {
		return l.checkStatusLine(src, string(line)), startLine{}
	}

	m, target, version, err := parseStartLine(line)
	if err != nil {
		return Report{{Source: src, Line: 1, Severity: SeverityError, Message: err.Error()}}, startLine{request: true}
	}
	out := l.checkMethod(src, 1, m)
	if target == "" {
		out = append(out, Finding{Source: src, Line: 1, Subject: m, Severity: SeverityError, Message: "empty request target"})
	}
	out = append(out, checkVersion(src, version)...)
	return out, startLine{request: true, version: version}
}

func (l *Linter) checkStatusLine(src, line string) Report {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return Report{{Source: src, Line: 1, Severity: SeverityError, Message: "invalid status line: missing status code"}}
	}
	out := checkVersion(src, parts[0])

	code, err := status.Parse(parts[1])
	if err != nil {
		return append(out, Finding{Source: src, Line: 1, Subject: parts[1], Severity: SeverityError, Message: err.Error()})
	}

	canonical, ok := code.CanonicalReason()
	switch {
	case !ok:
		out = append(out, Finding{Source: src, Line: 1, Subject: code.Text(), Severity: SeverityWarning,
			Message: "no canonical reason phrase", Status: code})
	case len(parts) == 3 && parts[2] != canonical:
		out = append(out, Finding{Source: src, Line: 1, Subject: code.Text(), Severity: SeverityInfo,
			Message: fmt.Sprintf("reason phrase %q differs from %q", parts[2], canonical), Status: code})
	default:
		out = append(out, Finding{Source: src, Line: 1, Subject: code.Text(), Severity: SeverityInfo,
			Message: classOf(code), Status: code})
	}
	return out
}

func (l *Linter) checkHeaderLines(src string, remaining []byte) Report {
	var out Report
	for n := 2; len(remaining) > 0; n++ {
		lineEnd := bytes.Index(remaining, crlf)
		if lineEnd == -1 {
			lineEnd = len(remaining)
		}

		line := remaining[:lineEnd]
		if len(line) == 0 {
			break
		}

		colonIdx := bytes.IndexByte(line, ':')
		if colonIdx == -1 {
			out = append(out, Finding{Source: src, Line: n, Subject: string(line), Severity: SeverityError,
				Message: fmt.Sprintf("%v: missing colon", header.ErrMalformedLine)})
		} else {
			value := bytes.Trim(line[colonIdx+1:], " \t")
			out = append(out, l.checkHeader(src, n, string(line[:colonIdx]), string(value), false, l.strictText, false)...)
		}

		if lineEnd == len(remaining) {
			break
		}
		remaining = remaining[lineEnd+2:]
	}
	return out
}

func parseStartLine(startLine []byte) (method, target, version string, err error) {
	firstSpace := bytes.IndexByte(startLine, ' ')
	if firstSpace == -1 {
		return "", "", "", fmt.Errorf("invalid start line: missing method")
	}

	secondSpace := bytes.IndexByte(startLine[firstSpace+1:], ' ')
	if secondSpace == -1 {
		return "", "", "", fmt.Errorf("invalid start line: missing version")
	}
	secondSpace += firstSpace + 1

	method = string(startLine[:firstSpace])
	target = string(startLine[firstSpace+1 : secondSpace])
	version = string(startLine[secondSpace+1:])

	return method, target, version, nil
}

func checkVersion(src, version string) Report {
	switch version {
	case "HTTP/1.0", "HTTP/1.1":
		return nil
	default:
		return Report{{Source: src, Line: 1, Subject: version, Severity: SeverityWarning, Message: "unsupported protocol version"}}
	}
}

func classOf(c status.Code) string {
	switch {
	case c.IsInformational():
		return "informational"
	case c.IsSuccess():
		return "success"
	case c.IsRedirection():
		return "redirection"
	case c.IsClientError():
		return "client error"
	case c.IsServerError():
		return "server error"
	default:
		return "non-standard class"
	}
}

func normalizeLineEndings(data []byte) []byte {
	if bytes.Count(data, []byte("\n")) == bytes.Count(data, crlf) {
		return data
	}
	data = bytes.ReplaceAll(data, crlf, []byte("\n"))
	return bytes.ReplaceAll(data, []byte("\n"), crlf)
}

func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, unwrapJoined(e)...)
		}
		return out
	}
	return []error{err}
}
