package lint

import (
	"errors"
	"strings"
	"testing"

	"httpcore/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDump(t *testing.T) {
	tests := []struct {
		name           string
		data           string
		expectSeverity []Severity
		expectContains []string
		expectLine     int
		expectStatus   status.Code
	}{
		{
			name: "valid request",
			data: "GET /index.html HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\nbody",
		},
		{
			name:           "HTTP/1.1 request without host",
			data:           "GET / HTTP/1.1\r\nAccept: */*\r\n\r\n",
			expectSeverity: []Severity{SeverityError},
			expectContains: []string{"missing required header: host"},
		},
		{
			name: "HTTP/1.0 request without host",
			data: "GET / HTTP/1.0\r\n\r\n",
		},
		{
			name:           "extension method with bare LF",
			data:           "PURGE /cache HTTP/1.1\nHost: a\n\n",
			expectSeverity: []Severity{SeverityInfo},
			expectContains: []string{"extension method"},
			expectLine:     1,
		},
		{
			name:           "invalid method",
			data:           "G@T / HTTP/1.1\r\nHost: a\r\n\r\n",
			expectSeverity: []Severity{SeverityError},
			expectContains: []string{"invalid HTTP method: byte 0x40 at offset 1"},
			expectLine:     1,
		},
		{
			name:           "missing version",
			data:           "GET /\r\n\r\n",
			expectSeverity: []Severity{SeverityError},
			expectContains: []string{"invalid start line: missing version"},
			expectLine:     1,
		},
		{
			name:           "unsupported version",
			data:           "GET / HTTP/2.0\r\n\r\n",
			expectSeverity: []Severity{SeverityWarning},
			expectContains: []string{"unsupported protocol version"},
		},
		{
			name:           "status line",
			data:           "HTTP/1.1 404 Not Found\r\nContent-Length: 0\r\n\r\n",
			expectSeverity: []Severity{SeverityInfo},
			expectContains: []string{"client error"},
			expectStatus:   status.NotFound,
		},
		{
			name:           "status line with custom reason",
			data:           "HTTP/1.1 200 Okay\r\n\r\n",
			expectSeverity: []Severity{SeverityInfo},
			expectContains: []string{`reason phrase "Okay" differs from "OK"`},
			expectStatus:   status.OK,
		},
		{
			name:           "status line without reason",
			data:           "HTTP/1.1 503\r\n\r\n",
			expectSeverity: []Severity{SeverityInfo},
			expectContains: []string{"server error"},
			expectStatus:   status.ServiceUnavailable,
		},
		{
			name:           "status line without canonical reason",
			data:           "HTTP/1.1 299 Whatever\r\n\r\n",
			expectSeverity: []Severity{SeverityWarning},
			expectContains: []string{"no canonical reason phrase"},
			expectStatus:   status.MustFromUint16(299),
		},
		{
			name:           "invalid status code",
			data:           "HTTP/1.1 2x0 OK\r\n\r\n",
			expectSeverity: []Severity{SeverityError},
			expectContains: []string{"invalid status code"},
		},
		{
			name:           "missing status code",
			data:           "HTTP/1.1\r\n\r\n",
			expectSeverity: []Severity{SeverityError},
			expectContains: []string{"missing status code"},
		},
		{
			name:           "header line without colon",
			data:           "GET / HTTP/1.1\r\nHost example\r\n\r\n",
			expectSeverity: []Severity{SeverityError},
			expectContains: []string{"missing colon"},
			expectLine:     2,
		},
		{
			name:           "invalid header name",
			data:           "GET / HTTP/1.1\r\nHost: a\r\nBad Name: x\r\n\r\n",
			expectSeverity: []Severity{SeverityError},
			expectContains: []string{"invalid HTTP header name"},
			expectLine:     3,
		},
		{
			name:           "sensitive header",
			data:           "GET / HTTP/1.1\r\nHost: a\r\nAuthorization: Bearer x\r\n\r\n",
			expectSeverity: []Severity{SeverityInfo},
			expectContains: []string{"sensitive by policy"},
			expectLine:     3,
		},
		{
			name:           "HTTP/1.1 start line without terminator",
			data:           "GET / HTTP/1.1",
			expectSeverity: []Severity{SeverityError},
			expectContains: []string{"missing required header: host"},
		},
		{
			name: "HTTP/1.0 start line without terminator",
			data: "GET / HTTP/1.0",
		},
		{
			name:           "status line without terminator",
			data:           "HTTP/1.1 204 No Content",
			expectSeverity: []Severity{SeverityInfo},
			expectContains: []string{"success"},
			expectStatus:   status.NoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLinter(t, false)
			report, err := l.CheckDump("dump.txt", strings.NewReader(tt.data))
			require.NoError(t, err)

			require.Len(t, report, len(tt.expectSeverity))
			for i, sev := range tt.expectSeverity {
				assert.Equal(t, sev, report[i].Severity)
				assert.Contains(t, report[i].Message, tt.expectContains[i])
				assert.Equal(t, "dump.txt", report[i].Source)
			}
			if len(report) > 0 {
				if tt.expectLine > 0 {
					assert.Equal(t, tt.expectLine, report[0].Line)
				}
				assert.Equal(t, tt.expectStatus, report[0].Status)
			}
		})
	}
}

func TestCheckDumpRedactsLoggedValues(t *testing.T) {
	l, logs := newTestLinter(t, false)
	_, err := l.CheckDump("dump.txt", strings.NewReader("GET / HTTP/1.1\r\nHost: a\r\nCookie: id=1\r\n\r\n"))
	require.NoError(t, err)

	blocks := logs.FilterMessage("header block").All()
	require.Len(t, blocks, 1)
	fields := blocks[0].ContextMap()
	assert.Equal(t, "Sensitive", fields["cookie"])
	assert.Equal(t, `"a"`, fields["host"])
	assert.Equal(t, 1, logs.FilterMessage("dump checked").Len())
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestCheckDumpReadError(t *testing.T) {
	l := New(Options{})
	report, err := l.CheckDump("dump.txt", errReader{})
	assert.ErrorContains(t, err, "read dump.txt: read failed")
	assert.Nil(t, report)
}

func TestParseStartLine(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		expectErr     string
		expectMethod  string
		expectTarget  string
		expectVersion string
	}{
		{"success", "GET /path HTTP/1.1", "", "GET", "/path", "HTTP/1.1"},
		{"missing method", "INVALID", "invalid start line: missing method", "", "", ""},
		{"missing version", "GET /path", "invalid start line: missing version", "", "", ""},
		{"multiple spaces", "GET  /path  HTTP/1.1", "", "GET", "", "/path  HTTP/1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, target, version, err := parseStartLine([]byte(tt.line))
			if tt.expectErr != "" {
				assert.EqualError(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectMethod, m)
			assert.Equal(t, tt.expectTarget, target)
			assert.Equal(t, tt.expectVersion, version)
		})
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	assert.Equal(t, "a\r\nb\r\n", string(normalizeLineEndings([]byte("a\r\nb\r\n"))))
	assert.Equal(t, "a\r\nb\r\n\r\n", string(normalizeLineEndings([]byte("a\nb\r\n\n"))))
}

func TestReport(t *testing.T) {
	r := Report{
		{Severity: SeverityInfo},
		{Severity: SeverityWarning},
		{Severity: SeverityWarning},
	}
	assert.False(t, r.HasErrors())
	assert.Equal(t, 2, r.Count(SeverityWarning))

	r = append(r, Finding{Severity: SeverityError})
	assert.True(t, r.HasErrors())

	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warn", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "a.txt:3", Finding{Source: "a.txt", Line: 3}.Location())
	assert.Equal(t, "a.txt", Finding{Source: "a.txt"}.Location())
}
