package lint

import (
	"fmt"

	"httpcore/header"
	"httpcore/internal/policy"
	"httpcore/method"
	"httpcore/status"

	"go.uber.org/zap"
)

type Options struct {
	Logger     *zap.Logger
	Sensitive  *policy.Sensitive
	StrictText bool
}

type Linter struct {
	log        *zap.Logger
	sensitive  *policy.Sensitive
	strictText bool
}

func New(opts Options) *Linter {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sensitive := opts.Sensitive
	if sensitive == nil {
		sensitive = &policy.Sensitive{}
	}
	return &Linter{log: log, sensitive: sensitive, strictText: opts.StrictText}
}

func (l *Linter) checkHeader(src string, line int, rawName, rawValue string, sensitive, strict, noteFold bool) Report {
	var out Report
	add := func(sev Severity, subject, format string, args ...any) {
		out = append(out, Finding{Source: src, Line: line, Subject: subject, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	name, err := header.NameFromBytes([]byte(rawName))
	if err != nil {
		add(SeverityError, rawName, "%v", err)
		return out
	}
	if noteFold && name.String() != rawName {
		add(SeverityInfo, name.String(), "name is stored lower-cased")
	}

	value, err := header.FromString(rawValue)
	if err != nil {
		add(SeverityError, name.String(), "%v", err)
		return out
	}
	value.SetSensitive(sensitive)
	if !sensitive && l.sensitive.Matches(name) {
		value.SetSensitive(true)
		add(SeverityInfo, name.String(), "value marked sensitive by policy")
	}

	if _, err := value.ToStr(); err != nil {
		sev := SeverityWarning
		if strict {
			sev = SeverityError
		}
		add(sev, name.String(), "value %v is not visible ASCII: %v", value, err)
	}

	l.log.Debug("header checked",
		zap.String("source", src),
		zap.Stringer("name", name),
		zap.Stringer("value", value))
	return out
}

func (l *Linter) checkMethod(src string, line int, token string) Report {
	m, err := method.Parse(token)
	if err != nil {
		return Report{{Source: src, Line: line, Subject: token, Severity: SeverityError, Message: err.Error()}}
	}
	if m.IsStandard() {
		return nil
	}

	storage := "inline"
	if m.IsAllocated() {
		storage = "allocated"
	}
	return Report{{
		Source:   src,
		Line:     line,
		Subject:  m.String(),
		Severity: SeverityInfo,
		Message:  fmt.Sprintf("extension method (%s, %d bytes)", storage, m.Len()),
	}}
}

func (l *Linter) checkStatus(src string, line int, code int) Report {
	if code < 0 || code > 0xffff {
		return Report{{Source: src, Line: line, Subject: fmt.Sprint(code), Severity: SeverityError,
			Message: fmt.Sprintf("%v: %d out of range [100, 999]", status.ErrInvalidStatusCode, code)}}
	}
	c, err := status.FromUint16(uint16(code))
	if err != nil {
		return Report{{Source: src, Line: line, Subject: fmt.Sprint(code), Severity: SeverityError, Message: err.Error()}}
	}
	if _, ok := c.CanonicalReason(); !ok {
		return Report{{Source: src, Line: line, Subject: c.Text(), Severity: SeverityWarning,
			Message: "no canonical reason phrase", Status: c}}
	}
	return nil
}
