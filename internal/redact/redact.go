package redact

import (
	"path/filepath"
	"regexp"
	"strings"
)

const placeholder = "[REDACTED]"

type rule struct {
	name string
	re   *regexp.Regexp
}

// rules are checked in order; earlier, more specific shapes win.
var rules = []rule{
	{"google-api-key", regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`)},
	{"api-key-assignment", regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`)},
	{"aws-access-key-id", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"aws-secret-access-key", regexp.MustCompile(`(?i)(aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`)},
	{"secret-assignment", regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`)},
	{"bearer-token", regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`)},
	{"jwt", regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`)},
	{"private-key", regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`)},
	{"github-token", regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`)},
	{"slack-token", regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`)},
	{"anthropic-key", regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`)},
	{"openai-key", regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`)},
	{"jdbc-password", regexp.MustCompile(`(?i)jdbc:[a-z]+://[^\s"']*password=[^\s&"';]+`)},
	{"hex-secret", regexp.MustCompile(`(?i)(key|secret|token)\s*[:=]\s*["']?[0-9a-f]{32,}["']?`)},
}

// Secrets replaces detected secrets in text with [REDACTED].
func Secrets(text string) string {
	out, _ := Scan(text)
	return out
}

// Scan redacts text and reports which rules matched, in rule order.
func Scan(text string) (string, []string) {
	var hits []string
	for _, r := range rules {
		if !r.re.MatchString(text) {
			continue
		}
		hits = append(hits, r.name)
		text = r.re.ReplaceAllLiteralString(text, placeholder)
	}
	return text, hits
}

// ShouldRedactPath checks if a file path matches any of the redaction patterns.
func ShouldRedactPath(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
		// "**/name" also matches the bare file name.
		if trimmed := strings.TrimPrefix(pattern, "**/"); trimmed != pattern {
			if matched, err := filepath.Match(trimmed, filepath.Base(path)); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// Content redacts the whole selection when its file matches a path policy,
// otherwise only the secrets inside it.
func Content(content, path string, redactPaths []string) string {
	if ShouldRedactPath(path, redactPaths) {
		return placeholder + " (selection from " + filepath.Base(path) + " redacted by path policy)\n"
	}
	return Secrets(content)
}
