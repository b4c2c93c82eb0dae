package review

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Preset is a named instruction placed in front of the selected code.
type Preset struct {
	Name        string
	Description string
	Text        string
}

// DefaultPreset is used when neither a preset nor a custom prompt is configured.
const DefaultPreset = "web"

var presets = map[string]Preset{
	"web": {
		Name:        "web",
		Description: "Web development expert review",
		Text:        "You are an expert web developer. Analyze the following code and write a review.\n\n",
	},
	"spring": {
		Name:        "spring",
		Description: "Spring Boot expert review",
		Text:        "You are an expert Spring Boot developer. Analyze the following code and write a review.\n\n",
	},
	"web-ko": {
		Name:        "web-ko",
		Description: "Web development expert review, answered in Korean",
		Text:        "당신은 웹 개발자 전문가입니다. 코드를 분석하고 리뷰를 작성하세요. 모든 응답은 반드시 한국어로 작성하세요. \n\n",
	},
}

// Presets returns all presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// ResolvePrompt returns custom when it is set, otherwise the text of the named
// preset (DefaultPreset when name is empty).
func ResolvePrompt(name, custom string) (string, error) {
	if custom != "" {
		return custom, nil
	}
	if name == "" {
		name = DefaultPreset
	}
	p, ok := LookupPreset(name)
	if !ok {
		return "", fmt.Errorf("unknown prompt preset: %s", name)
	}
	return p.Text, nil
}

var langMap = map[string]string{
	".go":    "Go",
	".py":    "Python",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".tsx":   "TypeScript/React",
	".jsx":   "JavaScript/React",
	".rs":    "Rust",
	".java":  "Java",
	".kt":    "Kotlin",
	".rb":    "Ruby",
	".cpp":   "C++",
	".c":     "C",
	".h":     "C/C++",
	".cs":    "C#",
	".php":   "PHP",
	".swift": "Swift",
	".sql":   "SQL",
	".sh":    "Shell",
	".html":  "HTML",
	".css":   "CSS",
	".vue":   "Vue",
	".yaml":  "YAML",
	".yml":   "YAML",
	".json":  "JSON",
}

// DetectLanguage maps a file path to a language name, or "" if unknown.
func DetectLanguage(path string) string {
	return langMap[strings.ToLower(filepath.Ext(path))]
}
