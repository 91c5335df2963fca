package docs

import (
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	var topics []string
	for _, path := range entries {
		base := filepath.Base(path)
		topic := strings.TrimSuffix(base, filepath.Ext(base))
		if topic != "" {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

// Get resolves a topic to its markdown body. An exact name wins; a
// unique prefix also resolves, so `pcs guide wei` finds "weights".
func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return "", false
	}
	if b, err := contentFS.ReadFile(filepath.Join("content", topic+".md")); err == nil {
		return string(b), true
	}
	match := ""
	for _, t := range Topics() {
		if strings.HasPrefix(t, topic) {
			if match != "" {
				return "", false
			}
			match = t
		}
	}
	if match == "" {
		return "", false
	}
	b, err := contentFS.ReadFile(filepath.Join("content", match+".md"))
	if err != nil {
		return "", false
	}
	return string(b), true
}
