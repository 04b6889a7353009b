package mail

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDevSender_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	sender := NewDevSender(dir)

	err := sender.Send(context.Background(), Message{
		To:      "jane@example.com",
		Subject: "Welcome to PayHive Newsletter!",
		HTML:    "<p>hello</p>",
		Tag:     "newsletter",
	})
	assert.NoError(t, err)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	var htmlFile, jsonFile string
	for _, entry := range entries {
		switch {
		case strings.HasSuffix(entry.Name(), ".html"):
			htmlFile = entry.Name()
		case strings.HasSuffix(entry.Name(), ".json"):
			jsonFile = entry.Name()
		}
	}
	assert.NotEmpty(t, htmlFile)
	assert.NotEmpty(t, jsonFile)

	html, err := os.ReadFile(filepath.Join(dir, htmlFile))
	assert.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", string(html))

	raw, err := os.ReadFile(filepath.Join(dir, jsonFile))
	assert.NoError(t, err)
	var meta devMetadata
	assert.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "jane@example.com", meta.To)
	assert.Equal(t, "newsletter", meta.Tag)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "welcome_to_payhive", sanitizeFilename("Welcome to PayHive"))
	assert.Equal(t, "email", sanitizeFilename("///"))
	assert.Len(t, sanitizeFilename(strings.Repeat("a", 200)), 100)
}
