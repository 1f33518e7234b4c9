package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    FileKind
	}{
		{"text", "\nWORKLOAD REPOSITORY report for\n\nDB Name\n", KindTextReport},
		{"html", "<!DOCTYPE html>\n<HTML><head></head>\n", KindHTML},
		{"statspack", "STATSPACK report for\n\nDatabase\n", KindForeign},
		{"other", "some random text file\nnothing here\n", KindUnrecognized},
		{"empty", "", KindUnrecognized},
		// 第6行才出现标识的算不认识，只看前5行
		{"late", "1\n2\n3\n4\n5\nWORKLOAD REPOSITORY report for\n", KindUnrecognized},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			kind, err := Classify(writeTemp(t, c.name+".txt", c.content))
			require.NoError(t, err)
			assert.Equal(t, c.want, kind)
		})
	}
}

func TestClassifyUnreadable(t *testing.T) {
	_, err := Classify(filepath.Join(t.TempDir(), "no-such-file.txt"))
	assert.Error(t, err)
}
