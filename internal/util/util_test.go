package util

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	t.Run("replaces invalid characters", func(t *testing.T) {
		actual, err := SanitizeName(` report<2026>?.pdf `)
		require.NoError(t, err)
		require.Equal(t, "report_2026__.pdf", actual)
	})

	t.Run("replaces path separators", func(t *testing.T) {
		actual, err := SanitizeName("../etc/passwd")
		require.NoError(t, err)
		require.Equal(t, ".._etc_passwd", actual)
	})

	t.Run("drops control and zero-width characters", func(t *testing.T) {
		actual, err := SanitizeName("no\u200bte\x07s.txt")
		require.NoError(t, err)
		require.Equal(t, "notes.txt", actual)
	})

	t.Run("allows hidden names", func(t *testing.T) {
		actual, err := SanitizeName(".env")
		require.NoError(t, err)
		require.Equal(t, ".env", actual)
	})

	t.Run("rejects empty and dot names", func(t *testing.T) {
		for _, name := range []string{"", "   ", ".", "..", "\u200b"} {
			_, err := SanitizeName(name)
			require.Error(t, err, name)
		}
	})

	t.Run("truncates by runes", func(t *testing.T) {
		actual, err := SanitizeName(strings.Repeat("ж", 300))
		require.NoError(t, err)
		require.Equal(t, 255, utf8.RuneCountInString(actual))
		require.True(t, utf8.ValidString(actual))
	})
}

func TestExtension(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"package.json":   "json",
		"vite.config.ts": "ts",
		"LOGO.PNG":       "png",
		"Makefile":       "",
		"trailing.":      "",
		".env":           "env",
	}
	for name, want := range cases {
		assert.Equal(t, want, Extension(name), name)
	}
}

func TestFileCategory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CategoryFolder, FileCategory(true, "json"))
	assert.Equal(t, CategoryText, FileCategory(false, "md"))
	assert.Equal(t, CategoryImage, FileCategory(false, ".PNG"))
	assert.Equal(t, CategoryVideo, FileCategory(false, "mkv"))
	assert.Equal(t, CategoryAudio, FileCategory(false, "flac"))
	assert.Equal(t, CategoryArchive, FileCategory(false, "7z"))
	assert.Equal(t, CategoryCode, FileCategory(false, "tsx"))
	assert.Equal(t, CategoryOther, FileCategory(false, "pdf"))
	assert.Equal(t, CategoryOther, FileCategory(false, ""))
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	assert.True(t, ContainsFold("Database connection failed", "DATABASE"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("", "x"))
}

func TestUniqueStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"api", "dev"}, UniqueStrings([]string{" api", "dev", "api", ""}))
	assert.NotNil(t, UniqueStrings(nil))
}
