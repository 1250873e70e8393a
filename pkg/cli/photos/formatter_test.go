package photos

import (
	"strings"
	"testing"
	"time"

	"photo-vault-go/pkg/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetTitle(t *testing.T) {
	assert.Equal(t, "Sunset", GetTitle(models.Photo{Title: "Sunset"}))
	assert.Equal(t, "(untitled)", GetTitle(models.Photo{}))
}

func TestTruncateURL(t *testing.T) {
	short := "https://example.com/a.jpg"
	assert.Equal(t, short, TruncateURL(short, 50))

	long := "https://example.com/" + strings.Repeat("x", 100)
	got := TruncateURL(long, 50)
	assert.Len(t, got, 50)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestShortenID(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")
	assert.Equal(t, "a1b2c3d4...", ShortenID(id))
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "active", FormatStatus(models.Photo{}))
	assert.Equal(t, "recycle bin", FormatStatus(models.Photo{IsDeleted: true}))
}

func TestFormatTableOutput(t *testing.T) {
	out := FormatTableOutput("Your Photos", nil)
	assert.Equal(t, "No photos found.", out)

	photo := models.Photo{
		PhotoID:    uuid.New(),
		Title:      "Beach day",
		UploadedAt: time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC),
	}
	out = FormatTableOutput("Your Photos", []models.Photo{photo})
	assert.Contains(t, out, "Your Photos")
	assert.Contains(t, out, "Beach day")
	assert.Contains(t, out, "2026-05-01 12:30")
	assert.Contains(t, out, "Total: 1 photo(s)")
}
