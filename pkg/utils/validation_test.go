package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain title", raw: "Sunset", want: "Sunset"},
		{name: "trims whitespace", raw: "  Sunset  ", want: "Sunset"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTitle(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentTypeForFile(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
		wantErr  bool
	}{
		{fileName: "sunset.jpg", want: "image/jpeg"},
		{fileName: "sunset.JPEG", want: "image/jpeg"},
		{fileName: "icon.png", want: "image/png"},
		{fileName: "anim.gif", want: "image/gif"},
		{fileName: "photo.webp", want: "image/webp"},
		{fileName: "doc.pdf", wantErr: true},
		{fileName: "noextension", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			got, err := ContentTypeForFile(tt.fileName)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, ValidateContentType(got))
		})
	}
}
