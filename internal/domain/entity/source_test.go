package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSource_Validate(t *testing.T) {
	valid := Source{
		Title:       "Example Blog",
		URL:         "https://example.com/",
		CrawlURL:    "https://example.com/posts",
		CSSSelector: "ul.posts li:first-child a",
	}

	t.Run("valid source", func(t *testing.T) {
		src := valid
		assert.NoError(t, src.Validate())
	})

	t.Run("missing fields are reported together", func(t *testing.T) {
		src := Source{URL: "https://example.com/"}
		err := src.Validate()

		var missing *MissingFieldsError
		assert.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{"title", "crawlUrl", "cssSelector"}, missing.Fields)
	})

	t.Run("non-http scheme is rejected", func(t *testing.T) {
		src := valid
		src.CrawlURL = "ftp://example.com/posts"
		assert.ErrorIs(t, src.Validate(), ErrInvalidInput)
	})
}

func TestSource_Cycle(t *testing.T) {
	def := 15 * time.Minute

	tests := []struct {
		name     string
		cycleSec int
		want     time.Duration
	}{
		{name: "explicit cycle", cycleSec: 120, want: 2 * time.Minute},
		{name: "zero falls back to default", cycleSec: 0, want: def},
		{name: "negative falls back to default", cycleSec: -5, want: def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Source{CycleSec: tt.cycleSec}
			assert.Equal(t, tt.want, src.Cycle(def))
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https", url: "https://example.com/a", wantErr: false},
		{name: "http", url: "http://example.com", wantErr: false},
		{name: "missing host", url: "https://", wantErr: true},
		{name: "relative", url: "/a/b", wantErr: true},
		{name: "garbage", url: "://nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
