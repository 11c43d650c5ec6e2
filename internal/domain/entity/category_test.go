package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryMatchesPrefix(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		prefix string
		want   bool
	}{
		{name: "exact match", value: "news", prefix: "news", want: true},
		{name: "direct child", value: "news/tech", prefix: "news", want: true},
		{name: "deep descendant", value: "news/tech/go", prefix: "news", want: true},
		{name: "shared prefix is not hierarchy", value: "newsletter", prefix: "news", want: false},
		{name: "reverse direction", value: "news", prefix: "news/tech", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryMatchesPrefix(tt.value, tt.prefix))
		})
	}
}
