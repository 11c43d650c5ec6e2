package pathutil_test

import (
	"errors"
	"testing"

	"pagewatch/internal/handler/http/pathutil"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "valid", in: "123", want: 123},
		{name: "zero", in: "0", wantErr: true},
		{name: "negative", in: "-5", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "trailing junk", in: "12x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathutil.ParseID(tt.in)
			if tt.wantErr {
				if !errors.Is(err, pathutil.ErrInvalidID) {
					t.Fatalf("ParseID(%q) error = %v, want ErrInvalidID", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseID(%q) = %d, %v, want %d", tt.in, got, err, tt.want)
			}
		})
	}
}
