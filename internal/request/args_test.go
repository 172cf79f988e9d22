package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "https url",
			input: "https://abc.xyz",
		},
		{
			name:  "https url with path",
			input: "https://abc.org/xyz",
		},
		{
			name:  "http url with port and query",
			input: "http://localhost:8080/search?q=go",
		},
		{
			name:    "bare word",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "missing host",
			input:   "https://",
			wantErr: true,
		},
		{
			name:    "relative path",
			input:   "/xyz",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestParseKVPair(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    KVPair
		wantErr bool
	}{
		{
			name:  "simple pair",
			input: "a=1",
			want:  KVPair{Key: "a", Value: "1"},
		},
		{
			name:  "empty value",
			input: "b=",
			want:  KVPair{Key: "b", Value: ""},
		},
		{
			name:  "empty key",
			input: "=v",
			want:  KVPair{Key: "", Value: "v"},
		},
		{
			name:  "value containing equals",
			input: "q=a=b",
			want:  KVPair{Key: "q", Value: "a=b"},
		},
		{
			name:    "no equals sign",
			input:   "a",
			wantErr: true,
		},
		{
			name:    "empty token",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKVPair(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKVPairs(t *testing.T) {
	pairs, err := ParseKVPairs([]string{"a=1", "b=2"})
	require.NoError(t, err)
	assert.Equal(t, []KVPair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, pairs)

	_, err = ParseKVPairs([]string{"a=1", "oops"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oops")
}
