package probe

import (
	"context"
	"reflect"
	"testing"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []string
	}{
		{
			name: "format tag before stream tags",
			json: `{
				"format": {"tags": {"creation_time": "2024-07-04T19:30:00.000000Z"}},
				"streams": [
					{"tags": {"creation_time": "2024-07-04T19:30:01.000000Z"}},
					{"tags": {"creation_time": "2024-07-04T19:30:02.000000Z"}}
				]
			}`,
			want: []string{
				"2024-07-04T19:30:00.000000Z",
				"2024-07-04T19:30:01.000000Z",
				"2024-07-04T19:30:02.000000Z",
			},
		},
		{
			name: "stream tags only",
			json: `{"streams": [{"tags": {"creation_time": "2024-07-04T19:30:00Z"}}]}`,
			want: []string{"2024-07-04T19:30:00Z"},
		},
		{
			name: "tagless streams skipped",
			json: `{"format": {}, "streams": [{"tags": {"language": "und"}}, {}]}`,
			want: nil,
		},
		{
			name: "empty object",
			json: `{}`,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseJSON([]byte(tt.json))
			if err != nil {
				t.Fatalf("ParseJSON() error: %v", err)
			}
			if !reflect.DeepEqual(res.Candidates, tt.want) {
				t.Errorf("Candidates = %v, want %v", res.Candidates, tt.want)
			}
		})
	}
}

func TestParseJSONMalformed(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Error("ParseJSON accepted malformed input")
	}
}

func TestProbeMissingBinary(t *testing.T) {
	_, err := Probe(context.Background(), "ffprobe-does-not-exist", "whatever.mp4")
	if err == nil {
		t.Error("Probe succeeded with a nonexistent binary")
	}
}
