package device

import (
	"context"
	"testing"
)

func TestClassifyJSON(t *testing.T) {
	tests := []struct {
		name   string
		json   string
		want   Label
		wantOK bool
	}{
		{"apple make", `[{"Make": "Apple", "Model": "iPhone 15 Pro"}]`, IPhone, true},
		{"iphone model only", `[{"Model": "IPHONE 12"}]`, IPhone, true},
		{"google make", `[{"Make": "Google", "Model": "Pixel 8"}]`, Android, true},
		{"pixel model only", `[{"Model": "Pixel 6a"}]`, Android, true},
		{"android fields", `[{"AndroidMake": "samsung", "AndroidModel": "SM-G991B"}]`, Android, true},
		{"samsung without android fields", `[{"Make": "samsung", "Model": "SM-G991B"}]`, "", false},
		{"no signal", `[{}]`, "", false},
		{"empty array", `[]`, "", false},
		{"malformed", `{`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyJSON([]byte(tt.json))
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ClassifyJSON() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Label
	}{
		{".mov", IPhone},
		{".MOV", IPhone},
		{".heic", IPhone},
		{".mp4", Android},
		{".jpg", Android},
		{".jpeg", Android},
	}
	for _, tt := range tests {
		if got := FromExtension(tt.ext); got != tt.want {
			t.Errorf("FromExtension(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestClassifyFallsBackToExtension(t *testing.T) {
	label, src := Classify(context.Background(), "exiftool-does-not-exist", "clip.mov")
	if label != IPhone || src != SourceExtension {
		t.Errorf("Classify() = (%q, %q), want (iphone, extension)", label, src)
	}
}
