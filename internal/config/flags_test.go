package config

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "directory only",
			args: []string{"/media/photos/"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Dir != "/media/photos" {
					t.Errorf("Dir = %q", cfg.Dir)
				}
			},
		},
		{
			name: "short dry run",
			args: []string{"-n", "/media/photos"},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.DryRun {
					t.Error("DryRun not set")
				}
			},
		},
		{
			name: "prefix overrides",
			args: []string{"--iphone-prefix", "dadphone", "--android-prefix", "momphone", "/d"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.IPhonePrefix != "dadphone" || cfg.AndroidPrefix != "momphone" {
					t.Errorf("prefixes = %q, %q", cfg.IPhonePrefix, cfg.AndroidPrefix)
				}
			},
		},
		{
			name: "timezone and tool overrides",
			args: []string{"--tz", "UTC", "--ffprobe", "/opt/ffprobe", "/d"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Timezone != "UTC" || cfg.FfprobeBin != "/opt/ffprobe" {
					t.Errorf("Timezone = %q, FfprobeBin = %q", cfg.Timezone, cfg.FfprobeBin)
				}
			},
		},
		{
			name: "no-color wins",
			args: []string{"--color", "--no-color", "/d"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.ColorMode != ColorNever {
					t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
				}
			},
		},
		{
			name: "check mode without directory",
			args: []string{"--check"},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.CheckOnly {
					t.Error("CheckOnly not set")
				}
			},
		},
		{name: "missing directory", args: []string{}, wantErr: true},
		{name: "extra positional", args: []string{"/a", "/b"}, wantErr: true},
		{name: "unknown flag", args: []string{"--bogus", "/d"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ParseFlags(&cfg, "mediastamp", "test", tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseFlags() = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags() error: %v", err)
			}
			tt.check(t, &cfg)
		})
	}
}

func TestParseFlagsExiftoolOnlyWithMetadataDevice(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "videostamp", "test", []string{"--exiftool", "/opt/exiftool", "/d"}); err == nil {
		t.Error("videostamp variant accepted --exiftool")
	}

	cfg = DefaultConfig()
	cfg.MetadataDevice = true
	if err := ParseFlags(&cfg, "mediastamp", "test", []string{"--exiftool", "/opt/exiftool", "/d"}); err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if cfg.ExiftoolBin != "/opt/exiftool" {
		t.Errorf("ExiftoolBin = %q", cfg.ExiftoolBin)
	}
}
