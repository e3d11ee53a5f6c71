package main

import (
	"testing"
	"time"

	"github.com/kylesnowschwartz/tail-inspections/config"
	"github.com/kylesnowschwartz/tail-inspections/library"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{
			name: "no args",
			args: nil,
			want: options{},
		},
		{
			name: "positional catalog and bool flags",
			args: []string{"--dump", "site.jsonl", "--no-watch"},
			want: options{catalogPath: "site.jsonl", dump: true, noWatch: true},
		},
		{
			name: "equals and separate values",
			args: []string{"--date=today", "--media", "video", "--group=date", "--now", "2024-12-04", "--config=c.yaml"},
			want: options{date: "today", media: "video", group: "date", now: "2024-12-04", configPath: "c.yaml"},
		},
		{name: "missing value", args: []string{"--date"}, wantErr: true},
		{name: "unknown flag", args: []string{"--verbose"}, wantErr: true},
		{name: "two positionals", args: []string{"a.jsonl", "b.jsonl"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseArgs(%q) = %+v, want error", tt.args, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs(%q) error: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("parseArgs(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestResolveQuery(t *testing.T) {
	q, err := resolveQuery(config.ViewConfig{Date: "this-week", Media: "photos", Group: "day"})
	if err != nil {
		t.Fatalf("resolveQuery error: %v", err)
	}
	want := library.Query{Date: library.BucketThisWeek, Media: library.MediaPhotos, Group: library.GroupByDay}
	if q != want {
		t.Errorf("resolveQuery = %+v, want %+v", q, want)
	}

	q, err = resolveQuery(config.ViewConfig{})
	if err != nil {
		t.Fatalf("resolveQuery(empty) error: %v", err)
	}
	if q != library.DefaultQuery() {
		t.Errorf("resolveQuery(empty) = %+v, want default", q)
	}

	for _, bad := range []config.ViewConfig{
		{Date: "fortnight"},
		{Media: "audio"},
		{Group: "client"},
	} {
		if _, err := resolveQuery(bad); err == nil {
			t.Errorf("resolveQuery(%+v) should fail", bad)
		}
	}
}

func TestResolveClock(t *testing.T) {
	clock, err := resolveClock("")
	if err != nil {
		t.Fatal(err)
	}
	if d := time.Since(clock()); d < 0 || d > time.Minute {
		t.Errorf("unpinned clock is off by %v", d)
	}

	clock, err = resolveClock("2024-12-04")
	if err != nil {
		t.Fatal(err)
	}
	got := clock()
	if got.Format(library.DateLayout) != "2024-12-04" || got.Hour() != 12 {
		t.Errorf("pinned clock = %v, want 2024-12-04 12:00", got)
	}
	if !clock().Equal(got) {
		t.Error("pinned clock should not move")
	}

	if _, err := resolveClock("Dec 4"); err == nil {
		t.Error("malformed --now should fail")
	}
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(config.LogConfig{})
	if err != nil || l == nil {
		t.Fatalf("newLogger(no path) = %v, %v", l, err)
	}

	path := t.TempDir() + "/tail.log"
	l, err = newLogger(config.LogConfig{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("newLogger error: %v", err)
	}
	l.Info("hello")
	_ = l.Sync()

	if _, err := newLogger(config.LogConfig{Path: path, Level: "loud"}); err == nil {
		t.Error("unknown level should fail")
	}
}
