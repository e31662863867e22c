package settings

import (
	"testing"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	want := &Run{
		MinLogLevel: 0,
		Delimiter:   ',',
		NoColor:     false,
		ExitOnError: true,
	}
	if *got != *want {
		t.Errorf("NewCliParams() = %+v, want %+v", got, want)
	}
}

func TestVersionInformationDefaults(t *testing.T) {
	if VersionInformation.Commit == "" {
		t.Fatalf("expected non-empty default commit")
	}
	if VersionInformation.BuildVersion == "" {
		t.Fatalf("expected non-empty default build version")
	}
}
