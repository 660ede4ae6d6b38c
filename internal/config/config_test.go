package config

import "testing"

func TestFPSLimitClamping(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("negative limit clamped to %d, want 0", got)
	}

	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != 1000 {
		t.Errorf("huge limit clamped to %d, want 1000", got)
	}

	SetFPSLimit(60)
	if got := GetFPSLimit(); got != 60 {
		t.Errorf("limit = %d, want 60", got)
	}
}

func TestClearColorClamping(t *testing.T) {
	defer SetClearColor(GetClearColor())

	SetClearColor([4]float32{255, -1, 0.5, 2})
	got := GetClearColor()
	want := [4]float32{1, 0, 0.5, 1}
	if got != want {
		t.Errorf("clear color = %v, want %v", got, want)
	}
}

func TestSpawnTextureIgnoresEmptyKey(t *testing.T) {
	orig := GetSpawnTexture()
	defer SetSpawnTexture(orig)

	SetSpawnTexture("")
	if got := GetSpawnTexture(); got != orig {
		t.Errorf("empty key overwrote spawn texture: %q", got)
	}

	SetSpawnTexture("other.png")
	if got := GetSpawnTexture(); got != "other.png" {
		t.Errorf("spawn texture = %q, want other.png", got)
	}
}
