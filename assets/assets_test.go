package assets

import "testing"

func TestLoadAllLevels(t *testing.T) {
	levels := NewLevelLoader().MustLoadLevels()
	if len(levels) != 3 {
		t.Fatalf("loaded %d levels, want 3", len(levels))
	}

	for _, level := range levels {
		if level.Width <= 0 || level.Height <= 0 {
			t.Errorf("level %q has degenerate size %dx%d", level.Name, level.Width, level.Height)
		}
		if len(level.Grounds) == 0 {
			t.Errorf("level %q has no ground", level.Name)
		}
		if len(level.Enemies) == 0 {
			t.Errorf("level %q has no enemies", level.Name)
		}
		if level.Slingshot.Birds <= 0 {
			t.Errorf("level %q has no bird budget", level.Name)
		}
	}
}

func TestFirstLevelContents(t *testing.T) {
	level := NewLevelLoader().MustLoadLevel("levels/level01.tmx")

	if level.Name != "First Flight" {
		t.Errorf("name = %q, want First Flight", level.Name)
	}
	if level.Width != 88*16 || level.Height != 40*16 {
		t.Errorf("size = %dx%d, want 1408x640", level.Width, level.Height)
	}
	if level.GroundY != 576 {
		t.Errorf("GroundY = %v, want 576", level.GroundY)
	}
	if len(level.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(level.Blocks))
	}
	for _, block := range level.Blocks {
		if block.Material != "wood" {
			t.Errorf("block material = %q, want wood", block.Material)
		}
	}
	if len(level.Enemies) != 2 {
		t.Errorf("enemies = %d, want 2", len(level.Enemies))
	}
	if level.Slingshot.Birds != 3 {
		t.Errorf("bird budget = %d, want 3", level.Slingshot.Birds)
	}
	if level.Slingshot.X != 180 || level.Slingshot.Y != 500 {
		t.Errorf("slingshot at (%v, %v), want (180, 500)", level.Slingshot.X, level.Slingshot.Y)
	}
}

func TestEnemyRadiusProperty(t *testing.T) {
	level := NewLevelLoader().MustLoadLevel("levels/level03.tmx")

	custom := 0
	for _, enemy := range level.Enemies {
		if enemy.Radius == 18 {
			custom++
		} else if enemy.Radius != 0 {
			t.Errorf("unexpected enemy radius %v", enemy.Radius)
		}
	}
	if custom != 1 {
		t.Errorf("found %d enemies with a custom radius, want 1", custom)
	}
}
