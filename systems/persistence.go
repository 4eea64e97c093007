package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedProgress is the save file payload: per-level best scores plus the
// highest unlocked level index.
type SavedProgress struct {
	BestScores map[int]int `json:"bestScores"`
	Unlocked   int         `json:"unlocked"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage.
// Failure is not fatal: the game plays without saving.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "slingshock",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads saved progress from disk. A missing or unreadable
// save yields empty progress, never an error the caller must handle.
func LoadProgress() *SavedProgress {
	empty := &SavedProgress{BestScores: map[int]int{}}
	if !gdataInitialized || gdataManager == nil {
		return empty
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return empty
	}
	if data == nil {
		return empty
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return empty
	}
	if progress.BestScores == nil {
		progress.BestScores = map[int]int{}
	}
	return &progress
}

// SaveProgress writes progress to disk, logging and continuing on failure.
func SaveProgress(p *SavedProgress) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return
	}
	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}

// SaveLevelResult folds one finished attempt into the save file.
func SaveLevelResult(levelIndex, score int, victory bool) {
	progress := LoadProgress()
	if score > progress.BestScores[levelIndex] {
		progress.BestScores[levelIndex] = score
	}
	if victory && levelIndex+1 > progress.Unlocked {
		progress.Unlocked = levelIndex + 1
	}
	SaveProgress(progress)
}

// BestScoreFor returns the saved best score for a level, 0 when unset.
func BestScoreFor(levelIndex int) int {
	return LoadProgress().BestScores[levelIndex]
}
