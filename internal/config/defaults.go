package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultMemoryYAML))
	copy(out, defaultMemoryYAML)
	return out
}

// DefaultMemoryConfig returns the default memory game configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Levels: LevelsConfig{
			Easy:   LevelConfig{Name: "Easy", Columns: 2, Seconds: 45},
			Medium: LevelConfig{Name: "Medium", Columns: 4, Seconds: 60},
			Hard:   LevelConfig{Name: "Hard", Columns: 6, Seconds: 90},
		},
		Rules: RulesConfig{
			RevealDelay:     time.Second,
			MatchReward:     5 * time.Second,
			MismatchPenalty: 2 * time.Second,
			PointsPerPair:   10,
		},
		Bonuses: BonusesConfig{
			ExtraTime: BonusConfig{
				Label:    "+15 sec",
				Initial:  InitialNotActive,
				Duration: 2 * time.Second,
				Grant:    15 * time.Second,
			},
			FreezeTime: BonusConfig{
				Label:    "Freeze time",
				Initial:  InitialNotUsed,
				Duration: 15 * time.Second,
			},
			RevealHint: BonusConfig{
				Label:    "Match hint",
				Initial:  InitialNotUsed,
				Duration: time.Second,
			},
		},
		Unlocks: []UnlockRule{
			{Streak: 2, Bonus: "extra_time"},
		},
		Layout: LayoutConfig{
			CardWidth:    8,
			CardHeight:   4,
			GapX:         1,
			GapY:         1,
			Top:          2,
			BonusRow:     17,
			ButtonWidth:  14,
			ButtonHeight: 3,
			ButtonGap:    2,
			MaxWidth:     80,
		},
	}
}
