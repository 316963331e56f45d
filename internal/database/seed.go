package database

import (
	"log/slog"

	"github.com/careloop/selfcare-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type templateSeed struct {
	Name        string
	Description string
	MoodTags    []string
	GoalTags    []string
	Steps       []string
	Category    string
	Priority    string
	Duration    int
}

var templateSeeds = []templateSeed{
	{
		Name:        "Morning Reset",
		Description: "A short grounding sequence to start the day with a clear head.",
		MoodTags:    []string{"stressed", "anxious", "overwhelmed"},
		GoalTags:    []string{"calm", "focus"},
		Steps: []string{
			"Sit upright and take 10 slow breaths",
			"Write down the one thing that matters most today",
			"Drink a full glass of water before checking your phone",
		},
		Category: models.CategoryMindfulness,
		Priority: models.PriorityMedium,
		Duration: 10,
	},
	{
		Name:        "Energy Boost",
		Description: "Light movement to shake off sluggishness without breaking a sweat.",
		MoodTags:    []string{"tired", "sluggish", "low energy"},
		GoalTags:    []string{"energy", "movement"},
		Steps: []string{
			"Stand up and stretch your arms overhead for 30 seconds",
			"Do 10 slow squats or a lap around the room",
			"Step outside for two minutes of fresh air",
			"Have a glass of water or a light snack",
		},
		Category: models.CategoryPhysical,
		Priority: models.PriorityMedium,
		Duration: 15,
	},
	{
		Name:        "Wind Down",
		Description: "An evening routine that eases the transition into rest.",
		MoodTags:    []string{"restless", "anxious", "overwhelmed"},
		GoalTags:    []string{"relax", "sleep", "peaceful"},
		Steps: []string{
			"Dim the lights and put your phone out of reach",
			"Write down anything still on your mind",
			"Do a 5-minute body scan from head to toe",
		},
		Category: models.CategoryRelaxation,
		Priority: models.PriorityLow,
		Duration: 20,
	},
	{
		Name:        "Deep Work Warmup",
		Description: "Clears friction before a focused work block.",
		MoodTags:    []string{"distracted", "motivated"},
		GoalTags:    []string{"focus", "work", "productive"},
		Steps: []string{
			"Close every tab and app you don't need",
			"Write the single outcome this session should produce",
			"Set a 25-minute timer and silence notifications",
		},
		Category: models.CategoryProductivity,
		Priority: models.PriorityMedium,
		Duration: 5,
	},
	{
		Name:        "Reconnect",
		Description: "Small social steps for days that feel isolating.",
		MoodTags:    []string{"lonely", "sad", "down"},
		GoalTags:    []string{"connect", "friends", "family"},
		Steps: []string{
			"Send a message to someone you haven't talked to this week",
			"Share one genuine thing about your day",
			"Make one small plan to see someone in person",
		},
		Category: models.CategorySocial,
		Priority: models.PriorityMedium,
		Duration: 15,
	},
}

// SeedTemplates inserts the built-in routine templates once.
func SeedTemplates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.RoutineTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range templateSeeds {
		desc := seed.Description
		tpl := models.RoutineTemplate{
			Name:              seed.Name,
			Description:       &desc,
			MoodTags:          datatypes.NewJSONSlice(seed.MoodTags),
			GoalTags:          datatypes.NewJSONSlice(seed.GoalTags),
			Steps:             datatypes.NewJSONSlice(seed.Steps),
			Category:          seed.Category,
			Priority:          seed.Priority,
			EstimatedDuration: seed.Duration,
		}
		if err := db.Create(&tpl).Error; err != nil {
			return err
		}
	}

	slog.Info("routine templates seeded", "count", len(templateSeeds))
	return nil
}
