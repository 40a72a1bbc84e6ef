package task

import "time"

// DemoTasks returns a seeded starter set for an empty game, one per
// category.
func DemoTasks(now time.Time, experiencePerPoint int) []Task {
	inputs := []Input{
		{Title: "Learn 20 English words", Category: CategoryEnglish, Difficulty: 6, Unwillingness: 4},
		{Title: "Finish the project report", Category: CategoryWork, Difficulty: 8, Unwillingness: 7},
		{Title: "Read a math chapter", Category: CategoryUniversity, Difficulty: 5, Unwillingness: 8},
		{Title: "Clean the apartment", Category: CategoryHome, Difficulty: 4, Unwillingness: 9},
		{Title: "Workout at the gym", Category: CategoryFitness, Difficulty: 7, Unwillingness: 6},
		{Title: "Meditate for 15 minutes", Category: CategoryPersonal, Difficulty: 3, Unwillingness: 5},
	}

	out := make([]Task, 0, len(inputs))
	for _, in := range inputs {
		t, err := New(in, now, experiencePerPoint)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}
