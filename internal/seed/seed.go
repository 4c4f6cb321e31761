// Package seed carries the compiled-in fixtures the store starts from: the
// exercise catalog, the workout library and the initial client roster.
package seed

import (
	_ "embed"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"alcyxob/trainer-backoffice/internal/domain"
)

var (
	//go:embed exercises.toml
	exercisesTOML []byte
	//go:embed workouts.toml
	workoutsTOML []byte
	//go:embed clients.toml
	clientsTOML []byte
)

// Data is the decoded fixture set.
type Data struct {
	Exercises []domain.Exercise
	Workouts  []domain.Workout
	Clients   []domain.Client
}

type exerciseFileTOML struct {
	Exercises []exerciseTOML `toml:"exercise"`
}

type exerciseTOML struct {
	ID           int64  `toml:"id"`
	Name         string `toml:"name"`
	MuscleGroup  string `toml:"muscle_group"`
	Instructions string `toml:"instructions"`
	Image        string `toml:"image"`
}

type workoutFileTOML struct {
	Workouts []workoutTOML `toml:"workout"`
}

type workoutTOML struct {
	ID        int64            `toml:"id"`
	Title     string           `toml:"title"`
	Exercises []exerciseSetTOML `toml:"exercise"`
}

type exerciseSetTOML struct {
	Name string      `toml:"name"`
	Sets interface{} `toml:"sets"` // integer or a token such as "Falha"
	Reps string      `toml:"reps"`
	Load string      `toml:"load"`
	Obs  string      `toml:"obs"`
}

type clientFileTOML struct {
	Clients []clientTOML `toml:"client"`
}

type clientTOML struct {
	ID              int64                `toml:"id"`
	Name            string               `toml:"name"`
	Goal            string               `toml:"goal"`
	Status          domain.ClientStatus  `toml:"status"`
	LastTraining    string               `toml:"last_training"`
	PlanType        domain.PlanType      `toml:"plan_type"`
	MonthlyFee      float64              `toml:"monthly_fee"`
	PaymentStatus   domain.PaymentStatus `toml:"payment_status"`
	NextPaymentDate string               `toml:"next_payment_date"`
	PaymentMethod   string               `toml:"payment_method"`
	PaymentDay      int                  `toml:"payment_day"`
	ProgressLogs    []progressLogTOML    `toml:"progress_log"`
}

type progressLogTOML struct {
	Date              string   `toml:"date"`
	Weight            float64  `toml:"weight"`
	BodyFat           *float64 `toml:"body_fat"`
	WorkoutsCompleted int      `toml:"workouts_completed"`
	VolumeLoad        *float64 `toml:"volume_load"`
}

// Load decodes the embedded fixtures.
func Load() (*Data, error) {
	return Parse(exercisesTOML, workoutsTOML, clientsTOML)
}

// Parse decodes fixture documents. It is exported so tests and tooling can
// feed alternative rosters through the same validation.
func Parse(exercisesDoc, workoutsDoc, clientsDoc []byte) (*Data, error) {
	var exFile exerciseFileTOML
	if err := toml.Unmarshal(exercisesDoc, &exFile); err != nil {
		return nil, fmt.Errorf("invalid exercise fixtures: %w", err)
	}
	var wkFile workoutFileTOML
	if err := toml.Unmarshal(workoutsDoc, &wkFile); err != nil {
		return nil, fmt.Errorf("invalid workout fixtures: %w", err)
	}
	var clFile clientFileTOML
	if err := toml.Unmarshal(clientsDoc, &clFile); err != nil {
		return nil, fmt.Errorf("invalid client fixtures: %w", err)
	}

	data := &Data{}
	for _, e := range exFile.Exercises {
		if e.ID == 0 || e.Name == "" {
			return nil, fmt.Errorf("exercise fixture %q: id and name are required", e.Name)
		}
		data.Exercises = append(data.Exercises, domain.Exercise{
			ID:           e.ID,
			Name:         e.Name,
			MuscleGroup:  e.MuscleGroup,
			Instructions: e.Instructions,
			ImageRef:     e.Image,
		})
	}

	for _, w := range wkFile.Workouts {
		if w.ID == 0 || w.Title == "" {
			return nil, fmt.Errorf("workout fixture %d: id and title are required", w.ID)
		}
		workout := domain.Workout{ID: w.ID, Title: w.Title}
		for _, s := range w.Exercises {
			sets, err := setCount(s.Sets)
			if err != nil {
				return nil, fmt.Errorf("workout fixture %d, exercise %q: %w", w.ID, s.Name, err)
			}
			workout.Exercises = append(workout.Exercises, domain.ExerciseSet{
				Name: s.Name,
				Sets: sets,
				Reps: s.Reps,
				Load: s.Load,
				Obs:  s.Obs,
			})
		}
		data.Workouts = append(data.Workouts, workout)
	}

	for _, c := range clFile.Clients {
		if c.ID == 0 || c.Name == "" {
			return nil, fmt.Errorf("client fixture %d: id and name are required", c.ID)
		}
		client := domain.Client{
			ID:                c.ID,
			Name:              c.Name,
			Goal:              c.Goal,
			Status:            c.Status,
			LastTraining:      c.LastTraining,
			AssignedWorkouts:  []domain.Workout{},
			AssignedExercises: []domain.AssignedExercise{},
			ProgressLogs:      []domain.ProgressLog{},
			PlanType:          c.PlanType,
			MonthlyFee:        c.MonthlyFee,
			PaymentStatus:     c.PaymentStatus,
			NextPaymentDate:   c.NextPaymentDate,
			PaymentMethod:     c.PaymentMethod,
			PaymentDay:        c.PaymentDay,
			PaymentHistory:    []domain.PaymentHistory{},
		}
		for _, l := range c.ProgressLogs {
			client.ProgressLogs = append(client.ProgressLogs, domain.ProgressLog{
				Date:              l.Date,
				Weight:            l.Weight,
				BodyFat:           l.BodyFat,
				WorkoutsCompleted: l.WorkoutsCompleted,
				VolumeLoad:        l.VolumeLoad,
			})
		}
		data.Clients = append(data.Clients, client)
	}

	return data, nil
}

func setCount(v interface{}) (domain.SetCount, error) {
	switch s := v.(type) {
	case int64:
		return domain.Sets(int(s)), nil
	case float64:
		return domain.SetCount(strconv.FormatFloat(s, 'f', -1, 64)), nil
	case string:
		if s == "" {
			return "", fmt.Errorf("empty set count")
		}
		return domain.SetCount(s), nil
	case nil:
		return "", fmt.Errorf("missing set count")
	}
	return "", fmt.Errorf("unsupported set count %v", v)
}
