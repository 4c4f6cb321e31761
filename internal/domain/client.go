package domain

// ExerciseLoad records the load used for an exercise on a given day.
type ExerciseLoad struct {
	Name string `json:"name"`
	Load string `json:"load"`
}

// ProgressLog is a dated snapshot of a client's body metrics and training
// volume. Date is "DD/MM" at runtime; seeded history may carry "DD/MM/YYYY".
type ProgressLog struct {
	Date              string         `json:"date"`
	Weight            float64        `json:"weight"`
	BodyFat           *float64       `json:"bodyFat,omitempty"`
	WorkoutsCompleted int            `json:"workoutsCompleted"`
	VolumeLoad        *float64       `json:"volumeLoad,omitempty"` // sets * reps * weight, arbitrary unit
	RPE               *int           `json:"rpe,omitempty"`        // 1-10
	ExerciseLoads     []ExerciseLoad `json:"exerciseLoads,omitempty"`
}

func (l ProgressLog) Clone() ProgressLog {
	c := l
	c.BodyFat = cloneFloat(l.BodyFat)
	c.VolumeLoad = cloneFloat(l.VolumeLoad)
	if l.RPE != nil {
		rpe := *l.RPE
		c.RPE = &rpe
	}
	if l.ExerciseLoads != nil {
		c.ExerciseLoads = make([]ExerciseLoad, len(l.ExerciseLoads))
		copy(c.ExerciseLoads, l.ExerciseLoads)
	}
	return c
}

// PaymentHistory is an immutable record of a billing event.
type PaymentHistory struct {
	ID     string        `json:"id"`
	Date   string        `json:"date"`
	Amount float64       `json:"amount"`
	Status PaymentStatus `json:"status"`
	Method string        `json:"method"`
}

// Client is the aggregate root for everything the trainer tracks about a person.
type Client struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Goal              string             `json:"goal"`
	Status            ClientStatus       `json:"status"`
	LastTraining      string             `json:"lastTraining"` // "DD/MM/YYYY" or "-"
	AssignedWorkouts  []Workout          `json:"assignedWorkouts"`
	AssignedExercises []AssignedExercise `json:"assignedExercises"`
	ProgressLogs      []ProgressLog      `json:"progressLogs"`

	// --- Anthropometric ---
	HeightCM *float64 `json:"height,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Gender   Gender   `json:"gender,omitempty"`

	// --- Billing ---
	PlanType        PlanType         `json:"planType"`
	MonthlyFee      float64          `json:"monthlyFee"`
	PaymentStatus   PaymentStatus    `json:"paymentStatus"`
	NextPaymentDate string           `json:"nextPaymentDate"` // "DD/MM/YYYY"
	PaymentMethod   string           `json:"paymentMethod,omitempty"`
	PaymentDay      int              `json:"paymentDay,omitempty"` // day of month, 0 when unset
	PaymentHistory  []PaymentHistory `json:"paymentHistory"`
}

// LatestLog returns the most recent progress log, the authoritative source of
// current body metrics.
func (c *Client) LatestLog() (ProgressLog, bool) {
	if len(c.ProgressLogs) == 0 {
		return ProgressLog{}, false
	}
	return c.ProgressLogs[len(c.ProgressLogs)-1], true
}

// HasWorkout reports whether a workout with id is assigned to the client.
func (c *Client) HasWorkout(id int64) bool {
	for _, w := range c.AssignedWorkouts {
		if w.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the client.
func (c Client) Clone() Client {
	out := c
	out.HeightCM = cloneFloat(c.HeightCM)
	if c.Age != nil {
		age := *c.Age
		out.Age = &age
	}
	if c.AssignedWorkouts != nil {
		out.AssignedWorkouts = make([]Workout, len(c.AssignedWorkouts))
		for i, w := range c.AssignedWorkouts {
			out.AssignedWorkouts[i] = w.Clone()
		}
	}
	if c.AssignedExercises != nil {
		out.AssignedExercises = make([]AssignedExercise, len(c.AssignedExercises))
		copy(out.AssignedExercises, c.AssignedExercises)
	}
	if c.ProgressLogs != nil {
		out.ProgressLogs = make([]ProgressLog, len(c.ProgressLogs))
		for i, l := range c.ProgressLogs {
			out.ProgressLogs[i] = l.Clone()
		}
	}
	if c.PaymentHistory != nil {
		out.PaymentHistory = make([]PaymentHistory, len(c.PaymentHistory))
		copy(out.PaymentHistory, c.PaymentHistory)
	}
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
