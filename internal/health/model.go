package health

import "time"

const (
	DefaultWaterGoal = 3.5
	DefaultStepsGoal = 10000
)

// Medicine is a recurring dose schedule. Taken and ReminderSent always have
// one entry per time of day.
type Medicine struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name" bson:"name"`
	Dosage       string   `json:"dosage" bson:"dosage"`
	Times        []string `json:"times" bson:"times"`
	Taken        []bool   `json:"taken" bson:"taken"`
	ReminderSent []bool   `json:"reminderSent" bson:"reminderSent"`
}

// Record is one resident's health log for a day.
type Record struct {
	ID             string     `json:"id" bson:"_id"`
	UserID         string     `json:"userId" bson:"userId"`
	Day            string     `json:"day" bson:"day"`
	Date           time.Time  `json:"date" bson:"date"`
	WaterIntake    float64    `json:"waterIntake" bson:"waterIntake"`
	WaterGoal      float64    `json:"waterGoal" bson:"waterGoal"`
	Steps          int        `json:"steps" bson:"steps"`
	StepsGoal      int        `json:"stepsGoal" bson:"stepsGoal"`
	HeartRate      int        `json:"heartRate" bson:"heartRate"`
	OxygenLevel    int        `json:"oxygenLevel" bson:"oxygenLevel"`
	CaloriesBurned int        `json:"caloriesBurned" bson:"caloriesBurned"`
	SleepHours     float64    `json:"sleepHours" bson:"sleepHours"`
	ScreenTime     float64    `json:"screenTime" bson:"screenTime"`
	Medicines      []Medicine `json:"medicines" bson:"medicines"`
}

// MedicineInput describes a medicine as submitted by a client.
type MedicineInput struct {
	ID     string   `json:"id"`
	Name   string   `json:"name" binding:"required"`
	Dosage string   `json:"dosage"`
	Times  []string `json:"times" binding:"dive,clock"`
	Taken  []bool   `json:"taken"`
}

// Patch lists the health fields a client may set. Nil fields stay unchanged;
// Medicines, when present, replaces the whole list.
type Patch struct {
	WaterIntake    *float64         `json:"waterIntake" binding:"omitempty,min=0"`
	WaterGoal      *float64         `json:"waterGoal" binding:"omitempty,gt=0"`
	Steps          *int             `json:"steps" binding:"omitempty,min=0"`
	StepsGoal      *int             `json:"stepsGoal" binding:"omitempty,gt=0"`
	HeartRate      *int             `json:"heartRate" binding:"omitempty,min=0,max=300"`
	OxygenLevel    *int             `json:"oxygenLevel" binding:"omitempty,min=0,max=100"`
	CaloriesBurned *int             `json:"caloriesBurned" binding:"omitempty,min=0"`
	SleepHours     *float64         `json:"sleepHours" binding:"omitempty,min=0,max=24"`
	ScreenTime     *float64         `json:"screenTime" binding:"omitempty,min=0,max=24"`
	Medicines      *[]MedicineInput `json:"medicines" binding:"omitempty,dive"`

	medicines []Medicine
}

// NewRecord creates a record for Date (YYYY-MM-DD, today when empty).
type NewRecord struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Patch
}

// Dose is a medicine time found by the reminder scan.
type Dose struct {
	RecordID   string
	UserID     string
	Day        string
	MedicineID string
	Name       string
	Dosage     string
	Time       string
	Index      int
}

func (p Patch) apply(r *Record) {
	if p.WaterIntake != nil {
		r.WaterIntake = *p.WaterIntake
	}
	if p.WaterGoal != nil {
		r.WaterGoal = *p.WaterGoal
	}
	if p.Steps != nil {
		r.Steps = *p.Steps
	}
	if p.StepsGoal != nil {
		r.StepsGoal = *p.StepsGoal
	}
	if p.HeartRate != nil {
		r.HeartRate = *p.HeartRate
	}
	if p.OxygenLevel != nil {
		r.OxygenLevel = *p.OxygenLevel
	}
	if p.CaloriesBurned != nil {
		r.CaloriesBurned = *p.CaloriesBurned
	}
	if p.SleepHours != nil {
		r.SleepHours = *p.SleepHours
	}
	if p.ScreenTime != nil {
		r.ScreenTime = *p.ScreenTime
	}
	if p.Medicines != nil {
		r.Medicines = p.medicines
	}
}

// fields returns the $set document matching apply.
func (p Patch) fields() map[string]any {
	set := map[string]any{}
	put := func(k string, ok bool, v any) {
		if ok {
			set[k] = v
		}
	}
	put("waterIntake", p.WaterIntake != nil, p.WaterIntake)
	put("waterGoal", p.WaterGoal != nil, p.WaterGoal)
	put("steps", p.Steps != nil, p.Steps)
	put("stepsGoal", p.StepsGoal != nil, p.StepsGoal)
	put("heartRate", p.HeartRate != nil, p.HeartRate)
	put("oxygenLevel", p.OxygenLevel != nil, p.OxygenLevel)
	put("caloriesBurned", p.CaloriesBurned != nil, p.CaloriesBurned)
	put("sleepHours", p.SleepHours != nil, p.SleepHours)
	put("screenTime", p.ScreenTime != nil, p.ScreenTime)
	put("medicines", p.Medicines != nil, p.medicines)
	return set
}
