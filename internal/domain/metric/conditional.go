package metric

import "time"

// Conditional — запись кондиционных (физиологических) измерений футболиста:
// текущие показатели, целевые значения и параметры тренировочного процесса.
type Conditional struct {
	ID                    int64     `gorm:"column:id;primaryKey" json:"id"`
	FootballerID          int64     `gorm:"column:footballer_id;not null" json:"footballer_id"`
	VO2Max                *float64  `gorm:"column:vo2_max" json:"vo2_max"`
	LactateLevels         *float64  `gorm:"column:lactate_levels" json:"lactate_levels"`
	TrainingIntensity     *float64  `gorm:"column:training_intensity" json:"training_intensity"`
	RecoveryTimes         *float64  `gorm:"column:recovery_times" json:"recovery_times"`
	CurrentVO2Max         *float64  `gorm:"column:current_vo2_max" json:"current_vo2_max"`
	CurrentLactateLevels  *float64  `gorm:"column:current_lactate_levels" json:"current_lactate_levels"`
	CurrentMuscleStrength *float64  `gorm:"column:current_muscle_strength" json:"current_muscle_strength"`
	TargetVO2Max          *float64  `gorm:"column:target_vo2_max" json:"target_vo2_max"`
	TargetLactateLevel    *float64  `gorm:"column:target_lactate_level" json:"target_lactate_level"`
	TargetMuscleStrength  *float64  `gorm:"column:target_muscle_strength" json:"target_muscle_strength"`
	CreatedAt             time.Time `gorm:"column:created_at;not null" json:"created_at"`
	Timestamp             time.Time `gorm:"column:timestamp;not null" json:"updated_at"`
}

func (Conditional) TableName() string {
	return "conditional"
}

func (c Conditional) EntryID() int64 {
	return c.ID
}

func (c Conditional) EntryFootballer() int64 {
	return c.FootballerID
}

func (c Conditional) EntryDate() time.Time {
	return c.CreatedAt
}

func (c Conditional) Value(name string) (*float64, bool) {
	switch name {
	case "vo2_max":
		return c.VO2Max, true
	case "lactate_levels":
		return c.LactateLevels, true
	case "training_intensity":
		return c.TrainingIntensity, true
	case "recovery_times":
		return c.RecoveryTimes, true
	case "current_vo2_max":
		return c.CurrentVO2Max, true
	case "current_lactate_levels":
		return c.CurrentLactateLevels, true
	case "current_muscle_strength":
		return c.CurrentMuscleStrength, true
	case "target_vo2_max":
		return c.TargetVO2Max, true
	case "target_lactate_level":
		return c.TargetLactateLevel, true
	case "target_muscle_strength":
		return c.TargetMuscleStrength, true
	}
	return nil, false
}

// ConditionalPatch — частичное обновление кондиционной записи.
type ConditionalPatch struct {
	VO2Max                *float64 `json:"vo2_max"`
	LactateLevels         *float64 `json:"lactate_levels"`
	TrainingIntensity     *float64 `json:"training_intensity"`
	RecoveryTimes         *float64 `json:"recovery_times"`
	CurrentVO2Max         *float64 `json:"current_vo2_max"`
	CurrentLactateLevels  *float64 `json:"current_lactate_levels"`
	CurrentMuscleStrength *float64 `json:"current_muscle_strength"`
	TargetVO2Max          *float64 `json:"target_vo2_max"`
	TargetLactateLevel    *float64 `json:"target_lactate_level"`
	TargetMuscleStrength  *float64 `json:"target_muscle_strength"`
}

func (p ConditionalPatch) Changes() map[string]interface{} {
	m := map[string]interface{}{}
	if p.VO2Max != nil {
		m["vo2_max"] = *p.VO2Max
	}
	if p.LactateLevels != nil {
		m["lactate_levels"] = *p.LactateLevels
	}
	if p.TrainingIntensity != nil {
		m["training_intensity"] = *p.TrainingIntensity
	}
	if p.RecoveryTimes != nil {
		m["recovery_times"] = *p.RecoveryTimes
	}
	if p.CurrentVO2Max != nil {
		m["current_vo2_max"] = *p.CurrentVO2Max
	}
	if p.CurrentLactateLevels != nil {
		m["current_lactate_levels"] = *p.CurrentLactateLevels
	}
	if p.CurrentMuscleStrength != nil {
		m["current_muscle_strength"] = *p.CurrentMuscleStrength
	}
	if p.TargetVO2Max != nil {
		m["target_vo2_max"] = *p.TargetVO2Max
	}
	if p.TargetLactateLevel != nil {
		m["target_lactate_level"] = *p.TargetLactateLevel
	}
	if p.TargetMuscleStrength != nil {
		m["target_muscle_strength"] = *p.TargetMuscleStrength
	}
	return m
}

func (p ConditionalPatch) NewEntry(footballerID int64, createdAt time.Time) Conditional {
	return Conditional{
		FootballerID:          footballerID,
		VO2Max:                p.VO2Max,
		LactateLevels:         p.LactateLevels,
		TrainingIntensity:     p.TrainingIntensity,
		RecoveryTimes:         p.RecoveryTimes,
		CurrentVO2Max:         p.CurrentVO2Max,
		CurrentLactateLevels:  p.CurrentLactateLevels,
		CurrentMuscleStrength: p.CurrentMuscleStrength,
		TargetVO2Max:          p.TargetVO2Max,
		TargetLactateLevel:    p.TargetLactateLevel,
		TargetMuscleStrength:  p.TargetMuscleStrength,
		CreatedAt:             createdAt,
		Timestamp:             time.Now().UTC(),
	}
}
