package metric

import "time"

// Physical — запись измерений физического развития футболиста.
// Все измерения опциональны: незаданное поле хранится как NULL, а не как ноль.
type Physical struct {
	ID                   int64     `gorm:"column:id;primaryKey" json:"id"`
	FootballerID         int64     `gorm:"column:footballer_id;not null" json:"footballer_id"`
	MuscleMass           *float64  `gorm:"column:muscle_mass" json:"muscle_mass"`
	MuscleStrength       *float64  `gorm:"column:muscle_strength" json:"muscle_strength"`
	MuscleEndurance      *float64  `gorm:"column:muscle_endurance" json:"muscle_endurance"`
	Flexibility          *float64  `gorm:"column:flexibility" json:"flexibility"`
	Weight               *float64  `gorm:"column:weight" json:"weight"`
	BodyFatPercentage    *float64  `gorm:"column:body_fat_percentage" json:"body_fat_percentage"`
	Heights              *string   `gorm:"column:heights;type:varchar(10)" json:"heights"`
	ThighCircumference   *float64  `gorm:"column:thigh_circumference" json:"thigh_circumference"`
	ShoulderCircumference *float64 `gorm:"column:shoulder_circumference" json:"shoulder_circumference"`
	ArmCircumference     *float64  `gorm:"column:arm_circumference" json:"arm_circumference"`
	ChestCircumference   *float64  `gorm:"column:chest_circumference" json:"chest_circumference"`
	BackCircumference    *float64  `gorm:"column:back_circumference" json:"back_circumference"`
	WaistCircumference   *float64  `gorm:"column:waist_circumference" json:"waist_circumference"`
	LegCircumference     *float64  `gorm:"column:leg_circumference" json:"leg_circumference"`
	CalfCircumference    *float64  `gorm:"column:calf_circumference" json:"calf_circumference"`
	CreatedAt            time.Time `gorm:"column:created_at;not null" json:"created_at"`
	Timestamp            time.Time `gorm:"column:timestamp;not null" json:"updated_at"`
}

func (Physical) TableName() string {
	return "physical"
}

func (p Physical) EntryID() int64 {
	return p.ID
}

func (p Physical) EntryFootballer() int64 {
	return p.FootballerID
}

func (p Physical) EntryDate() time.Time {
	return p.CreatedAt
}

// Value возвращает значение числовой метрики по её имени.
// Поле heights строковое и метрикой не является.
func (p Physical) Value(name string) (*float64, bool) {
	switch name {
	case "muscle_mass":
		return p.MuscleMass, true
	case "muscle_strength":
		return p.MuscleStrength, true
	case "muscle_endurance":
		return p.MuscleEndurance, true
	case "flexibility":
		return p.Flexibility, true
	case "weight":
		return p.Weight, true
	case "body_fat_percentage":
		return p.BodyFatPercentage, true
	case "thigh_circumference":
		return p.ThighCircumference, true
	case "shoulder_circumference":
		return p.ShoulderCircumference, true
	case "arm_circumference":
		return p.ArmCircumference, true
	case "chest_circumference":
		return p.ChestCircumference, true
	case "back_circumference":
		return p.BackCircumference, true
	case "waist_circumference":
		return p.WaistCircumference, true
	case "leg_circumference":
		return p.LegCircumference, true
	case "calf_circumference":
		return p.CalfCircumference, true
	}
	return nil, false
}

// PhysicalPatch — частичное обновление записи физического развития.
type PhysicalPatch struct {
	MuscleMass            *float64 `json:"muscle_mass"`
	MuscleStrength        *float64 `json:"muscle_strength"`
	MuscleEndurance       *float64 `json:"muscle_endurance"`
	Flexibility           *float64 `json:"flexibility"`
	Weight                *float64 `json:"weight"`
	BodyFatPercentage     *float64 `json:"body_fat_percentage"`
	Heights               *string  `json:"heights"`
	ThighCircumference    *float64 `json:"thigh_circumference"`
	ShoulderCircumference *float64 `json:"shoulder_circumference"`
	ArmCircumference      *float64 `json:"arm_circumference"`
	ChestCircumference    *float64 `json:"chest_circumference"`
	BackCircumference     *float64 `json:"back_circumference"`
	WaistCircumference    *float64 `json:"waist_circumference"`
	LegCircumference      *float64 `json:"leg_circumference"`
	CalfCircumference     *float64 `json:"calf_circumference"`
}

// Changes возвращает карту колонка → значение только для заданных полей.
func (p PhysicalPatch) Changes() map[string]interface{} {
	m := map[string]interface{}{}
	if p.MuscleMass != nil {
		m["muscle_mass"] = *p.MuscleMass
	}
	if p.MuscleStrength != nil {
		m["muscle_strength"] = *p.MuscleStrength
	}
	if p.MuscleEndurance != nil {
		m["muscle_endurance"] = *p.MuscleEndurance
	}
	if p.Flexibility != nil {
		m["flexibility"] = *p.Flexibility
	}
	if p.Weight != nil {
		m["weight"] = *p.Weight
	}
	if p.BodyFatPercentage != nil {
		m["body_fat_percentage"] = *p.BodyFatPercentage
	}
	if p.Heights != nil {
		m["heights"] = *p.Heights
	}
	if p.ThighCircumference != nil {
		m["thigh_circumference"] = *p.ThighCircumference
	}
	if p.ShoulderCircumference != nil {
		m["shoulder_circumference"] = *p.ShoulderCircumference
	}
	if p.ArmCircumference != nil {
		m["arm_circumference"] = *p.ArmCircumference
	}
	if p.ChestCircumference != nil {
		m["chest_circumference"] = *p.ChestCircumference
	}
	if p.BackCircumference != nil {
		m["back_circumference"] = *p.BackCircumference
	}
	if p.WaistCircumference != nil {
		m["waist_circumference"] = *p.WaistCircumference
	}
	if p.LegCircumference != nil {
		m["leg_circumference"] = *p.LegCircumference
	}
	if p.CalfCircumference != nil {
		m["calf_circumference"] = *p.CalfCircumference
	}
	return m
}

// NewEntry собирает новую запись из заданных полей патча.
func (p PhysicalPatch) NewEntry(footballerID int64, createdAt time.Time) Physical {
	return Physical{
		FootballerID:          footballerID,
		MuscleMass:            p.MuscleMass,
		MuscleStrength:        p.MuscleStrength,
		MuscleEndurance:       p.MuscleEndurance,
		Flexibility:           p.Flexibility,
		Weight:                p.Weight,
		BodyFatPercentage:     p.BodyFatPercentage,
		Heights:               p.Heights,
		ThighCircumference:    p.ThighCircumference,
		ShoulderCircumference: p.ShoulderCircumference,
		ArmCircumference:      p.ArmCircumference,
		ChestCircumference:    p.ChestCircumference,
		BackCircumference:     p.BackCircumference,
		WaistCircumference:    p.WaistCircumference,
		LegCircumference:      p.LegCircumference,
		CalfCircumference:     p.CalfCircumference,
		CreatedAt:             createdAt,
		Timestamp:             time.Now().UTC(),
	}
}
