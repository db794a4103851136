package metric

import "time"

// Endurance — запись измерений выносливости футболиста за тренировочную сессию.
type Endurance struct {
	ID                int64     `gorm:"column:id;primaryKey" json:"id"`
	FootballerID      int64     `gorm:"column:footballer_id;not null" json:"footballer_id"`
	RunningDistance   *float64  `gorm:"column:running_distance" json:"running_distance"`
	AverageSpeed      *float64  `gorm:"column:average_speed" json:"average_speed"`
	HeartRate         *int64    `gorm:"column:heart_rate" json:"heart_rate"`
	PeakHeartRate     *int64    `gorm:"column:peak_heart_rate" json:"peak_heart_rate"`
	TrainingIntensity *float64  `gorm:"column:training_intensity" json:"training_intensity"`
	Session           *int64    `gorm:"column:session" json:"session"`
	CreatedAt         time.Time `gorm:"column:created_at;not null" json:"created_at"`
	Timestamp         time.Time `gorm:"column:timestamp;not null" json:"updated_at"`
}

func (Endurance) TableName() string {
	return "endurance"
}

func (e Endurance) EntryID() int64 {
	return e.ID
}

func (e Endurance) EntryFootballer() int64 {
	return e.FootballerID
}

func (e Endurance) EntryDate() time.Time {
	return e.CreatedAt
}

func (e Endurance) Value(name string) (*float64, bool) {
	switch name {
	case "running_distance":
		return e.RunningDistance, true
	case "average_speed":
		return e.AverageSpeed, true
	case "heart_rate":
		return intValue(e.HeartRate), true
	case "peak_heart_rate":
		return intValue(e.PeakHeartRate), true
	case "training_intensity":
		return e.TrainingIntensity, true
	case "session":
		return intValue(e.Session), true
	}
	return nil, false
}

// EndurancePatch — частичное обновление записи выносливости.
type EndurancePatch struct {
	RunningDistance   *float64 `json:"running_distance"`
	AverageSpeed      *float64 `json:"average_speed"`
	HeartRate         *int64   `json:"heart_rate"`
	PeakHeartRate     *int64   `json:"peak_heart_rate"`
	TrainingIntensity *float64 `json:"training_intensity"`
	Session           *int64   `json:"session"`
}

func (p EndurancePatch) Changes() map[string]interface{} {
	m := map[string]interface{}{}
	if p.RunningDistance != nil {
		m["running_distance"] = *p.RunningDistance
	}
	if p.AverageSpeed != nil {
		m["average_speed"] = *p.AverageSpeed
	}
	if p.HeartRate != nil {
		m["heart_rate"] = *p.HeartRate
	}
	if p.PeakHeartRate != nil {
		m["peak_heart_rate"] = *p.PeakHeartRate
	}
	if p.TrainingIntensity != nil {
		m["training_intensity"] = *p.TrainingIntensity
	}
	if p.Session != nil {
		m["session"] = *p.Session
	}
	return m
}

func (p EndurancePatch) NewEntry(footballerID int64, createdAt time.Time) Endurance {
	return Endurance{
		FootballerID:      footballerID,
		RunningDistance:   p.RunningDistance,
		AverageSpeed:      p.AverageSpeed,
		HeartRate:         p.HeartRate,
		PeakHeartRate:     p.PeakHeartRate,
		TrainingIntensity: p.TrainingIntensity,
		Session:           p.Session,
		CreatedAt:         createdAt,
		Timestamp:         time.Now().UTC(),
	}
}
