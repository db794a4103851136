package roster

import "time"

// Пакет roster описывает справочные сущности: лиги, команды и футболистов.
// Это неизменяемые (в рамках API) данные, поэтому — в отличие от пользователей —
// они не маппятся в отдельные ORM-модели: gorm-теги живут прямо на доменных структурах.

// League представляет футбольную лигу.
type League struct {
	ID                 string `gorm:"column:league_id;type:varchar(10);primaryKey" json:"league_id"`
	Name               string `gorm:"column:league_name;type:varchar(100);not null" json:"league_name"`
	LogoPath           string `gorm:"column:league_logo_path;type:varchar(250)" json:"league_logo_path"`
	Country            string `gorm:"column:country;type:varchar(50)" json:"country,omitempty"`
	NumTeams           string `gorm:"column:num_teams;type:varchar(25)" json:"num_teams,omitempty"`
	Players            *int   `gorm:"column:players" json:"players,omitempty"`
	ForeignPlayers     *int   `gorm:"column:foreign_players" json:"foreign_players,omitempty"`
	AvgMarketingVal    string `gorm:"column:avg_marketing_val;type:varchar(20)" json:"avg_marketing_val,omitempty"`
	AvgAge             *int   `gorm:"column:avg_age" json:"avg_age,omitempty"`
	MostValuablePlayer string `gorm:"column:most_valuable_player;type:varchar(50)" json:"most_valuable_player,omitempty"`
	TotalMarketValue   string `gorm:"column:total_market_value;type:varchar(20)" json:"total_market_value,omitempty"`
}

func (League) TableName() string {
	return "leagues"
}

// Team представляет футбольную команду, принадлежащую ровно одной лиге.
type Team struct {
	ID              int64  `gorm:"column:team_id;primaryKey" json:"team_id"`
	LeagueID        string `gorm:"column:league_id;type:varchar(10);not null" json:"league_id"`
	LeagueName      string `gorm:"column:league_name;type:varchar(100);not null" json:"league_name"`
	Name            string `gorm:"column:team_name;type:varchar(100);not null" json:"team_name"`
	InfoLink        string `gorm:"column:team_info_link;type:varchar(250)" json:"team_info_link,omitempty"`
	ImgPath         string `gorm:"column:img_path;type:varchar(250)" json:"img_path,omitempty"`
	NumPlayers      *int   `gorm:"column:num_players" json:"num_players,omitempty"`
	AvgAge          *int   `gorm:"column:avg_age" json:"avg_age,omitempty"`
	NumLegionnaires *int   `gorm:"column:num_legionnaires" json:"num_legionnaires,omitempty"`
	AvgMarketingVal string `gorm:"column:avg_marketing_val;type:varchar(20)" json:"avg_marketing_val,omitempty"`
	TotalSquadValue string `gorm:"column:total_squad_value;type:varchar(20)" json:"total_squad_value,omitempty"`
}

func (Team) TableName() string {
	return "football_teams"
}

// Footballer представляет футболиста, принадлежащего ровно одной команде
// (и транзитивно одной лиге).
type Footballer struct {
	ID                 int64      `gorm:"column:footballer_id;primaryKey" json:"footballer_id"`
	LeagueID           string     `gorm:"column:league_id;type:varchar(10);not null" json:"league_id"`
	TeamID             int64      `gorm:"column:team_id;not null" json:"team_id"`
	Name               string     `gorm:"column:footballer_name;not null" json:"footballer_name"`
	Club               string     `gorm:"column:club;not null" json:"club"`
	LeagueName         string     `gorm:"column:league_name" json:"league_name,omitempty"`
	TrikotNum          string     `gorm:"column:trikot_num;type:varchar(5)" json:"trikot_num,omitempty"`
	Position           string     `gorm:"column:position;type:varchar(50)" json:"position,omitempty"`
	Birthday           *time.Time `gorm:"column:birthday;type:date" json:"birthday,omitempty"`
	Age                *int       `gorm:"column:age" json:"age,omitempty"`
	NationalityImgPath string     `gorm:"column:nationality_img_path;type:varchar(250)" json:"nationality_img_path,omitempty"`
	Height             string     `gorm:"column:height;type:varchar(10)" json:"height,omitempty"`
	Feet               string     `gorm:"column:feet;type:varchar(10)" json:"feet,omitempty"`
	Contract           string     `gorm:"column:contract;type:varchar(50)" json:"contract,omitempty"`
	MarketValue        string     `gorm:"column:market_value;type:varchar(20)" json:"market_value,omitempty"`
	ImgPath            string     `gorm:"column:footballer_img_path;type:varchar(250)" json:"footballer_img_path,omitempty"`
}

func (Footballer) TableName() string {
	return "footballers"
}
