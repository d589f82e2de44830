package user

import "strings"

// Game 是封闭的游戏枚举类型。
type Game string

const (
	GameFortnite   Game = "fortnite"
	GameCallOfDuty Game = "call of duty"
	GameDota       Game = "dota"
	GameValhalla   Game = "valhalla"
	GameAmongUs    Game = "among us"
)

// AllGames 按固定顺序列出全部合法游戏，用于校验消息的展示。
var AllGames = []Game{GameFortnite, GameCallOfDuty, GameDota, GameValhalla, GameAmongUs}

// Valid 判断游戏取值是否在封闭枚举内。
func (g Game) Valid() bool { return contains(AllGames, g) }

// Level 是封闭的水平枚举类型。
type Level string

const (
	LevelNoob       Level = "noob"
	LevelPro        Level = "pro"
	LevelInvincible Level = "invincible"
)

var AllLevels = []Level{LevelNoob, LevelPro, LevelInvincible}

func (l Level) Valid() bool { return contains(AllLevels, l) }

// Geography 是封闭的地区枚举类型。
type Geography string

const (
	GeographyEurope Geography = "Europe"
	GeographyAsia   Geography = "Asia"
	GeographyUSA    Geography = "USA"
)

var AllGeographies = []Geography{GeographyEurope, GeographyAsia, GeographyUSA}

func (g Geography) Valid() bool { return contains(AllGeographies, g) }

// Gender 是封闭的性别枚举类型。
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func contains[T ~string](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// enumList 把枚举集合渲染成 "[a, b, c]"，用于拼接校验错误消息。
func enumList[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// User 定义了用户在数据库中的持久化模型。
// 兴趣集合由用户单向独占持有，外键落在Interest.UserID上，
// 不维护从兴趣到用户的反向引用。
type User struct {
	ID        uint       `gorm:"primarykey" json:"userId"`
	Name      string     `gorm:"type:varchar(45);not null" json:"name"`
	Gender    Gender     `gorm:"type:varchar(10);not null" json:"gender"`
	Nickname  string     `gorm:"type:varchar(45);not null" json:"nickname"`
	Geography Geography  `gorm:"type:varchar(10);not null" json:"geography"`
	Interests []Interest `gorm:"foreignKey:UserID" json:"interestSet"`
}

// Interest 定义了兴趣在数据库中的持久化模型。
// 不变量：同一用户的兴趣之间game不允许重复，由服务层在写入前保证。
type Interest struct {
	ID     uint  `gorm:"primarykey" json:"interestId"`
	Game   Game  `gorm:"type:varchar(20);not null" json:"game"`
	Level  Level `gorm:"type:varchar(10);not null" json:"level"`
	Credit int   `gorm:"not null;default:0" json:"credit"`
	UserID uint  `gorm:"index;not null" json:"-"`
}
