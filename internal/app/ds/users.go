package ds

// Users представляет пользователя админки (водитель или модератор)
type Users struct {
	User_ID     uint   `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Login       string `gorm:"type:varchar(50) not null;unique" json:"login"`
	Password    string `gorm:"type:varchar(100) not null" json:"-"`
	IsModerator bool   `gorm:"type:boolean not null;default:false" json:"is_moderator"`
}
