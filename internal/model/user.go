package model

// ── 系统角色（授权级别）──

const (
	SystemRoleUser       = "USER"
	SystemRoleAdmin      = "ADMIN"
	SystemRoleSuperAdmin = "SUPER_ADMIN"
)

// ── 活跃角色（前端模式）──

const (
	CurrentRoleAttendee  = "ATTENDEE"
	CurrentRoleVolunteer = "VOLUNTEER"
)

// User 用户表 — 对应 users
// SystemRole 决定授权级别，CurrentRole 仅是用户当前的使用模式
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	FullName     string `gorm:"type:varchar(100);not null"                     json:"full_name"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	SystemRole   string `gorm:"type:varchar(20);not null;default:'USER'"       json:"system_role"`
	CurrentRole  string `gorm:"column:active_role;type:varchar(20);not null;default:'ATTENDEE'" json:"current_role"`
	SoftDeleteModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
