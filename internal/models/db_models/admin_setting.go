package db_models

// AdminSetting is a key/value row for operator-tunable configuration,
// e.g. the bcrypt hash of the admin password.
type AdminSetting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex;not null"`
	Value string
}

const SettingKeyAdminPasswordHash = "admin_password_hash"
