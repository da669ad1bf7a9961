package domain

import "time"

// Setting keys used by the application.
const (
	SettingMonthlyTarget = "monthly_target"
)

// Setting is a key/value configuration row. Last write wins; no
// history is kept.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SettingRepository interface {
	Get(key string) (*Setting, error)
	Set(key, value string) error
}
