package models

import (
	"time"

	"gorm.io/gorm"
)

// Session дает доступ к журналу через токен в URL, без логина с паролем
type Session struct {
	gorm.Model
	UserID       uint
	Token        string    `gorm:"uniqueIndex;size:255;not null"`
	StartDate    time.Time `gorm:"not null"` // день 1 программы
	ConsentGiven bool      `gorm:"default:false;not null"`
	ConsentDate  *time.Time
}

// DayProgress хранит прогресс по одному дню сессии.
// Пара (session_id, day_number) уникальна — параллельные записи
// сериализуются на уровне базы.
type DayProgress struct {
	gorm.Model
	SessionID          uint `gorm:"uniqueIndex:idx_session_day;not null"`
	DayNumber          int  `gorm:"uniqueIndex:idx_session_day;not null"` // 1-21
	Completed          bool `gorm:"default:false;not null"`
	CompletedAt        *time.Time
	AssumptionOccurred *bool // nil = вопрос еще не отвечен
	RepeatedNextDay    bool  `gorm:"default:false;not null"`
}

// Learning — запись, создаваемая при завершении дня; только добавление
type Learning struct {
	gorm.Model
	SessionID       uint   `gorm:"not null"`
	DayNumber       int    `gorm:"not null"` // 1-21
	DefaultLearning string `gorm:"not null"`
	CustomLearning  string
}

// Checkpoint — структурированные ответы на днях 8, 15 и 21
type Checkpoint struct {
	gorm.Model
	SessionID    uint `gorm:"uniqueIndex:idx_session_checkpoint;not null"`
	DayNumber    int  `gorm:"uniqueIndex:idx_session_checkpoint;not null"` // 8, 15, 21
	Discovery    string
	ImportantDay string
	Feeling      string // more_confident, equal, confused
}

// Consent — история согласий; при чтении берется последняя запись
type Consent struct {
	gorm.Model
	SessionID    uint      `gorm:"not null"`
	ConsentGiven bool      `gorm:"default:false;not null"`
	ConsentDate  time.Time `gorm:"not null"`
	IPAddress    string    `gorm:"size:45"` // IPv4 или IPv6
	UserAgent    string
}
