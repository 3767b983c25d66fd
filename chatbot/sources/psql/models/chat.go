package models

// Role is the author of a chat message. Only the two values below are
// accepted on writes; see MessageDAO.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

const DefaultSessionTitle = "New Chat"

type ChatSession struct {
	SessionID string  `json:"session_id" gorm:"type:varchar(255);primaryKey"`
	Title     string  `json:"title" gorm:"type:text;not null"`
	CreatedAt ISOTime `json:"created_at" gorm:"type:text;not null"`
	UpdatedAt ISOTime `json:"updated_at" gorm:"type:text;not null"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage references its session by id only. There is no foreign key;
// cascade on session delete is handled by the DAO layer.
type ChatMessage struct {
	ID        string  `json:"id" gorm:"type:varchar(255);primaryKey"`
	SessionID string  `json:"session_id" gorm:"type:varchar(255);not null;index"`
	Role      Role    `json:"role" gorm:"type:varchar(50);not null"`
	Content   string  `json:"content" gorm:"type:text;not null"`
	Timestamp ISOTime `json:"timestamp" gorm:"type:text;not null;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
