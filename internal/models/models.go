package models

import (
	"time"
)

// Actor roles carried in auth tokens.
const (
	RoleUser         = "user"
	RoleOrganization = "organization"
)

// Posting status values.
const (
	PostingStatusRecruiting = "recruiting"
	PostingStatusClosed     = "closed"
	PostingStatusCancelled  = "cancelled"
)

// Car requirement values for a posting.
const (
	CarRequirementMust      = "must"
	CarRequirementPreferred = "preferred"
	CarRequirementNone      = "none"
)

// User represents an individual volunteer account
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Email          string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password       string     `gorm:"size:255;not null" json:"-"` // bcrypt hash
	Phone          string     `gorm:"size:20" json:"phone"`
	Gender         string     `gorm:"size:10" json:"gender"` // male, female, other
	Birthday       *time.Time `json:"birthday"`
	Address        string     `gorm:"size:255" json:"address"`
	IsHasCar       bool       `gorm:"default:false" json:"is_has_car"`
	Note           string     `gorm:"type:text" json:"note"`
	Role           string     `gorm:"size:20;default:user" json:"role"`
	ProfileImageID *uint      `json:"profile_image_id"`
	ProfileImage   *Image     `gorm:"foreignKey:ProfileImageID" json:"profile_image,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Organization represents a group account that publishes postings
type Organization struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash
	Phone     string    `gorm:"size:20" json:"phone"`
	Address   string    `gorm:"size:255" json:"address"`
	Note      string    `gorm:"size:500" json:"note"`
	Role      string    `gorm:"size:20;default:organization" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Posting represents a volunteer opportunity published by an organization
type Posting struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	OrganizationID   uint          `gorm:"index;not null" json:"organization_id"`
	Organization     *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	Title            string        `gorm:"size:255;not null" json:"title"`
	Location         string        `gorm:"size:255;not null" json:"location"`
	StartDate        time.Time     `gorm:"index" json:"start_date"`
	EndDate          time.Time     `json:"end_date"`
	RecruitingNumber int           `gorm:"not null" json:"recruiting_number"`
	ApplicantsNumber int           `gorm:"default:0" json:"applicants_number"` // incremented on approval, never decremented
	Phone            string        `gorm:"size:20;not null" json:"phone"`
	Accommodation    bool          `json:"accommodation"`
	Car              string        `gorm:"size:20;not null" json:"car"`                     // must, preferred, none
	Status           string        `gorm:"size:20;default:recruiting;index" json:"status"` // recruiting, closed, cancelled
	Note             string        `gorm:"type:text" json:"note"`
	ImageID          *uint         `json:"image_id"`
	Image            *Image        `gorm:"foreignKey:ImageID" json:"image,omitempty"`
	Tools            []Tool        `gorm:"foreignKey:PostingID" json:"tools,omitempty"`
	ApplyEntries     []ApplyEntry  `gorm:"foreignKey:PostingID" json:"apply_entries,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// ApplyEntry represents a user's application to a posting.
// The composite unique index backs the at-most-one-entry-per-pair rule so
// concurrent submits cannot slip past the existence check.
type ApplyEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_apply_entries_user_posting" json:"user_id"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PostingID  uint      `gorm:"not null;uniqueIndex:idx_apply_entries_user_posting" json:"posting_id"`
	Posting    *Posting  `gorm:"foreignKey:PostingID;constraint:OnDelete:CASCADE" json:"posting,omitempty"`
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Tool is a required item for a posting, replaced wholesale on update
type Tool struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostingID uint      `gorm:"index;not null" json:"posting_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Image is an uploaded file referenced by users and postings
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FilePath  string    `gorm:"size:500;not null" json:"file_path"`
	MimeType  string    `gorm:"size:100" json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatRoom is a messaging space scoped to one posting and one applicant
// (plus the owning organization). Uniqueness per (posting, applicant) is
// enforced by the lookup-or-create sequence inside the submit transaction;
// membership lives in a join table so no single-column constraint can
// express it.
type ChatRoom struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	PostingID uint          `gorm:"index;not null" json:"posting_id"`
	Posting   *Posting      `gorm:"foreignKey:PostingID;constraint:OnDelete:CASCADE" json:"posting,omitempty"`
	Members   []ChatRoomUser `gorm:"foreignKey:ChatRoomID" json:"members,omitempty"`
	Messages  []ChatMessage  `gorm:"foreignKey:ChatRoomID" json:"messages,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ChatRoomUser links an actor to a chat room. UserID holds either a user id
// or an organization id; the two actor pools share the room.
type ChatRoomUser struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ChatRoomID uint      `gorm:"index;not null" json:"chat_room_id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ChatMessage is a single message inside a chat room
type ChatMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ChatRoomID uint      `gorm:"index;not null" json:"chat_room_id"`
	UserID     uint      `gorm:"not null" json:"user_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SystemLog records audited write operations and operational events
type SystemLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Level     string    `gorm:"size:20;index" json:"level"` // info, warning, error
	Module    string    `gorm:"size:100;index" json:"module"`
	Action    string    `gorm:"size:200;index" json:"action"`
	Message   string    `gorm:"type:text" json:"message"`
	ActorID   *uint     `json:"actor_id"`
	ActorRole string    `gorm:"size:20" json:"actor_role"` // user, organization
	IP        string    `gorm:"size:50" json:"ip"`
	UserAgent string    `gorm:"size:500" json:"user_agent"`
	Extra     string    `gorm:"type:text" json:"extra"` // JSON extra data
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides
func (User) TableName() string         { return "users" }
func (Organization) TableName() string { return "organizations" }
func (Posting) TableName() string      { return "postings" }
func (ApplyEntry) TableName() string   { return "apply_entries" }
func (Tool) TableName() string         { return "tools" }
func (Image) TableName() string        { return "images" }
func (ChatRoom) TableName() string     { return "chat_rooms" }
func (ChatRoomUser) TableName() string { return "chat_room_users" }
func (ChatMessage) TableName() string  { return "chat_messages" }
func (SystemLog) TableName() string    { return "system_logs" }
