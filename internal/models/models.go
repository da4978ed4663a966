// Package models holds the portal's domain records. Each type is an
// immutable snapshot of a backend entity; relationships are referential by
// numeric id and the backend is the source of truth for every cross-entity
// rule.
package models

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleClient UserRole = "client"
)

type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      UserRole   `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCancelled ProjectStatus = "cancelled"
)

type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"user_id"`
	SlotID        *int64        `json:"slot_id,omitempty"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Status        BookingStatus `json:"status"`
	GoogleEventID string        `json:"google_event_id,omitempty"`
	MeetingLink   string        `json:"meeting_link,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}

type AvailabilitySlot struct {
	ID          int64     `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

type File struct {
	ID               int64      `json:"id"`
	ProjectID        int64      `json:"project_id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	SharepointFileID string     `json:"sharepoint_file_id,omitempty"`
	SharepointURL    string     `json:"sharepoint_url,omitempty"`
	FileSizeBytes    *int64     `json:"file_size_bytes,omitempty"`
	MimeType         string     `json:"mime_type,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type Recording struct {
	ID               int64      `json:"id"`
	ProjectID        int64      `json:"project_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	SharepointFileID string     `json:"sharepoint_file_id,omitempty"`
	SharepointURL    string     `json:"sharepoint_url,omitempty"`
	DurationSeconds  *int64     `json:"duration_seconds,omitempty"`
	FileSizeBytes    *int64     `json:"file_size_bytes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type RequestType string

const (
	RequestImprovement RequestType = "improvement"
	RequestRevision    RequestType = "revision"
	RequestBug         RequestType = "bug"
	RequestQuestion    RequestType = "question"
)

type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

type RequestMessage struct {
	ID        int64     `json:"id"`
	RequestID int64     `json:"request_id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Request struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"user_id"`
	ProjectID   int64            `json:"project_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        RequestType      `json:"type"`
	Status      RequestStatus    `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
	Messages    []RequestMessage `json:"messages,omitempty"`
}

// BookingCreate is the request body for POST /bookings.
type BookingCreate struct {
	SlotID      int64  `json:"slot_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// RequestCreate is the request body for POST /requests.
type RequestCreate struct {
	ProjectID   int64       `json:"project_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        RequestType `json:"type"`
}
