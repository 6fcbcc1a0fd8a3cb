package models

// Student defines a student identity record based on the 'students' table.
// The NFC tag uid is the scan credential; it is deliberately excluded from
// JSON so rosters and attendance payloads never leak it.
type Student struct {
	ID        int64   `json:"id" db:"id" example:"1"`
	Name      string  `json:"name" db:"name" example:"Alex Rivera"`
	StudentID string  `json:"studentId" db:"student_id" example:"2023101"` // human-readable student number
	NFCID     string  `json:"-" db:"nfc_id"`
	Avatar    *string `json:"avatar,omitempty" db:"avatar"` // Nullable
}
