package apiclient

import "time"

// Las estructuras reflejan el JSON que devuelve la API.

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time,omitempty"`
	Pet         string    `json:"pet"`
	Tags        []string  `json:"tags"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SaveTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Pet         string   `json:"pet"`
	Tags        []string `json:"tags"`
}

type Buckets struct {
	Today    []Task `json:"today"`
	Tomorrow []Task `json:"tomorrow"`
	Upcoming []Task `json:"upcoming"`
}

type HistoryEntry struct {
	Task
	Status string `json:"status"`
}

type TaskOptions struct {
	Pets []string `json:"pets"`
	Tags []string `json:"tags"`
}

type CalendarDay struct {
	Date       string `json:"date"`
	InMonth    bool   `json:"in_month"`
	IsToday    bool   `json:"is_today"`
	IsSelected bool   `json:"is_selected"`
	HasTasks   bool   `json:"has_tasks"`
}

type Calendar struct {
	Month     string        `json:"month"`
	WeekStart string        `json:"week_start"`
	Selected  string        `json:"selected"`
	Days      []CalendarDay `json:"days"`
}

type Report struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	PetID       string     `json:"pet_id,omitempty"`
	PetName     string     `json:"pet_name"`
	PetType     string     `json:"pet_type"`
	PetAge      string     `json:"pet_age"`
	Status      string     `json:"status"`
	IsOwner     bool       `json:"is_owner"`
	Images      []string   `json:"images"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	FoundAt     *time.Time `json:"found_at,omitempty"`
}

type CreateReport struct {
	Title       string   `json:"title"`
	PetID       string   `json:"pet_id"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	Images      []string `json:"images,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type Pet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Breed     string    `json:"breed"`
	BirthDate string    `json:"birth_date"`
	Age       string    `json:"age,omitempty"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SavePet struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birth_date"`
	ImageURL  string `json:"image_url"`
}

type Profile struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	ImageURL  string     `json:"image_url"`
	Initials  string     `json:"initials"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ProfilePatch: nil = sin cambios.
type ProfilePatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// Confirmation es el estado de un gate. Candidate queda crudo porque depende del kind.
type Confirmation struct {
	Kind      string         `json:"kind"`
	State     string         `json:"state"`
	Candidate map[string]any `json:"candidate,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Validation struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}
