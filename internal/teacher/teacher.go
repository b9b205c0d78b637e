package teacher

// Teacher is the lesson provider profile, linked one-to-one with a user
// account holding the TEACHER role.
type Teacher struct {
	ID       int      `json:"teacherId"`
	UserID   int      `json:"userId"`
	Bio      string   `json:"bio,omitempty"`
	Subjects []string `json:"subjects,omitempty"`
}
