// Package types provides type definitions for structured data exchanged with the jobmatch API.
package types

// Preferences holds the job-search preferences attached to an identity.
type Preferences struct {
	JobAlerts  bool     `json:"jobAlerts"`
	RemoteOnly bool     `json:"remoteOnly"`
	Salary     string   `json:"salary,omitempty"`
	JobTypes   []string `json:"jobTypes,omitempty"`
}

// Identity represents the authenticated user's profile and preference record.
// It is owned by the session store and replaced wholesale on every reload.
type Identity struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Location    string      `json:"location,omitempty"`
	Bio         string      `json:"bio,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	Preferences Preferences `json:"preferences"`
}

// HasSkills reports whether the identity carries at least one skill.
// The dashboard uses this to skip the recommendations fetch for new users.
func (i *Identity) HasSkills() bool {
	return i != nil && len(i.Skills) > 0
}

// AuthResponse is the envelope returned by login and register.
type AuthResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    *Identity `json:"user"`
	Error   string    `json:"error,omitempty"`
}
