package domain

import "time"

// TeamCapacity is the fixed roster size. An add beyond it is rejected.
const TeamCapacity = 6

// Member is a single roster entry. Names identify members for removal.
type Member struct {
	Name  string `json:"name"`
	Level int    `json:"level,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Team holds an ordered roster capped at TeamCapacity members.
type Team struct {
	ID        string
	Name      string
	Members   []Member
	CreatedAt time.Time
	UpdatedAt time.Time
}
