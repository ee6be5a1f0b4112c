package models

import "time"

// SystemOwner marks exercices visible to every user but attributable to
// no individual account. Records owned by it are pre-seeded and treated
// as read-only by convention.
const SystemOwner = "system"

// Exercice represents a stored exercice record. Name, type and muscle
// are mandatory; the rest is optional metadata.
type Exercice struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Muscle       string    `json:"muscle"`
	Equipment    string    `json:"equipment,omitempty"`
	Img          string    `json:"img,omitempty"`
	Gif          string    `json:"gif,omitempty"`
	Video        string    `json:"video,omitempty"`
	Description  string    `json:"description,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ExerciceInput holds the client-supplied fields for create and update.
// Owner is never part of the input; it always comes from the caller's
// token.
type ExerciceInput struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Img          string `json:"img"`
	Gif          string `json:"gif"`
	Video        string `json:"video"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

// RemoteExercice is an ephemeral record fetched from the remote catalog.
// It is never persisted and carries no id, owner or timestamps.
type RemoteExercice struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}
