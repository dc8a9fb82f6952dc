package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Author represents a blog author. Server-owned; ids are never minted
// client-side.
type Author struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Blog represents a published post. Server-owned; it enters the local
// collection only through a confirmed server response.
type Blog struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session pairs the bearer token with the authenticated identity.
// Token and Email are both present or both absent.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Present reports whether the session holds a live authentication.
func (s Session) Present() bool { return s.Token != "" && s.Email != "" }
