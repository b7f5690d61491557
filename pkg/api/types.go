package api

import "time"

// User is a stored identity record. The password hash never crosses the
// API boundary; only Claims derived from a User do.
type User struct {
	ID           string    `json:"id"`
	Surname      string    `json:"surname"`
	GivenName    string    `json:"givenName"`
	DOB          string    `json:"dob"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Claims is the snapshot of a User embedded in a session token. It is
// built at registration/login time and not refreshed until the client
// re-authenticates, so it may go stale within the token's lifetime.
type Claims struct {
	ID        string `json:"id"`
	Surname   string `json:"surname"`
	GivenName string `json:"givenName"`
	DOB       string `json:"dob"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// NewClaims projects a User into token claims. No password material is
// carried over.
func NewClaims(u *User) *Claims {
	return &Claims{
		ID:        u.ID,
		Surname:   u.Surname,
		GivenName: u.GivenName,
		DOB:       u.DOB,
		Username:  u.Username,
		Email:     u.Email,
	}
}

// RegisterRequest is the POST /api/auth/register payload.
type RegisterRequest struct {
	Surname   string `json:"surname"`
	GivenName string `json:"givenName"`
	DOB       string `json:"dob"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the POST /api/auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login: a freshly minted token
// plus the claims it encodes.
type AuthResponse struct {
	Token string  `json:"token"`
	User  *Claims `json:"user"`
}

// VerifyResponse echoes the authenticated principal back to the client.
type VerifyResponse struct {
	User *Claims `json:"user"`
}

// Destination is an owned resource. Owner holds the creating user's ID;
// OwnerUsername is populated by storage adapters on reads that surface
// destinations to other users.
type Destination struct {
	ID            string    `json:"id"`
	Owner         string    `json:"owner"`
	OwnerUsername string    `json:"ownerUsername,omitempty"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Public        bool      `json:"public"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DestinationRequest is the create payload. The owner is always the
// authenticated principal, never taken from the body.
type DestinationRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Public      bool   `json:"public"`
}

// DestinationUpdate is a partial update. Nil fields are left unchanged.
// Ownership cannot be reassigned through an update.
type DestinationUpdate struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Public      *bool   `json:"public"`
}

// Apply copies the non-nil fields onto d.
func (u *DestinationUpdate) Apply(d *Destination) {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Location != nil {
		d.Location = *u.Location
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.ImageURL != nil {
		d.ImageURL = *u.ImageURL
	}
	if u.Public != nil {
		d.Public = *u.Public
	}
}

// ExploreItem is a curated public trip. The explore collection is plain
// pass-through CRUD with no ownership attached.
type ExploreItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ExploreRequest is the create/update payload for explore items.
type ExploreRequest struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

// MessageResponse is the body of operations that return only an
// acknowledgement, such as destination delete.
type MessageResponse struct {
	Message string `json:"message"`
}
