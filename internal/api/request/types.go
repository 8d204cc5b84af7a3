package request

// SelectRoleRequest is the request body for picking a role
type SelectRoleRequest struct {
	Role string `json:"role"`
}

// AuthRequest is the request body for logging in or registering.
// Every field is optional; nothing is verified.
type AuthRequest struct {
	Mode           string `json:"mode,omitempty"`
	Nickname       string `json:"nickname,omitempty"`
	Password       string `json:"password,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Weapon         string `json:"weapon,omitempty"`
	FavoritePlayer string `json:"favoritePlayer,omitempty"`
}
