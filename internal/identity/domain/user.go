package domain

import "time"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller || r == RoleAdmin
}

// User is an identity record. Password is stored and compared in
// plaintext: this shim reproduces the demo login contract and carries
// no security guarantees whatsoever.
type User struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
}

// SeedUsers returns the demo accounts: one hardcoded admin, one buyer,
// one seller.
func SeedUsers() []User {
	now := time.Now().UTC()
	return []User{
		{Name: "Aditi Sharma", Email: "admin@farmconnect.com", Password: "admin123", Role: RoleAdmin, Status: "active", CreatedAt: now},
		{Name: "Sana Qureshi", Email: "buyer@farmconnect.com", Password: "buyer123", Role: RoleBuyer, Status: "active", CreatedAt: now},
		{Name: "Rajesh Kumar", Email: "seller@farmconnect.com", Password: "seller123", Role: RoleSeller, Status: "active", CreatedAt: now},
	}
}
