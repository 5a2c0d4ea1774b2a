package models

// User espelha o registro de usuário retornado pelo backend. O console
// nunca recebe material de senha.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// DisplayName prefere o nome completo e cai para o username.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
