package admin

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

type AdminUser struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}
