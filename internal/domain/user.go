package domain

import "time"

type User struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserView is the JSON shape returned to clients (no password hash).
type UserView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
