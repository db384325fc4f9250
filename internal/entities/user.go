package entities

type User struct {
	ID       string `db:"id"`
	Login    string `db:"login"`
	PassHash []byte `db:"pass_hash"`
}

type UserPref struct {
	UserID string `db:"user_id"`
	Key    string `db:"key"`
	Seen   bool   `db:"seen"`
}
