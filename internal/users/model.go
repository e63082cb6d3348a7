package users

// Column names of the users table. ColUsername doubles as the identity
// key after case folding.
const (
	ColUsername = "username"
	ColPassword = "password"
	ColName     = "name"
)

// Columns fixes the write order of user rows.
var Columns = []string{ColUsername, ColPassword, ColName}

// User is one row of the users table.
//
// Password is stored and compared as plain text: the table predates this
// program and hashing would change the stored data format for every
// deployment sharing it. A known gap, deliberately not fixed here.
type User struct {
	Username string
	Password string
	Name     string
}
