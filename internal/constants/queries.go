package constants

const (
	GetUserByEmail = `
	SELECT * FROM users WHERE LOWER(email) = LOWER($1)
	`

	GetUserById = `
	SELECT * FROM users WHERE id = $1
	`

	GetUsersByIds = `
	SELECT * FROM users WHERE id = ANY($1)
	`

	InsertUser = `
	INSERT INTO users (email, name, student_id, role, password_hash)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at
	`
)
