package contract

// IHasher hashes and verifies passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

// IUUIDGenerator produces random identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
