package domain

// Hasher turns a plaintext value into a one-way hash.
type Hasher interface {
	Hash(value string) (string, error)
}

// HashComparer reports whether a plaintext value matches a stored hash.
type HashComparer interface {
	Compare(value, hash string) (bool, error)
}

// Encrypter issues an opaque token for the given subject.
type Encrypter interface {
	Encrypt(subject string) (string, error)
}

// Decrypter recovers the subject from a token issued by an Encrypter.
type Decrypter interface {
	Decrypt(token string) (string, error)
}

// EmailValidator reports whether an email address is well formed.
type EmailValidator interface {
	IsValid(email string) bool
}
