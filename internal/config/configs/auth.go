package configs

// Auth configures bearer token verification. Tokens are HS256 JWTs signed
// with Secret.
type Auth struct {
	Secret string `env:"SECRET,required,notEmpty"`
	Issuer string `env:"ISSUER"`
}
