package helper

import "golang.org/x/crypto/bcrypt"

// HashPassword aplica bcrypt SIEMPRE: el que llama entrega texto plano y
// punto, acá no se "detecta" si el valor ya venía hasheado.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
