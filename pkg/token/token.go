// Package token implementa o codec do token de sessão: identidade assinada,
// com validade fixa, verificável e opaca para o navegador.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tsantos/oficina-api/internal/domain/entity"
)

// TTL é a validade fixa da sessão, contada do login original.
// O refresh a cada requisição reassina o payload mas preserva o exp
// (a expiração não desliza).
const TTL = 24 * time.Hour

// Claims são os claims padrão JWT mais a identidade sanitizada do usuário.
type Claims struct {
	jwt.RegisteredClaims
	entity.Identity
}

// Codec assina e verifica tokens de sessão com um único segredo compartilhado
// e algoritmo fixo (HS256). O segredo é validado no boot pela configuração;
// aqui há apenas uma recusa defensiva contra segredo vazio.
type Codec struct {
	secret []byte
	issuer string
}

// New constrói o codec com o segredo e issuer configurados.
func New(secret, issuer string) *Codec {
	return &Codec{secret: []byte(secret), issuer: issuer}
}

// Encode serializa e assina a identidade com validade de 24h a partir de agora.
func (c *Codec) Encode(id entity.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
		Identity: id,
	}
	return c.Sign(claims)
}

// Sign assina claims já montados. Usado pelo Encode e pelo refresh de sessão,
// que reassina os claims originais sem tocar em iat/exp.
func (c *Codec) Sign(claims Claims) (string, error) {
	if len(c.secret) == 0 {
		return "", fmt.Errorf("token: segredo vazio")
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Decode verifica assinatura (somente HMAC) e expiração, e devolve os claims.
// Qualquer falha (assinatura, algoritmo, expirado, malformado) devolve erro de
// forma uniforme; o chamador trata como "sem sessão". Um token decodificado
// exatamente no instante de expiração já é inválido.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	if len(c.secret) == 0 {
		return nil, fmt.Errorf("token: segredo vazio")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
