// Package streamtoken signs the media stream parameters handed to Twilio in
// TwiML so the media-stream endpoint only serves calls routed through the
// incoming-call webhook.
package streamtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "voice-bridge"

var (
	ErrInvalidStreamToken = errors.New("invalid stream token")
	ErrExpiredStreamToken = errors.New("stream token expired")
	ErrEmptySecret        = errors.New("stream token secret is empty")
)

// Claims identifies the call a media stream belongs to
type Claims struct {
	DialedNumber string `json:"dialed_number"`
	CallerNumber string `json:"caller_number,omitempty"`
	jwt.RegisteredClaims
}

// CallSid returns the Twilio call the token was minted for
func (c Claims) CallSid() string {
	return c.Subject
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Mint signs a token binding the call sid to the dialed and caller numbers
func (i *Issuer) Mint(callSid, dialedNumber, callerNumber string) (string, error) {
	now := i.now()
	claims := Claims{
		DialedNumber: dialedNumber,
		CallerNumber: callerNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   callSid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign stream token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token minted by Mint
func (i *Issuer) Verify(token string) (Claims, error) {
	var claims Claims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredStreamToken
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidStreamToken, err)
	}
	if !t.Valid {
		return Claims{}, ErrInvalidStreamToken
	}
	return claims, nil
}
