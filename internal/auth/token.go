package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 検証結果。最低限user idだけ持つ。
type Identity struct {
	UserID int64
}

var (
	// Authorizationヘッダが無い
	ErrMissingCredential = errors.New("missing credential")
	// 形式不正・署名不正・期限切れ
	ErrInvalidToken = errors.New("invalid token")
)

// Issue は id クレーム入りのHS256トークンを署名して返す。
func Issue(userID int64, secret []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

// VerifyBearer は生のAuthorizationヘッダを検証して本人を返す純関数。
// リクエストオブジェクトには依存しない。
func VerifyBearer(header string, secret []byte) (Identity, error) {
	if strings.TrimSpace(header) == "" {
		return Identity{}, ErrMissingCredential
	}

	//空白で割って2つ目をトークンとして使う。スキーム名は検証に関係しない。
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return Identity{}, ErrInvalidToken
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	userID, err := parseUserID(claims["id"])
	if err != nil || userID <= 0 {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: userID}, nil
}

// idクレームをint64に変換する
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid id")
	}
}
