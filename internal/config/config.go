package config

import (
	"fmt"
	"os"
)

// 商品が消えていたときの合計計算ポリシー
const (
	MissingProductSkip = "skip" // 0円として黙って飛ばす（従来挙動）
	MissingProductFail = "fail" // 注文を400で拒否する
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（5000）

	JWTSecret string // JWT署名シークレット

	GoEnv string // development/production
	FEURL string // フロントURL（CORSで使う）

	// 合計計算時に商品が見つからない場合の扱い（skip/fail）
	MissingProductPolicy string
}

// Loadは環境変数から読む。未設定は既定値で埋める。
func Load() (Config, error) {
	cfg := Config{
		Port:                 getenv("PORT", "5000"),
		JWTSecret:            getenv("JWT_SECRET", "defaultSecretKey"),
		GoEnv:                getenv("GO_ENV", "development"),
		FEURL:                getenv("FE_URL", "http://localhost:3000"),
		MissingProductPolicy: getenv("ORDER_MISSING_PRODUCT", MissingProductSkip),
	}

	switch cfg.MissingProductPolicy {
	case MissingProductSkip, MissingProductFail:
	default:
		return Config{}, fmt.Errorf("ORDER_MISSING_PRODUCT must be %q or %q", MissingProductSkip, MissingProductFail)
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
