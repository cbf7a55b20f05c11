package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	AdminEmail        string // 管理者メール（単一アカウント）
	AdminPasswordHash []byte // bcryptハッシュ

	UploadDir     string // 画像保存先
	MaxUploadSize int64  // 1ファイルの上限（byte）

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数から設定を組み立てる。
// ADMIN_PASSWORD_HASH が無ければ ADMIN_PASSWORD を起動時にハッシュ化する
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		MaxUploadSize: 10 << 20,
		GoEnv:         getenv("GO_ENV", "dev"),
		FEURL:         getenv("FE_URL", "*"),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminEmail == "" {
		return Config{}, fmt.Errorf("ADMIN_EMAIL is required")
	}

	if h := os.Getenv("ADMIN_PASSWORD_HASH"); h != "" {
		cfg.AdminPasswordHash = []byte(h)
		return cfg, nil
	}

	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), 10)
	if err != nil {
		return Config{}, fmt.Errorf("hash admin password: %w", err)
	}
	cfg.AdminPasswordHash = hash

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
